// Package accessapi implements the two streaming Access API
// operations: AccessByAddressIngress and AccessByAddressEgress. Each
// scopes a session from the Model Manager, converts every matching
// rule into its endpoint-domain records, and streams them to the
// caller over a channel.
package accessapi

import (
	"context"

	"github.com/els0r/telemetry/tracing"

	"github.com/accessdomain/fwengine/pkg/endpointdomain"
	"github.com/accessdomain/fwengine/pkg/fwerrors"
	"github.com/accessdomain/fwengine/pkg/modelmanager"
)

// Result carries either an endpoint domain or a terminal error. Err is
// set at most once, on the final value sent before the channel closes.
type Result struct {
	Domain endpointdomain.Domain
	Err    error
}

// Runner executes Access API lookups against a modelmanager.Manager.
type Runner struct {
	manager modelmanager.Manager
}

// NewRunner builds a Runner bound to the given Model Manager.
func NewRunner(manager modelmanager.Manager) *Runner {
	return &Runner{manager: manager}
}

// AccessByAddressIngress streams the endpoint domains admitted into
// address under handle. The returned channel is closed when the
// Model Manager's rule set is exhausted, an error occurs (the last
// value carries it), or ctx is cancelled.
func (r *Runner) AccessByAddressIngress(ctx context.Context, handle, address string) <-chan Result {
	return r.stream(ctx, "(*accessapi.Runner).AccessByAddressIngress", endpointdomain.Ingress, handle, address)
}

// AccessByAddressEgress streams the endpoint domains admitted out of
// address under handle, with the same termination semantics as
// AccessByAddressIngress.
func (r *Runner) AccessByAddressEgress(ctx context.Context, handle, address string) <-chan Result {
	return r.stream(ctx, "(*accessapi.Runner).AccessByAddressEgress", endpointdomain.Egress, handle, address)
}

func (r *Runner) stream(ctx context.Context, spanName string, direction endpointdomain.Direction, handle, address string) <-chan Result {
	out := make(chan Result)

	go func() {
		defer close(out)

		ctx, span := tracing.Start(ctx, spanName)
		defer span.End()

		// Model Manager calls failing with a *fwerrors.TransientError are retried via fwerrors.Retry.
		var session modelmanager.ScopedSession
		var data modelmanager.DataAccess
		err := fwerrors.Retry(ctx, func(ctx context.Context) (err error) {
			session, data, err = r.manager.Get(ctx, handle)
			return err
		})
		if err != nil {
			send(ctx, out, Result{Err: err})
			return
		}
		// Session release is guaranteed on every exit path: normal
		// completion, producer error, or ctx cancellation.
		defer session.Close()

		var rules []endpointdomain.Rule
		err = fwerrors.Retry(ctx, func(ctx context.Context) (err error) {
			rules, err = data.GetFirewallRules(ctx, session, direction, address)
			return err
		})
		if err != nil {
			send(ctx, out, Result{Err: err})
			return
		}

		for _, rule := range rules {
			select {
			case <-ctx.Done():
				return
			default:
			}

			domains, err := endpointdomain.Produce(direction, rule)
			if err != nil {
				send(ctx, out, Result{Err: err})
				return
			}
			for _, d := range domains {
				if !send(ctx, out, Result{Domain: d}) {
					return
				}
			}
		}
	}()

	return out
}

// send delivers v on out, respecting ctx cancellation. It reports
// whether the value was actually delivered.
func send(ctx context.Context, out chan<- Result, v Result) bool {
	select {
	case out <- v:
		return true
	case <-ctx.Done():
		return false
	}
}
