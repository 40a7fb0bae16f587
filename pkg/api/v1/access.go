package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"

	"github.com/accessdomain/fwengine/pkg/accessapi"
	"github.com/accessdomain/fwengine/pkg/api"
	"github.com/accessdomain/fwengine/pkg/fwerrors"
)

type accessStreamFunc func(ctx context.Context, handle, address string) <-chan accessapi.Result

func (a *API) handleAccessIngress(c *gin.Context) {
	a.stream(c, a.runner.AccessByAddressIngress)
}

func (a *API) handleAccessEgress(c *gin.Context) {
	a.stream(c, a.runner.AccessByAddressEgress)
}

// stream drives a single ingress/egress lookup, writing one JSON object
// per line and flushing after each so the caller can consume the
// response as it is produced rather than waiting for it to finish.
//
// Headers are only committed once the first record (or error) is known,
// so a failure to acquire the Model Manager session (e.g. an unknown
// handle) can still be reported with its proper status code; any error
// surfacing after streaming has begun is instead appended as a final
// NDJSON line, since the 200 status has already been flushed to the
// client by then.
func (a *API) stream(c *gin.Context, fn accessStreamFunc) {
	ctx := c.Request.Context()

	handle := c.Query(api.HandleQueryParam)
	if handle == "" {
		a.errorHandler.Handle(ctx, c.Writer, fwerrors.NewInvalidRequestError("missing required query parameter \"handle\""), "invalid access request")
		return
	}
	address := c.Param("ipaddress")

	ch := fn(ctx, handle, address)

	enc := jsoniter.NewEncoder(c.Writer)
	headersSent := false
	for result := range ch {
		if result.Err != nil {
			if !headersSent {
				a.errorHandler.Handle(ctx, c.Writer, result.Err, "access lookup failed")
				return
			}
			_ = enc.Encode(struct {
				Error string `json:"error"`
			}{Error: result.Err.Error()})
			c.Writer.Flush()
			return
		}
		if !headersSent {
			c.Writer.Header().Set("Content-Type", "application/x-ndjson")
			c.Writer.WriteHeader(http.StatusOK)
			headersSent = true
		}
		if err := enc.Encode(result.Domain); err != nil {
			return
		}
		c.Writer.Flush()
	}
}
