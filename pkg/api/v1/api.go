// Package v1 registers version 1 of the firewall access-domain engine's
// HTTP API: a documented "ping" operation plus the streaming
// ingress/egress access lookups, which are registered directly on the
// underlying gin engine since huma does not model newline-delimited
// streaming responses.
package v1

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	apierrors "github.com/accessdomain/fwengine/pkg/api/errors"
	"github.com/accessdomain/fwengine/pkg/accessapi"
)

// API wires the Access API's Runner into the HTTP surface
type API struct {
	runner       *accessapi.Runner
	errorHandler apierrors.Handler
	rateLimiter  *rate.Limiter
}

// Option configures the API
type Option func(*API)

// WithErrorHandler overrides the default error handler
func WithErrorHandler(h apierrors.Handler) Option {
	return func(a *API) {
		a.errorHandler = h
	}
}

// WithRateLimiter applies a rate limit to the streaming access routes
func WithRateLimiter(limiter *rate.Limiter) Option {
	return func(a *API) {
		a.rateLimiter = limiter
	}
}

// New creates a v1 API bound to runner
func New(runner *accessapi.Runner, opts ...Option) *API {
	a := &API{runner: runner, errorHandler: apierrors.NewStandardHandler()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// RegisterHuma registers the huma-documented operations (currently just ping)
func (a *API) RegisterHuma(humaAPI huma.API) {
	huma.Register(humaAPI, PingOperation(), PingHandler())
}

// RegisterRoutes registers the streaming access routes directly on router
func (a *API) RegisterRoutes(router *gin.Engine) {
	router.GET("/v1/access/ingress/:ipaddress", a.rateLimit(a.handleAccessIngress))
	router.GET("/v1/access/egress/:ipaddress", a.rateLimit(a.handleAccessEgress))
}

func (a *API) rateLimit(next gin.HandlerFunc) gin.HandlerFunc {
	if a.rateLimiter == nil {
		return next
	}
	return func(c *gin.Context) {
		if !a.rateLimiter.Allow() {
			c.AbortWithStatus(429)
			return
		}
		next(c)
	}
}
