// Package errors provides the HTTP-facing error responder shared by the
// v1 routes that bypass huma's own error encoding (the streaming
// ingress/egress handlers).
package errors

import (
	"context"
	"net/http"

	"github.com/els0r/telemetry/logging"

	apijson "github.com/accessdomain/fwengine/pkg/api/json"
	"github.com/accessdomain/fwengine/pkg/fwerrors"
)

// Handler governs how an error is returned to the caller
type Handler interface {
	Handle(ctx context.Context, w http.ResponseWriter, err error, msg string)
}

// StandardHandler classifies err via fwerrors.StatusCode, writes a JSON
// error body, and logs it
type StandardHandler struct{}

// NewStandardHandler returns a new standard handler
func NewStandardHandler() *StandardHandler {
	return &StandardHandler{}
}

// errorBody is the JSON shape written by StandardHandler.Handle
type errorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Handle writes a classified HTTP error response and logs it
func (s *StandardHandler) Handle(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	statusCode := fwerrors.StatusCode(err)

	logger := logging.FromContext(ctx)
	_ = apijson.StatusResponse(w, statusCode, errorBody{Status: http.StatusText(statusCode), Message: msg})
	logger.With("error", err).Error(msg)
}
