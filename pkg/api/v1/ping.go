package v1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var pingTags = []string{"Access"}

const pingOpName = "post-ping"

// PingInput carries the opaque payload to be echoed back
type PingInput struct {
	Body struct {
		Data []byte `json:"data" doc:"Opaque payload echoed back unchanged"`
	}
}

// PingOutput echoes PingInput's payload
type PingOutput struct {
	Body struct {
		Data []byte `json:"data" doc:"Opaque payload echoed back unchanged"`
	}
}

// PingOperation is the operation for the liveness/connectivity echo check
func PingOperation() huma.Operation {
	return huma.Operation{
		OperationID: pingOpName,
		Method:      http.MethodPost,
		Path:        "/v1/ping",
		Summary:     "Echo a payload",
		Description: "Echoes the submitted payload unchanged; used as a connectivity/liveness check independent of any Model Manager dependency.",
		Tags:        pingTags,
	}
}

// PingHandler echoes its input back, unchanged.
func PingHandler() func(context.Context, *PingInput) (*PingOutput, error) {
	return func(_ context.Context, input *PingInput) (*PingOutput, error) {
		output := &PingOutput{}
		output.Body.Data = input.Body.Data
		return output, nil
	}
}
