package application

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/keitakn/aws-rekognition-resource-providers/usecase/cfn"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Action string

const (
	ActionCreate Action = "CREATE"
	ActionRead   Action = "READ"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
	ActionList   Action = "LIST"
)

// HandlerRequest is the payload the Lambda receives. CallbackContext is whatever the previous
// IN_PROGRESS event of the same operation returned, absent on the first invocation.
type HandlerRequest struct {
	Action          Action          `json:"action"`
	Request         json.RawMessage `json:"request"`
	CallbackContext json.RawMessage `json:"callbackContext,omitempty"`
}

// UseCase is the CRUDL surface shared by the resource use cases. M is the resource model, C the callback context.
type UseCase[M any, C any] interface {
	Create(ctx context.Context, req *cfn.Request[M], callbackContext *C) (*cfn.ProgressEvent[M], error)
	Read(ctx context.Context, req *cfn.Request[M]) (*cfn.ProgressEvent[M], error)
	Update(ctx context.Context, req *cfn.Request[M]) (*cfn.ProgressEvent[M], error)
	Delete(ctx context.Context, req *cfn.Request[M]) (*cfn.ProgressEvent[M], error)
	List(ctx context.Context, req *cfn.Request[M]) (*cfn.ProgressEvent[M], error)
}

type ResourceHandler[M any, C any] struct {
	UseCase UseCase[M, C]
	Logger  *zap.Logger
}

// Handle never returns a Go error for a failed operation, the failure travels in a FAILED progress event.
func (
	h *ResourceHandler[M, C],
) Handle(
	ctx context.Context,
	req HandlerRequest,
) (*cfn.ProgressEvent[M], error) {
	event, err := h.dispatch(ctx, req)
	if err != nil {
		handlerErr := cfn.AsHandlerError(err)
		h.Logger.Warn(
			"Operation failed",
			zap.String("action", string(req.Action)),
			zap.String("errorCode", string(handlerErr.Code)),
			zap.String("message", handlerErr.Message),
		)

		return cfn.Failed[M](handlerErr), nil
	}

	h.Logger.Info(
		"Operation finished",
		zap.String("action", string(req.Action)),
		zap.String("status", string(event.Status)),
	)

	return event, nil
}

func (h *ResourceHandler[M, C]) dispatch(ctx context.Context, req HandlerRequest) (*cfn.ProgressEvent[M], error) {
	var request cfn.Request[M]
	if err := decode(req.Request, &request); err != nil {
		return nil, cfn.WrapHandlerError(cfn.HandlerErrorCodeInvalidRequest, errors.Wrap(err, "failed to decode request"))
	}

	switch req.Action {
	case ActionCreate:
		var callbackContext C
		if err := decode(req.CallbackContext, &callbackContext); err != nil {
			return nil, cfn.WrapHandlerError(cfn.HandlerErrorCodeInvalidRequest, errors.Wrap(err, "failed to decode callbackContext"))
		}
		return h.UseCase.Create(ctx, &request, &callbackContext)
	case ActionRead:
		return h.UseCase.Read(ctx, &request)
	case ActionUpdate:
		return h.UseCase.Update(ctx, &request)
	case ActionDelete:
		return h.UseCase.Delete(ctx, &request)
	case ActionList:
		return h.UseCase.List(ctx, &request)
	}

	return nil, cfn.NewHandlerError(cfn.HandlerErrorCodeInvalidRequest, fmt.Sprintf("unsupported action %q", req.Action))
}

// decode leaves v untouched for an absent or null payload.
func decode(raw json.RawMessage, v interface{}) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	return json.Unmarshal(trimmed, v)
}
