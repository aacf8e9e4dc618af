package cfn

import (
	"fmt"

	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type HandlerErrorCode string

const (
	HandlerErrorCodeAccessDenied         HandlerErrorCode = "AccessDenied"
	HandlerErrorCodeInvalidRequest       HandlerErrorCode = "InvalidRequest"
	HandlerErrorCodeNotFound             HandlerErrorCode = "NotFound"
	HandlerErrorCodeAlreadyExists        HandlerErrorCode = "AlreadyExists"
	HandlerErrorCodeServiceLimitExceeded HandlerErrorCode = "ServiceLimitExceeded"
	HandlerErrorCodeThrottling           HandlerErrorCode = "Throttling"
	HandlerErrorCodeServiceInternalError HandlerErrorCode = "ServiceInternalError"
)

// HandlerError is the only error type a use case returns to its caller.
type HandlerError struct {
	Code    HandlerErrorCode
	Message string
	cause   error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *HandlerError) Unwrap() error {
	return e.cause
}

func NewHandlerError(code HandlerErrorCode, message string) *HandlerError {
	return &HandlerError{Code: code, Message: message}
}

func WrapHandlerError(code HandlerErrorCode, cause error) *HandlerError {
	return &HandlerError{Code: code, Message: cause.Error(), cause: cause}
}

func NotFound(typeName string, identifier string) *HandlerError {
	return NewHandlerError(
		HandlerErrorCodeNotFound,
		fmt.Sprintf("Resource of type '%s' with identifier '%s' was not found.", typeName, identifier),
	)
}

func AlreadyExists(typeName string, identifier string, cause error) *HandlerError {
	return &HandlerError{
		Code:    HandlerErrorCodeAlreadyExists,
		Message: fmt.Sprintf("Resource of type '%s' with identifier '%s' already exists.", typeName, identifier),
		cause:   cause,
	}
}

// AsHandlerError returns err itself when it already is a HandlerError, otherwise an internal error wrapping it.
func AsHandlerError(err error) *HandlerError {
	var handlerErr *HandlerError
	if errors.As(err, &handlerErr) {
		return handlerErr
	}

	return WrapHandlerError(HandlerErrorCodeServiceInternalError, err)
}

// TranslateError maps an error returned by the Rekognition API onto the handler error taxonomy.
func TranslateError(err error, logger *zap.Logger) *HandlerError {
	var handlerErr *HandlerError
	if errors.As(err, &handlerErr) {
		return handlerErr
	}

	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		logger.Error("Unexpected error while calling Amazon Rekognition.", zap.Error(err))
		return WrapHandlerError(HandlerErrorCodeServiceInternalError, err)
	}

	code, message := classifyErrorCode(apiErr.ErrorCode())
	if message != "" {
		logger.Warn(message, zap.String("errorCode", apiErr.ErrorCode()), zap.Error(err))
	} else {
		logger.Error("Amazon Rekognition returned an unexpected error.", zap.String("errorCode", apiErr.ErrorCode()), zap.Error(err))
	}

	return WrapHandlerError(code, err)
}

func classifyErrorCode(errorCode string) (HandlerErrorCode, string) {
	switch errorCode {
	case "AccessDeniedException":
		return HandlerErrorCodeAccessDenied, "We can't process the request because you are not authorized to perform the action."
	case "InvalidParameterException":
		return HandlerErrorCodeInvalidRequest, "Input parameter violated a constraint. Validate your parameter before calling the API operation again."
	case "ProvisionedThroughputExceededException":
		return HandlerErrorCodeServiceLimitExceeded, "The number of requests exceeded your throughput limit. If you want to increase this limit, contact Amazon Rekognition."
	case "ResourceNotFoundException":
		return HandlerErrorCodeNotFound, "The resource specified in the request cannot be found."
	case "ThrottlingException":
		return HandlerErrorCodeThrottling, "Amazon Rekognition is temporarily unable to process the request. Try your call again."
	case "ResourceAlreadyExistsException":
		return HandlerErrorCodeAlreadyExists, "There is already a resource with this name. Try again with a different name."
	case "ServiceQuotaExceededException":
		return HandlerErrorCodeServiceLimitExceeded, "The size of the resource exceeds the allowed limit. For more information, see Guidelines and quotas in Amazon Rekognition."
	case "LimitExceededException":
		return HandlerErrorCodeServiceLimitExceeded, "An Amazon Rekognition service limit was exceeded."
	case "InvalidPaginationTokenException":
		return HandlerErrorCodeInvalidRequest, "Pagination token in the request is not valid."
	}

	return HandlerErrorCodeServiceInternalError, ""
}
