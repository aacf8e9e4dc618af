// Package cfn holds what every Rekognition resource handler shares: the request and progress
// event shapes exchanged with CloudFormation, the handler error taxonomy and tag reconciliation.
package cfn

type OperationStatus string

const (
	OperationStatusSuccess    OperationStatus = "SUCCESS"
	OperationStatusInProgress OperationStatus = "IN_PROGRESS"
	OperationStatusFailed     OperationStatus = "FAILED"
)

// Request is one handler invocation. M is the resource model of the resource type.
type Request[M any] struct {
	AwsAccountId          string            `json:"awsAccountId,omitempty"`
	Region                string            `json:"region,omitempty"`
	StackId               string            `json:"stackId,omitempty"`
	LogicalResourceId     string            `json:"logicalResourceIdentifier,omitempty"`
	ClientRequestToken    string            `json:"clientRequestToken,omitempty"`
	DesiredResourceState  *M                `json:"desiredResourceState,omitempty"`
	PreviousResourceState *M                `json:"previousResourceState,omitempty"`
	DesiredResourceTags   map[string]string `json:"desiredResourceTags,omitempty"`
	PreviousResourceTags  map[string]string `json:"previousResourceTags,omitempty"`
	NextToken             *string           `json:"nextToken,omitempty"`
}

// ProgressEvent is what a handler reports back. CallbackContext and CallbackDelaySeconds are only
// meaningful while IN_PROGRESS; CloudFormation hands the context back on the next invocation.
type ProgressEvent[M any] struct {
	Status               OperationStatus  `json:"status"`
	ErrorCode            HandlerErrorCode `json:"errorCode,omitempty"`
	Message              string           `json:"message,omitempty"`
	CallbackContext      interface{}      `json:"callbackContext,omitempty"`
	CallbackDelaySeconds int              `json:"callbackDelaySeconds,omitempty"`
	ResourceModel        *M               `json:"resourceModel,omitempty"`
	ResourceModels       []M              `json:"resourceModels,omitempty"`
	NextToken            *string          `json:"nextToken,omitempty"`
}

func Success[M any](model *M) *ProgressEvent[M] {
	return &ProgressEvent[M]{
		Status:        OperationStatusSuccess,
		ResourceModel: model,
	}
}

func InProgress[M any](model *M, callbackContext interface{}, delaySeconds int) *ProgressEvent[M] {
	return &ProgressEvent[M]{
		Status:               OperationStatusInProgress,
		ResourceModel:        model,
		CallbackContext:      callbackContext,
		CallbackDelaySeconds: delaySeconds,
	}
}

func ListSuccess[M any](models []M, nextToken *string) *ProgressEvent[M] {
	return &ProgressEvent[M]{
		Status:         OperationStatusSuccess,
		ResourceModels: models,
		NextToken:      nextToken,
	}
}

// Failed converts a handler error into the terminal event CloudFormation surfaces to the user.
func Failed[M any](err error) *ProgressEvent[M] {
	handlerErr := AsHandlerError(err)

	return &ProgressEvent[M]{
		Status:    OperationStatusFailed,
		ErrorCode: handlerErr.Code,
		Message:   handlerErr.Message,
	}
}
