package streamprocessor

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/keitakn/aws-rekognition-resource-providers/infrastructure"
	"github.com/keitakn/aws-rekognition-resource-providers/usecase/cfn"
	"go.uber.org/zap"
)

type UseCase struct {
	RekognitionClient infrastructure.RekognitionClient
	// UniqueIdGenerator overrides the request token based generator used for missing names.
	UniqueIdGenerator infrastructure.UniqueIdGenerator
	Logger            *zap.Logger
}

type Request = cfn.Request[ResourceModel]

type ProgressEvent = cfn.ProgressEvent[ResourceModel]

func (u *UseCase) Create(ctx context.Context, req *Request, _ *CallbackContext) (*ProgressEvent, error) {
	model, err := desiredModel(req)
	if err != nil {
		return nil, err
	}

	if model.Arn != "" {
		return nil, cfn.NewHandlerError(cfn.HandlerErrorCodeInvalidRequest, "Attempting to set a ReadOnly Property.")
	}

	created := *model
	if created.Name == "" {
		name, err := cfn.GenerateResourceIdentifier(
			req.StackId,
			req.LogicalResourceId,
			u.idGenerator(req),
			NameMaxLength,
		)
		if err != nil {
			return nil, cfn.WrapHandlerError(cfn.HandlerErrorCodeServiceInternalError, err)
		}
		// Stream processor の名前は小文字に揃える
		created.Name = strings.ToLower(name)
	}

	u.Logger.Info("Cfn Request", zap.String("operation", "Create"), zap.String("name", created.Name))

	if err := u.createStreamProcessor(ctx, translateToCreateInput(&created, req.DesiredResourceTags)); err != nil {
		return nil, err
	}

	readReq := *req
	readReq.DesiredResourceState = &created

	return u.Read(ctx, &readReq)
}

func (u *UseCase) Read(ctx context.Context, req *Request) (*ProgressEvent, error) {
	model, err := desiredModel(req)
	if err != nil {
		return nil, err
	}

	u.Logger.Info("Cfn Request", zap.String("operation", "Read"), zap.String("name", model.Name))

	described, err := u.describeStreamProcessor(ctx, model)
	if err != nil {
		return nil, err
	}

	output, err := u.RekognitionClient.ListTagsForResource(ctx, translateToListTagsInput(described))
	if err != nil {
		return nil, cfn.TranslateError(err, u.Logger)
	}

	u.Logger.Info(fmt.Sprintf("%s Tags have successfully been read.", TypeName))

	return cfn.Success(translateFromListTagsOutput(output, described)), nil
}

// Update only reconciles tags. Stack tags count as tags of the stream processor too.
func (u *UseCase) Update(ctx context.Context, req *Request) (*ProgressEvent, error) {
	model, err := desiredModel(req)
	if err != nil {
		return nil, err
	}

	var previousResourceTags []cfn.Tag
	if req.PreviousResourceState != nil {
		previousResourceTags = req.PreviousResourceState.Tags
	}
	previousTags := cfn.MergeTags(req.PreviousResourceTags, cfn.TagsToMap(previousResourceTags))
	desiredTags := cfn.MergeTags(req.DesiredResourceTags, cfn.TagsToMap(model.Tags))

	if !cfn.ShouldUpdateTags(previousTags, desiredTags) {
		return u.Read(ctx, req)
	}

	u.Logger.Info(
		"[UPDATE][IN PROGRESS] Checking if resource exists",
		zap.String("name", model.Name),
		zap.String("awsAccountId", req.AwsAccountId),
	)

	described, err := u.describeStreamProcessor(ctx, model)
	if err != nil {
		return nil, err
	}

	if tagsToRemove := cfn.TagsToRemove(previousTags, desiredTags); len(tagsToRemove) == 0 {
		u.Logger.Info("No tags to remove", zap.String("arn", described.Arn))
	} else {
		input := translateToUntagResourceInput(described, tagsToRemove)
		if _, err := u.RekognitionClient.UntagResource(ctx, input); err != nil {
			return nil, cfn.TranslateError(err, u.Logger)
		}
		u.Logger.Info(fmt.Sprintf("%s successfully removed Tags.", TypeName), zap.Strings("tagKeys", input.TagKeys))
	}

	if tagsToAdd := cfn.TagsToAdd(previousTags, desiredTags); len(tagsToAdd) == 0 {
		u.Logger.Info("No tags to add", zap.String("arn", described.Arn))
	} else {
		if _, err := u.RekognitionClient.TagResource(ctx, translateToTagResourceInput(described, tagsToAdd)); err != nil {
			return nil, cfn.TranslateError(err, u.Logger)
		}
		u.Logger.Info(fmt.Sprintf("%s successfully added Tags.", TypeName), zap.Int("count", len(tagsToAdd)))
	}

	return u.Read(ctx, req)
}

func (u *UseCase) Delete(ctx context.Context, req *Request) (*ProgressEvent, error) {
	model, err := desiredModel(req)
	if err != nil {
		return nil, err
	}

	u.Logger.Info("Cfn Request", zap.String("operation", "Delete"), zap.String("name", model.Name))

	_, err = u.RekognitionClient.DeleteStreamProcessor(ctx, translateToDeleteInput(model))
	if err != nil {
		return nil, cfn.TranslateError(err, u.Logger)
	}

	u.Logger.Info(fmt.Sprintf("%s successfully deleted.", TypeName), zap.String("name", model.Name))

	return cfn.Success[ResourceModel](nil), nil
}

func (u *UseCase) List(ctx context.Context, req *Request) (*ProgressEvent, error) {
	u.Logger.Info("Cfn Request", zap.String("operation", "List"))

	output, err := u.RekognitionClient.ListStreamProcessors(ctx, translateToListInput(req.NextToken))
	if err != nil {
		return nil, cfn.TranslateError(err, u.Logger)
	}

	u.Logger.Info(fmt.Sprintf("%s successfully listed.", TypeName), zap.Int("count", len(output.StreamProcessors)))

	return cfn.ListSuccess(translateFromListOutput(output), output.NextToken), nil
}

func (u *UseCase) createStreamProcessor(ctx context.Context, input *rekognition.CreateStreamProcessorInput) error {
	output, err := u.RekognitionClient.CreateStreamProcessor(ctx, input)
	if err != nil {
		return cfn.TranslateError(err, u.Logger)
	}

	u.Logger.Info(fmt.Sprintf("%s successfully created.", TypeName), zap.Stringp("streamProcessorArn", output.StreamProcessorArn))

	return nil
}

func (u *UseCase) describeStreamProcessor(ctx context.Context, model *ResourceModel) (*ResourceModel, error) {
	output, err := u.RekognitionClient.DescribeStreamProcessor(ctx, translateToDescribeInput(model))
	if err != nil {
		return nil, cfn.TranslateError(err, u.Logger)
	}

	u.Logger.Info(fmt.Sprintf("%s has successfully been read.", TypeName), zap.String("name", model.Name))

	return translateFromDescribeOutput(output, model), nil
}

func (u *UseCase) idGenerator(req *Request) infrastructure.UniqueIdGenerator {
	if u.UniqueIdGenerator != nil {
		return u.UniqueIdGenerator
	}

	return &infrastructure.TokenUuidGenerator{Token: req.ClientRequestToken}
}

func desiredModel(req *Request) (*ResourceModel, error) {
	if req == nil || req.DesiredResourceState == nil {
		return nil, cfn.NewHandlerError(cfn.HandlerErrorCodeInvalidRequest, "Desired resource state is missing.")
	}

	return req.DesiredResourceState, nil
}
