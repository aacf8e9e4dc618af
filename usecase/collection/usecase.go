package collection

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/keitakn/aws-rekognition-resource-providers/infrastructure"
	"github.com/keitakn/aws-rekognition-resource-providers/usecase/cfn"
	"go.uber.org/zap"
)

// Collection は作成直後に Describe すると見つからない事があるので、読み直す前に待ってもらう秒数
const CreateStabilizationDelaySeconds = 65

type UseCase struct {
	RekognitionClient infrastructure.RekognitionClient
	Logger            *zap.Logger
}

type Request = cfn.Request[ResourceModel]

type ProgressEvent = cfn.ProgressEvent[ResourceModel]

// Create runs in two invocations: CreateCollection and an IN_PROGRESS event carrying the Created flag,
// then, once CloudFormation calls back with that flag, a Read of the new collection.
func (u *UseCase) Create(ctx context.Context, req *Request, callbackContext *CallbackContext) (*ProgressEvent, error) {
	model, err := desiredModel(req)
	if err != nil {
		return nil, err
	}

	u.Logger.Info("Cfn Request", zap.String("operation", "Create"), zap.String("collectionId", model.CollectionId))

	if callbackContext == nil {
		callbackContext = &CallbackContext{}
	}

	if callbackContext.Created {
		return u.Read(ctx, req)
	}

	if model.Arn != "" {
		return nil, cfn.NewHandlerError(cfn.HandlerErrorCodeInvalidRequest, "Attempting to set a ReadOnly Property.")
	}

	if _, err := u.createCollection(ctx, translateToCreateInput(model)); err != nil {
		return nil, err
	}

	callbackContext.Created = true

	return cfn.InProgress(model, callbackContext, CreateStabilizationDelaySeconds), nil
}

func (u *UseCase) Read(ctx context.Context, req *Request) (*ProgressEvent, error) {
	model, err := desiredModel(req)
	if err != nil {
		return nil, err
	}

	u.Logger.Info("Cfn Request", zap.String("operation", "Read"), zap.String("collectionId", model.CollectionId))

	described, err := u.describeCollection(ctx, model)
	if err != nil {
		return nil, err
	}

	listTagsOutput, err := u.listTagsForCollection(ctx, translateToListTagsInput(described))
	if err != nil {
		return nil, err
	}

	return cfn.Success(translateFromListTagsOutput(listTagsOutput, described)), nil
}

// Update only reconciles tags, CollectionId can not change in place.
func (u *UseCase) Update(ctx context.Context, req *Request) (*ProgressEvent, error) {
	model, err := desiredModel(req)
	if err != nil {
		return nil, err
	}

	previousTags := map[string]string{}
	if req.PreviousResourceState != nil {
		previousTags = cfn.TagsToMap(req.PreviousResourceState.Tags)
	}
	desiredTags := cfn.TagsToMap(model.Tags)

	if !cfn.ShouldUpdateTags(previousTags, desiredTags) {
		return u.Read(ctx, req)
	}

	u.Logger.Info(
		"[UPDATE][IN PROGRESS] Checking if resource exists",
		zap.String("collectionId", model.CollectionId),
		zap.String("awsAccountId", req.AwsAccountId),
	)

	described, err := u.describeCollection(ctx, model)
	if err != nil {
		return nil, err
	}

	tagsToRemove := cfn.TagsToRemove(previousTags, desiredTags)
	if len(tagsToRemove) == 0 {
		u.Logger.Info("No tags to remove", zap.String("arn", described.Arn))
	} else if err := u.untagResource(ctx, translateToUntagResourceInput(described, tagsToRemove)); err != nil {
		return nil, err
	}

	tagsToAdd := cfn.TagsToAdd(previousTags, desiredTags)
	if len(tagsToAdd) == 0 {
		u.Logger.Info("No tags to add", zap.String("arn", described.Arn))
	} else if err := u.tagResource(ctx, translateToTagResourceInput(described, tagsToAdd)); err != nil {
		return nil, err
	}

	return u.Read(ctx, req)
}

func (u *UseCase) Delete(ctx context.Context, req *Request) (*ProgressEvent, error) {
	model, err := desiredModel(req)
	if err != nil {
		return nil, err
	}

	u.Logger.Info("Cfn Request", zap.String("operation", "Delete"), zap.String("collectionId", model.CollectionId))

	_, err = u.RekognitionClient.DeleteCollection(ctx, translateToDeleteInput(model))
	if err != nil {
		return nil, cfn.TranslateError(err, u.Logger)
	}

	u.Logger.Info(fmt.Sprintf("%s successfully deleted.", TypeName), zap.String("collectionId", model.CollectionId))

	return cfn.Success[ResourceModel](nil), nil
}

func (u *UseCase) List(ctx context.Context, req *Request) (*ProgressEvent, error) {
	u.Logger.Info("Cfn Request", zap.String("operation", "List"))

	output, err := u.RekognitionClient.ListCollections(ctx, translateToListInput(req.NextToken))
	if err != nil {
		return nil, cfn.TranslateError(err, u.Logger)
	}

	u.Logger.Info(fmt.Sprintf("%s successfully listed.", TypeName), zap.Int("count", len(output.CollectionIds)))

	return cfn.ListSuccess(translateFromListOutput(output), output.NextToken), nil
}

func (
	u *UseCase,
) createCollection(
	ctx context.Context,
	input *rekognition.CreateCollectionInput,
) (*rekognition.CreateCollectionOutput, error) {
	output, err := u.RekognitionClient.CreateCollection(ctx, input)
	if err != nil {
		return nil, cfn.TranslateError(err, u.Logger)
	}

	u.Logger.Info(fmt.Sprintf("%s successfully created.", TypeName), zap.Stringp("collectionArn", output.CollectionArn))

	return output, nil
}

func (u *UseCase) describeCollection(ctx context.Context, model *ResourceModel) (*ResourceModel, error) {
	output, err := u.RekognitionClient.DescribeCollection(ctx, translateToDescribeInput(model))
	if err != nil {
		return nil, cfn.TranslateError(err, u.Logger)
	}

	u.Logger.Info(fmt.Sprintf("%s has successfully been read.", TypeName), zap.String("collectionId", model.CollectionId))

	return translateFromDescribeOutput(output, model), nil
}

func (
	u *UseCase,
) listTagsForCollection(
	ctx context.Context,
	input *rekognition.ListTagsForResourceInput,
) (*rekognition.ListTagsForResourceOutput, error) {
	output, err := u.RekognitionClient.ListTagsForResource(ctx, input)
	if err != nil {
		return nil, cfn.TranslateError(err, u.Logger)
	}

	u.Logger.Info(fmt.Sprintf("%s Tags have successfully been read.", TypeName))

	return output, nil
}

func (u *UseCase) untagResource(ctx context.Context, input *rekognition.UntagResourceInput) error {
	_, err := u.RekognitionClient.UntagResource(ctx, input)
	if err != nil {
		return cfn.TranslateError(err, u.Logger)
	}

	u.Logger.Info(fmt.Sprintf("%s successfully removed Tags.", TypeName), zap.Strings("tagKeys", input.TagKeys))

	return nil
}

func (u *UseCase) tagResource(ctx context.Context, input *rekognition.TagResourceInput) error {
	_, err := u.RekognitionClient.TagResource(ctx, input)
	if err != nil {
		return cfn.TranslateError(err, u.Logger)
	}

	u.Logger.Info(fmt.Sprintf("%s successfully added Tags.", TypeName), zap.Int("count", len(input.Tags)))

	return nil
}

func desiredModel(req *Request) (*ResourceModel, error) {
	if req == nil || req.DesiredResourceState == nil {
		return nil, cfn.NewHandlerError(cfn.HandlerErrorCodeInvalidRequest, "Desired resource state is missing.")
	}

	return req.DesiredResourceState, nil
}
