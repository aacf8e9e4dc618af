package project

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"github.com/keitakn/aws-rekognition-resource-providers/infrastructure"
	"github.com/keitakn/aws-rekognition-resource-providers/usecase/cfn"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type UseCase struct {
	RekognitionClient infrastructure.RekognitionClient
	// UniqueIdGenerator overrides the request token based generator used for missing project names.
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

	// Arn は読み取り専用なので、作成時に指定されていたらエラーにする
	if model.Arn != "" {
		return nil, cfn.NewHandlerError(cfn.HandlerErrorCodeInvalidRequest, "Attempting to set a ReadOnly Property.")
	}

	created := *model
	if created.ProjectName == "" {
		name, err := cfn.GenerateResourceIdentifier(
			req.StackId,
			req.LogicalResourceId,
			u.idGenerator(req),
			ProjectNameMaxLength,
		)
		if err != nil {
			return nil, cfn.WrapHandlerError(cfn.HandlerErrorCodeServiceInternalError, err)
		}
		created.ProjectName = name
	}

	u.Logger.Info("Cfn Request", zap.String("operation", "Create"), zap.String("projectName", created.ProjectName))

	output, err := u.RekognitionClient.CreateProject(ctx, translateToCreateInput(&created))
	if err != nil {
		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			handlerErr := cfn.AlreadyExists(TypeName, created.ProjectName, err)
			u.Logger.Warn(handlerErr.Message)
			return nil, handlerErr
		}

		return nil, cfn.TranslateError(err, u.Logger)
	}

	created.Arn = aws.ToString(output.ProjectArn)

	u.Logger.Info(fmt.Sprintf("Project: %s successfully created.", created.ProjectName), zap.String("projectArn", created.Arn))

	readReq := *req
	readReq.DesiredResourceState = &created

	return u.Read(ctx, &readReq)
}

func (u *UseCase) Read(ctx context.Context, req *Request) (*ProgressEvent, error) {
	model, err := desiredModel(req)
	if err != nil {
		return nil, err
	}

	u.Logger.Info("Cfn Request", zap.String("operation", "Read"), zap.String("projectName", model.ProjectName))

	description, err := u.findProject(ctx, model.ProjectName)
	if err != nil {
		return nil, err
	}

	read, err := translateFromProjectDescription(description)
	if err != nil {
		return nil, cfn.WrapHandlerError(cfn.HandlerErrorCodeServiceInternalError, err)
	}

	return cfn.Success(read), nil
}

// Update has nothing to change, ProjectName is create-only, so it just confirms the project still exists.
func (u *UseCase) Update(ctx context.Context, req *Request) (*ProgressEvent, error) {
	return u.Read(ctx, req)
}

func (u *UseCase) Delete(ctx context.Context, req *Request) (*ProgressEvent, error) {
	model, err := desiredModel(req)
	if err != nil {
		return nil, err
	}

	u.Logger.Info("Cfn Request", zap.String("operation", "Delete"), zap.String("projectName", model.ProjectName))

	description, err := u.findProject(ctx, model.ProjectName)
	if err != nil {
		return nil, err
	}

	_, err = u.RekognitionClient.DeleteProject(ctx, translateToDeleteInput(description))
	if err != nil {
		return nil, cfn.TranslateError(err, u.Logger)
	}

	u.Logger.Info(fmt.Sprintf("%s successfully deleted.", TypeName), zap.Stringp("projectArn", description.ProjectArn))

	return cfn.Success[ResourceModel](nil), nil
}

func (u *UseCase) List(ctx context.Context, req *Request) (*ProgressEvent, error) {
	u.Logger.Info("Cfn Request", zap.String("operation", "List"))

	output, err := u.RekognitionClient.DescribeProjects(ctx, translateToListInput(req.NextToken))
	if err != nil {
		return nil, cfn.TranslateError(err, u.Logger)
	}

	models, err := translateFromListOutput(output)
	if err != nil {
		return nil, cfn.WrapHandlerError(cfn.HandlerErrorCodeServiceInternalError, err)
	}

	u.Logger.Info(fmt.Sprintf("%s successfully listed.", TypeName), zap.Int("count", len(models)))

	return cfn.ListSuccess(models, output.NextToken), nil
}

// findProject walks every DescribeProjects page, there is no describe-by-name.
func (u *UseCase) findProject(ctx context.Context, projectName string) (*types.ProjectDescription, error) {
	var nextToken *string

	for {
		output, err := u.RekognitionClient.DescribeProjects(ctx, translateToScanInput(nextToken))
		if err != nil {
			return nil, cfn.TranslateError(err, u.Logger)
		}

		if description, ok := findProjectByName(output, projectName); ok {
			u.Logger.Info(fmt.Sprintf("%s has successfully been read.", TypeName), zap.Stringp("projectArn", description.ProjectArn))
			return description, nil
		}

		nextToken = output.NextToken
		if aws.ToString(nextToken) == "" {
			handlerErr := cfn.NotFound(TypeName, projectName)
			u.Logger.Warn(handlerErr.Message)
			return nil, handlerErr
		}
	}
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
