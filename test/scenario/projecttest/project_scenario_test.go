package projecttest

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"github.com/golang/mock/gomock"
	"github.com/keitakn/aws-rekognition-resource-providers/application"
	"github.com/keitakn/aws-rekognition-resource-providers/mock"
	"github.com/keitakn/aws-rekognition-resource-providers/test"
	"github.com/keitakn/aws-rekognition-resource-providers/usecase/cfn"
	"github.com/keitakn/aws-rekognition-resource-providers/usecase/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	status := m.Run()

	os.Exit(status)
}

func projects(arns ...string) []types.ProjectDescription {
	descriptions := make([]types.ProjectDescription, 0, len(arns))
	for _, a := range arns {
		descriptions = append(descriptions, types.ProjectDescription{ProjectArn: aws.String(a)})
	}

	return descriptions
}

//nolint:funlen
func TestDeleteScenario(t *testing.T) {
	ctx := context.Background()

	t.Run("deleting a project nobody has is NotFound after the last page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := mock.NewMockRekognitionClient(ctrl)
		gomock.InOrder(
			mockClient.EXPECT().
				DescribeProjects(gomock.Any(), &rekognition.DescribeProjectsInput{}).
				Return(&rekognition.DescribeProjectsOutput{
					ProjectDescriptions: projects(
						"arn:aws:rekognition:us-east-1:000000000000:project/foobar/1111111111111",
						"arn:aws:rekognition:us-east-1:000000000000:project/bar/1111111111112",
					),
					NextToken: aws.String("page-2"),
				}, nil),
			mockClient.EXPECT().
				DescribeProjects(gomock.Any(), &rekognition.DescribeProjectsInput{NextToken: aws.String("page-2")}).
				Return(&rekognition.DescribeProjectsOutput{
					ProjectDescriptions: projects("arn:aws:rekognition:us-east-1:000000000000:project/baz/1111111111113"),
				}, nil),
		)
		mockClient.EXPECT().DeleteProject(gomock.Any(), gomock.Any()).Times(0)

		logger := zaptest.NewLogger(t)
		handler := &application.ResourceHandler[project.ResourceModel, project.CallbackContext]{
			UseCase: &project.UseCase{RekognitionClient: mockClient, Logger: logger},
			Logger:  logger,
		}

		req, err := test.LoadHandlerRequest("project_delete.json")
		require.NoError(t, err)

		event, err := handler.Handle(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, cfn.OperationStatusFailed, event.Status)
		assert.Equal(t, cfn.HandlerErrorCodeNotFound, event.ErrorCode)

		eventJson, err := json.Marshal(event)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"status": "FAILED",
			"errorCode": "NotFound",
			"message": "Resource of type 'AWS::Rekognition::Project' with identifier 'foo' was not found."
		}`, string(eventJson))
	})
}
