package collectiontest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/golang/mock/gomock"
	"github.com/keitakn/aws-rekognition-resource-providers/application"
	"github.com/keitakn/aws-rekognition-resource-providers/mock"
	"github.com/keitakn/aws-rekognition-resource-providers/test"
	"github.com/keitakn/aws-rekognition-resource-providers/usecase/cfn"
	"github.com/keitakn/aws-rekognition-resource-providers/usecase/collection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const collectionArn = "arn:aws:rekognition:us-east-1:123456789012:collection/test"

func TestMain(m *testing.M) {
	status := m.Run()

	os.Exit(status)
}

func newHandler(
	t *testing.T,
	client *mock.MockRekognitionClient,
) *application.ResourceHandler[collection.ResourceModel, collection.CallbackContext] {
	logger := zaptest.NewLogger(t)

	return &application.ResourceHandler[collection.ResourceModel, collection.CallbackContext]{
		UseCase: &collection.UseCase{RekognitionClient: client, Logger: logger},
		Logger:  logger,
	}
}

//nolint:funlen
func TestCreateScenario(t *testing.T) {
	ctx := context.Background()

	t.Run("create waits for the collection and then reads it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := mock.NewMockRekognitionClient(ctrl)
		create := mockClient.EXPECT().
			CreateCollection(gomock.Any(), &rekognition.CreateCollectionInput{
				CollectionId: aws.String("test"),
				Tags:         map[string]string{"A": "1", "B": "2"},
			}).
			Return(&rekognition.CreateCollectionOutput{CollectionArn: aws.String(collectionArn)}, nil).
			Times(1)
		describe := mockClient.EXPECT().
			DescribeCollection(gomock.Any(), &rekognition.DescribeCollectionInput{CollectionId: aws.String("test")}).
			Return(&rekognition.DescribeCollectionOutput{CollectionARN: aws.String(collectionArn)}, nil).
			After(create)
		mockClient.EXPECT().
			ListTagsForResource(gomock.Any(), &rekognition.ListTagsForResourceInput{ResourceArn: aws.String(collectionArn)}).
			Return(&rekognition.ListTagsForResourceOutput{Tags: map[string]string{"A": "1", "B": "2"}}, nil).
			After(describe)

		handler := newHandler(t, mockClient)

		req, err := test.LoadHandlerRequest("collection_create.json")
		require.NoError(t, err)

		first, err := handler.Handle(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, cfn.OperationStatusInProgress, first.Status)
		assert.Equal(t, 65, first.CallbackDelaySeconds)

		firstJson, err := json.Marshal(first)
		require.NoError(t, err)
		assert.Contains(t, string(firstJson), `"callbackContext":{"created":true}`)

		// CloudFormation は callbackContext をそのまま次の呼び出しに渡してくる
		resumed, err := test.ResumeWith(req, first.CallbackContext)
		require.NoError(t, err)

		second, err := handler.Handle(ctx, resumed)
		require.NoError(t, err)

		assert.Equal(t, cfn.OperationStatusSuccess, second.Status)
		assert.Equal(t, &collection.ResourceModel{
			CollectionId: "test",
			Arn:          collectionArn,
			Tags:         []cfn.Tag{{Key: "A", Value: "1"}, {Key: "B", Value: "2"}},
		}, second.ResourceModel)
		assert.Zero(t, second.CallbackDelaySeconds)
	})
}

func TestUpdateScenario(t *testing.T) {
	ctx := context.Background()

	t.Run("untags exactly B and tags exactly C", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := mock.NewMockRekognitionClient(ctrl)
		gomock.InOrder(
			mockClient.EXPECT().
				DescribeCollection(gomock.Any(), gomock.Any()).
				Return(&rekognition.DescribeCollectionOutput{CollectionARN: aws.String(collectionArn)}, nil),
			mockClient.EXPECT().
				UntagResource(gomock.Any(), &rekognition.UntagResourceInput{
					ResourceArn: aws.String(collectionArn),
					TagKeys:     []string{"B"},
				}).
				Return(&rekognition.UntagResourceOutput{}, nil),
			mockClient.EXPECT().
				TagResource(gomock.Any(), &rekognition.TagResourceInput{
					ResourceArn: aws.String(collectionArn),
					Tags:        map[string]string{"C": "3"},
				}).
				Return(&rekognition.TagResourceOutput{}, nil),
			mockClient.EXPECT().
				DescribeCollection(gomock.Any(), gomock.Any()).
				Return(&rekognition.DescribeCollectionOutput{CollectionARN: aws.String(collectionArn)}, nil),
			mockClient.EXPECT().
				ListTagsForResource(gomock.Any(), gomock.Any()).
				Return(&rekognition.ListTagsForResourceOutput{Tags: map[string]string{"A": "1", "C": "3"}}, nil),
		)

		req, err := test.LoadHandlerRequest("collection_update.json")
		require.NoError(t, err)

		event, err := newHandler(t, mockClient).Handle(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, cfn.OperationStatusSuccess, event.Status)
		assert.Equal(t, []cfn.Tag{{Key: "A", Value: "1"}, {Key: "C", Value: "3"}}, event.ResourceModel.Tags)
	})
}

func TestListScenario(t *testing.T) {
	ctx := context.Background()

	t.Run("the next token goes out and comes back unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := mock.NewMockRekognitionClient(ctrl)
		gomock.InOrder(
			mockClient.EXPECT().
				ListCollections(gomock.Any(), &rekognition.ListCollectionsInput{MaxResults: aws.Int32(50)}).
				Return(&rekognition.ListCollectionsOutput{
					CollectionIds: []string{"first"},
					NextToken:     aws.String("page-2"),
				}, nil),
			mockClient.EXPECT().
				ListCollections(gomock.Any(), &rekognition.ListCollectionsInput{
					MaxResults: aws.Int32(50),
					NextToken:  aws.String("page-2"),
				}).
				Return(&rekognition.ListCollectionsOutput{CollectionIds: []string{"second"}}, nil),
		)

		handler := newHandler(t, mockClient)

		req, err := test.LoadHandlerRequest("collection_list.json")
		require.NoError(t, err)

		firstPage, err := handler.Handle(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, []collection.ResourceModel{{CollectionId: "first"}}, firstPage.ResourceModels)
		require.NotNil(t, firstPage.NextToken)
		assert.Equal(t, "page-2", *firstPage.NextToken)

		req.Request = json.RawMessage(fmt.Sprintf(`{"nextToken":%q}`, *firstPage.NextToken))

		secondPage, err := handler.Handle(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, []collection.ResourceModel{{CollectionId: "second"}}, secondPage.ResourceModels)
		assert.Nil(t, secondPage.NextToken)
	})
}
