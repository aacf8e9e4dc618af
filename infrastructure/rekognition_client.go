package infrastructure

//go:generate mockgen -source=rekognition_client.go -destination=../mock/mock_rekognition_client.go -package=mock

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/rekognition"
)

type RekognitionClient interface {
	CreateCollection(
		ctx context.Context,
		params *rekognition.CreateCollectionInput,
		optFns ...func(*rekognition.Options),
	) (*rekognition.CreateCollectionOutput, error)

	DescribeCollection(
		ctx context.Context,
		params *rekognition.DescribeCollectionInput,
		optFns ...func(*rekognition.Options),
	) (*rekognition.DescribeCollectionOutput, error)

	DeleteCollection(
		ctx context.Context,
		params *rekognition.DeleteCollectionInput,
		optFns ...func(*rekognition.Options),
	) (*rekognition.DeleteCollectionOutput, error)

	ListCollections(
		ctx context.Context,
		params *rekognition.ListCollectionsInput,
		optFns ...func(*rekognition.Options),
	) (*rekognition.ListCollectionsOutput, error)

	CreateProject(
		ctx context.Context,
		params *rekognition.CreateProjectInput,
		optFns ...func(*rekognition.Options),
	) (*rekognition.CreateProjectOutput, error)

	DescribeProjects(
		ctx context.Context,
		params *rekognition.DescribeProjectsInput,
		optFns ...func(*rekognition.Options),
	) (*rekognition.DescribeProjectsOutput, error)

	DeleteProject(
		ctx context.Context,
		params *rekognition.DeleteProjectInput,
		optFns ...func(*rekognition.Options),
	) (*rekognition.DeleteProjectOutput, error)

	CreateStreamProcessor(
		ctx context.Context,
		params *rekognition.CreateStreamProcessorInput,
		optFns ...func(*rekognition.Options),
	) (*rekognition.CreateStreamProcessorOutput, error)

	DescribeStreamProcessor(
		ctx context.Context,
		params *rekognition.DescribeStreamProcessorInput,
		optFns ...func(*rekognition.Options),
	) (*rekognition.DescribeStreamProcessorOutput, error)

	DeleteStreamProcessor(
		ctx context.Context,
		params *rekognition.DeleteStreamProcessorInput,
		optFns ...func(*rekognition.Options),
	) (*rekognition.DeleteStreamProcessorOutput, error)

	ListStreamProcessors(
		ctx context.Context,
		params *rekognition.ListStreamProcessorsInput,
		optFns ...func(*rekognition.Options),
	) (*rekognition.ListStreamProcessorsOutput, error)

	ListTagsForResource(
		ctx context.Context,
		params *rekognition.ListTagsForResourceInput,
		optFns ...func(*rekognition.Options),
	) (*rekognition.ListTagsForResourceOutput, error)

	TagResource(
		ctx context.Context,
		params *rekognition.TagResourceInput,
		optFns ...func(*rekognition.Options),
	) (*rekognition.TagResourceOutput, error)

	UntagResource(
		ctx context.Context,
		params *rekognition.UntagResourceInput,
		optFns ...func(*rekognition.Options),
	) (*rekognition.UntagResourceOutput, error)
}

var _ RekognitionClient = (*rekognition.Client)(nil)
