package collection

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/keitakn/aws-rekognition-resource-providers/usecase/cfn"
)

const maxListResults = int32(50)

func translateToCreateInput(model *ResourceModel) *rekognition.CreateCollectionInput {
	input := &rekognition.CreateCollectionInput{
		CollectionId: aws.String(model.CollectionId),
	}

	if tags := cfn.TagsToMap(model.Tags); len(tags) > 0 {
		input.Tags = tags
	}

	return input
}

func translateToDescribeInput(model *ResourceModel) *rekognition.DescribeCollectionInput {
	return &rekognition.DescribeCollectionInput{
		CollectionId: aws.String(model.CollectionId),
	}
}

func translateFromDescribeOutput(output *rekognition.DescribeCollectionOutput, model *ResourceModel) *ResourceModel {
	translated := *model
	translated.Arn = aws.ToString(output.CollectionARN)

	return &translated
}

func translateToDeleteInput(model *ResourceModel) *rekognition.DeleteCollectionInput {
	return &rekognition.DeleteCollectionInput{
		CollectionId: aws.String(model.CollectionId),
	}
}

func translateToListTagsInput(model *ResourceModel) *rekognition.ListTagsForResourceInput {
	return &rekognition.ListTagsForResourceInput{
		ResourceArn: aws.String(model.Arn),
	}
}

func translateFromListTagsOutput(output *rekognition.ListTagsForResourceOutput, model *ResourceModel) *ResourceModel {
	translated := *model
	translated.Tags = cfn.TagsFromMap(output.Tags)

	return &translated
}

func translateToListInput(nextToken *string) *rekognition.ListCollectionsInput {
	return &rekognition.ListCollectionsInput{
		MaxResults: aws.Int32(maxListResults),
		NextToken:  nextToken,
	}
}

// ListCollections only returns ids, the rest of the model needs a Read.
func translateFromListOutput(output *rekognition.ListCollectionsOutput) []ResourceModel {
	models := make([]ResourceModel, 0, len(output.CollectionIds))

	for _, collectionId := range output.CollectionIds {
		models = append(models, ResourceModel{CollectionId: collectionId})
	}

	return models
}

func translateToTagResourceInput(model *ResourceModel, tagsToAdd map[string]string) *rekognition.TagResourceInput {
	return &rekognition.TagResourceInput{
		ResourceArn: aws.String(model.Arn),
		Tags:        tagsToAdd,
	}
}

func translateToUntagResourceInput(model *ResourceModel, tagsToRemove []string) *rekognition.UntagResourceInput {
	return &rekognition.UntagResourceInput{
		ResourceArn: aws.String(model.Arn),
		TagKeys:     tagsToRemove,
	}
}
