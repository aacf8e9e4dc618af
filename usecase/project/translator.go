package project

import (
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/arn"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"github.com/pkg/errors"
)

const maxListResults = int32(50)

// ProjectNameFromArn decodes the name out of
// arn:aws:rekognition:us-east-1:123456789012:project/<name>/<creation timestamp>.
func ProjectNameFromArn(projectArn string) (string, error) {
	parsed, err := arn.Parse(projectArn)
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse project arn %q", projectArn)
	}

	parts := strings.SplitN(parsed.Resource, "/", 3)
	if len(parts) < 2 || parts[0] != "project" || parts[1] == "" {
		return "", errors.Errorf("unexpected project arn resource %q", parsed.Resource)
	}

	return parts[1], nil
}

// findProjectByName looks at a single DescribeProjects page.
func findProjectByName(output *rekognition.DescribeProjectsOutput, projectName string) (*types.ProjectDescription, bool) {
	for i := range output.ProjectDescriptions {
		description := output.ProjectDescriptions[i]

		name, err := ProjectNameFromArn(aws.ToString(description.ProjectArn))
		if err != nil {
			continue
		}

		if name == projectName {
			return &description, true
		}
	}

	return nil, false
}

func translateToCreateInput(model *ResourceModel) *rekognition.CreateProjectInput {
	return &rekognition.CreateProjectInput{
		ProjectName: aws.String(model.ProjectName),
	}
}

func translateToScanInput(nextToken *string) *rekognition.DescribeProjectsInput {
	return &rekognition.DescribeProjectsInput{
		NextToken: nextToken,
	}
}

func translateFromProjectDescription(description *types.ProjectDescription) (*ResourceModel, error) {
	projectArn := aws.ToString(description.ProjectArn)

	name, err := ProjectNameFromArn(projectArn)
	if err != nil {
		return nil, err
	}

	return &ResourceModel{
		ProjectName: name,
		Arn:         projectArn,
	}, nil
}

func translateToDeleteInput(description *types.ProjectDescription) *rekognition.DeleteProjectInput {
	return &rekognition.DeleteProjectInput{
		ProjectArn: description.ProjectArn,
	}
}

func translateToListInput(nextToken *string) *rekognition.DescribeProjectsInput {
	return &rekognition.DescribeProjectsInput{
		MaxResults: aws.Int32(maxListResults),
		NextToken:  nextToken,
	}
}

func translateFromListOutput(output *rekognition.DescribeProjectsOutput) ([]ResourceModel, error) {
	models := make([]ResourceModel, 0, len(output.ProjectDescriptions))

	for i := range output.ProjectDescriptions {
		model, err := translateFromProjectDescription(&output.ProjectDescriptions[i])
		if err != nil {
			return nil, err
		}

		models = append(models, *model)
	}

	return models, nil
}
