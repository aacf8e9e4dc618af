package cfn

import (
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws/arn"
	"github.com/keitakn/aws-rekognition-resource-providers/infrastructure"
	"github.com/pkg/errors"
)

const identifierSuffixLength = 12

// GenerateResourceIdentifier builds a name for a resource the template did not name:
// "<stack name>-<logical id>-<suffix>", with the prefix cut so the whole name fits maxLength.
func GenerateResourceIdentifier(
	stackId string,
	logicalResourceId string,
	idGenerator infrastructure.UniqueIdGenerator,
	maxLength int,
) (string, error) {
	uid, err := idGenerator.Generate()
	if err != nil {
		return "", errors.Wrap(err, "failed to UniqueIdGenerator.Generate")
	}

	suffix := strings.ReplaceAll(uid, "-", "")
	if len(suffix) > identifierSuffixLength {
		suffix = suffix[:identifierSuffixLength]
	}

	prefix := logicalResourceId
	if stackName := stackNameFromStackId(stackId); stackName != "" {
		prefix = stackName + "-" + logicalResourceId
	}

	maxPrefixLength := maxLength - (len(suffix) + 1)
	if maxPrefixLength <= 0 || prefix == "" {
		return suffix, nil
	}
	if len(prefix) > maxPrefixLength {
		prefix = prefix[:maxPrefixLength]
	}

	return prefix + "-" + suffix, nil
}

// stackNameFromStackId accepts either a stack ARN or a bare stack name.
func stackNameFromStackId(stackId string) string {
	if stackId == "" {
		return ""
	}

	parsed, err := arn.Parse(stackId)
	if err != nil {
		return stackId
	}

	// e.g. stack/mystack/f449b250-b969-11e0-a185-5081d0136786
	parts := strings.Split(parsed.Resource, "/")
	if len(parts) < 2 {
		return ""
	}

	return parts[1]
}
