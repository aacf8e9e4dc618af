package collection

import "github.com/keitakn/aws-rekognition-resource-providers/usecase/cfn"

const TypeName = "AWS::Rekognition::Collection"

type ResourceModel struct {
	CollectionId string    `json:"CollectionId,omitempty"`
	Arn          string    `json:"Arn,omitempty"`
	Tags         []cfn.Tag `json:"Tags,omitempty"`
}

// CallbackContext survives between invocations of one Create.
// Created means CreateCollection already succeeded and only the read back is left.
type CallbackContext struct {
	Created bool `json:"created,omitempty"`
}
