package project

const TypeName = "AWS::Rekognition::Project"

// ProjectNameMaxLength is the longest name CreateProject accepts.
const ProjectNameMaxLength = 255

type ResourceModel struct {
	ProjectName string `json:"ProjectName,omitempty"`
	Arn         string `json:"Arn,omitempty"`
}

// CallbackContext is empty, every project operation finishes within one invocation.
type CallbackContext struct{}
