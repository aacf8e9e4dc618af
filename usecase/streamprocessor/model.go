package streamprocessor

import "github.com/keitakn/aws-rekognition-resource-providers/usecase/cfn"

const TypeName = "AWS::Rekognition::StreamProcessor"

// NameMaxLength is the longest name CreateStreamProcessor accepts.
const NameMaxLength = 128

type ResourceModel struct {
	Name                         string                 `json:"Name,omitempty"`
	Arn                          string                 `json:"Arn,omitempty"`
	RoleArn                      string                 `json:"RoleArn,omitempty"`
	KmsKeyId                     string                 `json:"KmsKeyId,omitempty"`
	KinesisVideoStream           *KinesisVideoStream    `json:"KinesisVideoStream,omitempty"`
	FaceSearchSettings           *FaceSearchSettings    `json:"FaceSearchSettings,omitempty"`
	ConnectedHomeSettings        *ConnectedHomeSettings `json:"ConnectedHomeSettings,omitempty"`
	KinesisDataStream            *KinesisDataStream     `json:"KinesisDataStream,omitempty"`
	S3Destination                *S3Destination         `json:"S3Destination,omitempty"`
	NotificationChannel          *NotificationChannel   `json:"NotificationChannel,omitempty"`
	BoundingBoxRegionsOfInterest []BoundingBox          `json:"BoundingBoxRegionsOfInterest,omitempty"`
	PolygonRegionsOfInterest     [][]Point              `json:"PolygonRegionsOfInterest,omitempty"`
	DataSharingPreference        *DataSharingPreference `json:"DataSharingPreference,omitempty"`
	Status                       string                 `json:"Status,omitempty"`
	StatusMessage                string                 `json:"StatusMessage,omitempty"`
	Tags                         []cfn.Tag              `json:"Tags,omitempty"`
}

type KinesisVideoStream struct {
	Arn string `json:"Arn"`
}

type FaceSearchSettings struct {
	CollectionId       string   `json:"CollectionId"`
	FaceMatchThreshold *float64 `json:"FaceMatchThreshold,omitempty"`
}

type ConnectedHomeSettings struct {
	Labels        []string `json:"Labels"`
	MinConfidence *float64 `json:"MinConfidence,omitempty"`
}

type KinesisDataStream struct {
	Arn string `json:"Arn"`
}

type S3Destination struct {
	BucketName      string `json:"BucketName"`
	ObjectKeyPrefix string `json:"ObjectKeyPrefix,omitempty"`
}

// NotificationChannel holds the SNS topic the stream processor publishes status changes to.
type NotificationChannel struct {
	Arn string `json:"Arn"`
}

// BoundingBox values are ratios of the frame size.
type BoundingBox struct {
	Height float64 `json:"Height"`
	Left   float64 `json:"Left"`
	Top    float64 `json:"Top"`
	Width  float64 `json:"Width"`
}

type Point struct {
	X float64 `json:"X"`
	Y float64 `json:"Y"`
}

type DataSharingPreference struct {
	OptIn bool `json:"OptIn"`
}

// CallbackContext is empty, create reads the stream processor back in the same invocation.
type CallbackContext struct{}
