package streamprocessor

import (
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"github.com/keitakn/aws-rekognition-resource-providers/usecase/cfn"
)

const maxListResults = int32(50)

// translateToCreateInput sends stack tags merged with resource tags, resource tags win.
func translateToCreateInput(model *ResourceModel, stackTags map[string]string) *rekognition.CreateStreamProcessorInput {
	input := &rekognition.CreateStreamProcessorInput{
		Name:    aws.String(model.Name),
		RoleArn: aws.String(model.RoleArn),
		Input:   toStreamProcessorInput(model.KinesisVideoStream),
		Settings: &types.StreamProcessorSettings{
			FaceSearch:    toFaceSearchSettings(model.FaceSearchSettings),
			ConnectedHome: toConnectedHomeSettings(model.ConnectedHomeSettings),
		},
		Output: &types.StreamProcessorOutput{
			S3Destination:     toS3Destination(model.S3Destination),
			KinesisDataStream: toKinesisDataStream(model.KinesisDataStream),
		},
		NotificationChannel:   toNotificationChannel(model.NotificationChannel),
		RegionsOfInterest:     toRegionsOfInterest(model.BoundingBoxRegionsOfInterest, model.PolygonRegionsOfInterest),
		DataSharingPreference: toDataSharingPreference(model.DataSharingPreference),
	}

	if model.KmsKeyId != "" {
		input.KmsKeyId = aws.String(model.KmsKeyId)
	}

	if tags := cfn.MergeTags(stackTags, cfn.TagsToMap(model.Tags)); len(tags) > 0 {
		input.Tags = tags
	}

	return input
}

func translateToDescribeInput(model *ResourceModel) *rekognition.DescribeStreamProcessorInput {
	return &rekognition.DescribeStreamProcessorInput{
		Name: aws.String(model.Name),
	}
}

// translateFromDescribeOutput overwrites every field the service reports and keeps the rest (Tags) from model.
func translateFromDescribeOutput(output *rekognition.DescribeStreamProcessorOutput, model *ResourceModel) *ResourceModel {
	translated := *model

	translated.Name = aws.ToString(output.Name)
	translated.Arn = aws.ToString(output.StreamProcessorArn)
	translated.RoleArn = aws.ToString(output.RoleArn)
	translated.KmsKeyId = aws.ToString(output.KmsKeyId)
	translated.Status = string(output.Status)
	translated.StatusMessage = aws.ToString(output.StatusMessage)
	translated.KinesisVideoStream = fromStreamProcessorInput(output.Input)
	translated.FaceSearchSettings = nil
	translated.ConnectedHomeSettings = nil
	translated.S3Destination = nil
	translated.KinesisDataStream = nil

	if output.Settings != nil {
		translated.FaceSearchSettings = fromFaceSearchSettings(output.Settings.FaceSearch)
		translated.ConnectedHomeSettings = fromConnectedHomeSettings(output.Settings.ConnectedHome)
	}

	if output.Output != nil {
		translated.S3Destination = fromS3Destination(output.Output.S3Destination)
		translated.KinesisDataStream = fromKinesisDataStream(output.Output.KinesisDataStream)
	}

	translated.NotificationChannel = fromNotificationChannel(output.NotificationChannel)
	translated.BoundingBoxRegionsOfInterest, translated.PolygonRegionsOfInterest = fromRegionsOfInterest(output.RegionsOfInterest)
	translated.DataSharingPreference = fromDataSharingPreference(output.DataSharingPreference)

	return &translated
}

func translateToDeleteInput(model *ResourceModel) *rekognition.DeleteStreamProcessorInput {
	return &rekognition.DeleteStreamProcessorInput{
		Name: aws.String(model.Name),
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

func translateToListInput(nextToken *string) *rekognition.ListStreamProcessorsInput {
	return &rekognition.ListStreamProcessorsInput{
		MaxResults: aws.Int32(maxListResults),
		NextToken:  nextToken,
	}
}

// ListStreamProcessors only returns name and status, the rest of the model needs a Read.
func translateFromListOutput(output *rekognition.ListStreamProcessorsOutput) []ResourceModel {
	models := make([]ResourceModel, 0, len(output.StreamProcessors))

	for _, sp := range output.StreamProcessors {
		models = append(models, ResourceModel{
			Name:   aws.ToString(sp.Name),
			Status: string(sp.Status),
		})
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

func toStreamProcessorInput(kvs *KinesisVideoStream) *types.StreamProcessorInput {
	if kvs == nil {
		return nil
	}

	return &types.StreamProcessorInput{
		KinesisVideoStream: &types.KinesisVideoStream{Arn: aws.String(kvs.Arn)},
	}
}

func fromStreamProcessorInput(input *types.StreamProcessorInput) *KinesisVideoStream {
	if input == nil || input.KinesisVideoStream == nil {
		return nil
	}

	return &KinesisVideoStream{Arn: aws.ToString(input.KinesisVideoStream.Arn)}
}

func toFaceSearchSettings(settings *FaceSearchSettings) *types.FaceSearchSettings {
	if settings == nil {
		return nil
	}

	return &types.FaceSearchSettings{
		CollectionId:       aws.String(settings.CollectionId),
		FaceMatchThreshold: toFloat32Ptr(settings.FaceMatchThreshold),
	}
}

func fromFaceSearchSettings(settings *types.FaceSearchSettings) *FaceSearchSettings {
	if settings == nil {
		return nil
	}

	return &FaceSearchSettings{
		CollectionId:       aws.ToString(settings.CollectionId),
		FaceMatchThreshold: toFloat64Ptr(settings.FaceMatchThreshold),
	}
}

func toConnectedHomeSettings(settings *ConnectedHomeSettings) *types.ConnectedHomeSettings {
	if settings == nil {
		return nil
	}

	return &types.ConnectedHomeSettings{
		Labels:        append([]string(nil), settings.Labels...),
		MinConfidence: toFloat32Ptr(settings.MinConfidence),
	}
}

func fromConnectedHomeSettings(settings *types.ConnectedHomeSettings) *ConnectedHomeSettings {
	if settings == nil {
		return nil
	}

	return &ConnectedHomeSettings{
		Labels:        append([]string(nil), settings.Labels...),
		MinConfidence: toFloat64Ptr(settings.MinConfidence),
	}
}

func toS3Destination(destination *S3Destination) *types.S3Destination {
	if destination == nil {
		return nil
	}

	s3Destination := &types.S3Destination{Bucket: aws.String(destination.BucketName)}
	if destination.ObjectKeyPrefix != "" {
		s3Destination.KeyPrefix = aws.String(destination.ObjectKeyPrefix)
	}

	return s3Destination
}

func fromS3Destination(destination *types.S3Destination) *S3Destination {
	if destination == nil {
		return nil
	}

	return &S3Destination{
		BucketName:      aws.ToString(destination.Bucket),
		ObjectKeyPrefix: aws.ToString(destination.KeyPrefix),
	}
}

func toKinesisDataStream(kds *KinesisDataStream) *types.KinesisDataStream {
	if kds == nil {
		return nil
	}

	return &types.KinesisDataStream{Arn: aws.String(kds.Arn)}
}

func fromKinesisDataStream(kds *types.KinesisDataStream) *KinesisDataStream {
	if kds == nil {
		return nil
	}

	return &KinesisDataStream{Arn: aws.ToString(kds.Arn)}
}

func toNotificationChannel(channel *NotificationChannel) *types.StreamProcessorNotificationChannel {
	if channel == nil {
		return nil
	}

	return &types.StreamProcessorNotificationChannel{SNSTopicArn: aws.String(channel.Arn)}
}

func fromNotificationChannel(channel *types.StreamProcessorNotificationChannel) *NotificationChannel {
	if channel == nil {
		return nil
	}

	return &NotificationChannel{Arn: aws.ToString(channel.SNSTopicArn)}
}

func toDataSharingPreference(preference *DataSharingPreference) *types.StreamProcessorDataSharingPreference {
	if preference == nil {
		return nil
	}

	return &types.StreamProcessorDataSharingPreference{OptIn: preference.OptIn}
}

func fromDataSharingPreference(preference *types.StreamProcessorDataSharingPreference) *DataSharingPreference {
	if preference == nil {
		return nil
	}

	return &DataSharingPreference{OptIn: preference.OptIn}
}

// toRegionsOfInterest puts bounding boxes first, then polygons, one region each.
func toRegionsOfInterest(boundingBoxes []BoundingBox, polygons [][]Point) []types.RegionOfInterest {
	if len(boundingBoxes) == 0 && len(polygons) == 0 {
		return nil
	}

	regions := make([]types.RegionOfInterest, 0, len(boundingBoxes)+len(polygons))

	for _, box := range boundingBoxes {
		regions = append(regions, types.RegionOfInterest{
			BoundingBox: &types.BoundingBox{
				Height: aws.Float32(float32(box.Height)),
				Left:   aws.Float32(float32(box.Left)),
				Top:    aws.Float32(float32(box.Top)),
				Width:  aws.Float32(float32(box.Width)),
			},
		})
	}

	for _, polygon := range polygons {
		points := make([]types.Point, 0, len(polygon))
		for _, point := range polygon {
			points = append(points, types.Point{
				X: aws.Float32(float32(point.X)),
				Y: aws.Float32(float32(point.Y)),
			})
		}
		regions = append(regions, types.RegionOfInterest{Polygon: points})
	}

	return regions
}

// fromRegionsOfInterest splits regions back into bounding boxes and polygons, nil when there are none.
func fromRegionsOfInterest(regions []types.RegionOfInterest) ([]BoundingBox, [][]Point) {
	var boundingBoxes []BoundingBox
	var polygons [][]Point

	for _, region := range regions {
		if len(region.Polygon) > 0 {
			polygon := make([]Point, 0, len(region.Polygon))
			for _, point := range region.Polygon {
				polygon = append(polygon, Point{
					X: toFloat64(aws.ToFloat32(point.X)),
					Y: toFloat64(aws.ToFloat32(point.Y)),
				})
			}
			polygons = append(polygons, polygon)
		}

		if box := region.BoundingBox; box != nil {
			boundingBoxes = append(boundingBoxes, BoundingBox{
				Height: toFloat64(aws.ToFloat32(box.Height)),
				Left:   toFloat64(aws.ToFloat32(box.Left)),
				Top:    toFloat64(aws.ToFloat32(box.Top)),
				Width:  toFloat64(aws.ToFloat32(box.Width)),
			})
		}
	}

	return boundingBoxes, polygons
}

func toFloat32Ptr(f *float64) *float32 {
	if f == nil {
		return nil
	}

	return aws.Float32(float32(*f))
}

func toFloat64Ptr(f *float32) *float64 {
	if f == nil {
		return nil
	}

	return aws.Float64(toFloat64(*f))
}

// toFloat64 widens through the shortest decimal form of f, so 0.2 comes back as 0.2 and not 0.20000000298023224.
func toFloat64(f float32) float64 {
	widened, err := strconv.ParseFloat(strconv.FormatFloat(float64(f), 'f', -1, 32), 64)
	if err != nil {
		return float64(f)
	}

	return widened
}
