package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/keitakn/aws-rekognition-resource-providers/application"
	"github.com/keitakn/aws-rekognition-resource-providers/infrastructure"
	"github.com/keitakn/aws-rekognition-resource-providers/usecase/streamprocessor"
	"go.uber.org/zap"
)

var handler *application.ResourceHandler[streamprocessor.ResourceModel, streamprocessor.CallbackContext]

//nolint:gochecknoinits
func init() {
	region := os.Getenv("REGION")

	logger, err := infrastructure.NewLogger(os.Getenv("LOG_LEVEL"))
	if err != nil {
		log.Fatalln(err)
	}

	ctx := context.Background()
	rekognitionClient, err := infrastructure.NewRekognitionClient(ctx, region)
	if err != nil {
		logger.Fatal("failed to create Rekognition client", zap.Error(err))
	}

	logger = logger.With(zap.String("typeName", streamprocessor.TypeName))

	handler = &application.ResourceHandler[streamprocessor.ResourceModel, streamprocessor.CallbackContext]{
		UseCase: &streamprocessor.UseCase{
			RekognitionClient: rekognitionClient,
			Logger:            logger,
		},
		Logger: logger,
	}
}

func main() {
	lambda.Start(handler.Handle)
}
