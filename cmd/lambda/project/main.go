package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/keitakn/aws-rekognition-resource-providers/application"
	"github.com/keitakn/aws-rekognition-resource-providers/infrastructure"
	"github.com/keitakn/aws-rekognition-resource-providers/usecase/project"
	"go.uber.org/zap"
)

var handler *application.ResourceHandler[project.ResourceModel, project.CallbackContext]

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

	logger = logger.With(zap.String("typeName", project.TypeName))

	handler = &application.ResourceHandler[project.ResourceModel, project.CallbackContext]{
		UseCase: &project.UseCase{
			RekognitionClient: rekognitionClient,
			Logger:            logger,
		},
		Logger: logger,
	}
}

func main() {
	lambda.Start(handler.Handle)
}
