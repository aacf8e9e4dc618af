package infrastructure

import (
	"context"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/pkg/errors"
)

const (
	clientTimeout = 30 * time.Second
	// 初回呼び出しを含めた試行回数、リトライは3回まで
	clientMaxAttempts = 4
)

// NewRekognitionClient builds the client shared by every handler invocation of a Lambda container.
// Retries of individual API calls happen inside the SDK retryer, never in the handlers.
func NewRekognitionClient(ctx context.Context, region string) (RekognitionClient, error) {
	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion(region),
		config.WithHTTPClient(&http.Client{Timeout: clientTimeout}),
		config.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(retry.NewStandard(), clientMaxAttempts)
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to config.LoadDefaultConfig")
	}

	return rekognition.NewFromConfig(cfg), nil
}
