package database

import (
	"context"
	"os"
	"strings"

	"github.com/UnicloudAfrica/uniclo-sub012/internal/infrastructure/logging"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// DynamoDBOptions selects the region and, for local development, an endpoint
// override such as http://dynamodb:8000.
type DynamoDBOptions struct {
	Region   string
	Endpoint string
}

// ConnectDynamoDB creates a DynamoDB client. When an endpoint override is set the
// SDK still needs credentials, so AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY default
// to "local".
func ConnectDynamoDB(ctx context.Context, opts DynamoDBOptions) (*dynamodb.Client, error) {
	cfg, err := NewDynamoDBConfig(ctx, opts)
	if err != nil {
		logging.L().Error("[database][dynamodb] config failed", zap.Error(err))
		return nil, err
	}
	endpoint := strings.TrimSpace(opts.Endpoint)
	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
	logging.L().Info("[database][dynamodb] client ready", zap.String("region", cfg.Region), zap.String("endpoint", endpoint))
	return client, nil
}

func NewDynamoDBConfig(ctx context.Context, opts DynamoDBOptions) (aws.Config, error) {
	region := opts.Region
	if region == "" {
		region = "us-east-1"
	}
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}
	if strings.TrimSpace(opts.Endpoint) != "" {
		// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
		creds := credentials.NewStaticCredentialsProvider(
			getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			"",
		)
		loadOpts = append(loadOpts, config.WithCredentialsProvider(creds))
	}
	return config.LoadDefaultConfig(ctx, loadOpts...)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
