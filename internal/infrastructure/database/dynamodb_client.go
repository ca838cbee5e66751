package database

import (
	"context"
	"os"
	"strings"

	"storefront_tracking/internal/logging"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

const defaultRegion = "us-east-1"

// Options selects the DynamoDB account and endpoint. An empty Endpoint uses
// the regional AWS endpoint; a non-empty one points at DynamoDB Local.
type Options struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// OptionsFromEnv reads AWS_REGION, DYNAMODB_ENDPOINT, AWS_ACCESS_KEY_ID and
// AWS_SECRET_ACCESS_KEY. Credentials default to "local".
func OptionsFromEnv() Options {
	return Options{
		Region:          getenvDefault("AWS_REGION", defaultRegion),
		Endpoint:        strings.TrimSpace(os.Getenv("DYNAMODB_ENDPOINT")),
		AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
	}
}

// NewDynamoDBClient builds a client for the session flag and configurator
// tables.
func NewDynamoDBClient(ctx context.Context, opts Options) (*dynamodb.Client, error) {
	if opts.Region == "" {
		opts.Region = defaultRegion
	}

	// DynamoDB Local ignores credentials, the SDK still requires some.
	creds := credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, "")

	logging.Named("database").Info("[database][dynamodb] loading config",
		zap.String("region", opts.Region), zap.Bool("custom_endpoint", opts.Endpoint != ""))

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(opts.Region),
		config.WithCredentialsProvider(creds),
	)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	}), nil
}

// ConnectDynamoDB is NewDynamoDBClient with env options; it exits the process
// on failure and is meant for the API startup path only.
func ConnectDynamoDB() *dynamodb.Client {
	client, err := NewDynamoDBClient(context.Background(), OptionsFromEnv())
	if err != nil {
		logging.Named("database").Fatal("[database][dynamodb] failed to create client", zap.Error(err))
	}
	return client
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
