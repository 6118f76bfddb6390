package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultMaxAttempts = 3

// Options configures the connection to the submissions table. Static
// credentials are optional; without them the default AWS chain is used.
type Options struct {
	Region       string
	Endpoint     string
	AccessKey    string
	SecretKey    string
	SessionToken string
	Table        string
	MaxAttempts  int
}

func (o Options) validate() error {
	if strings.TrimSpace(o.Region) == "" {
		return errors.New("dynamodb: region is required")
	}
	if o.AccessKey != "" || o.SecretKey != "" || o.SessionToken != "" {
		if o.AccessKey == "" || o.SecretKey == "" {
			return errors.New("dynamodb: access key and secret key must be set together")
		}
	}
	return nil
}

func NewClient(ctx context.Context, opts Options) (*dynamodb.Client, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}

	loadOpts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(strings.TrimSpace(opts.Region)),
		awscfg.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(retry.NewStandard(), maxAttempts)
		}),
	}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, opts.SessionToken),
		))
	}

	cfg, err := awscfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("dynamodb: load aws config: %w", err)
	}

	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	}), nil
}

// Open builds a client from opts and returns a repository on opts.Table.
func Open(ctx context.Context, opts Options) (*SubmissionRepository, error) {
	if err := validateTable(opts.Table); err != nil {
		return nil, err
	}
	client, err := NewClient(ctx, opts)
	if err != nil {
		return nil, err
	}
	return NewSubmissionRepository(client, opts.Table), nil
}

func validateTable(table string) error {
	if strings.TrimSpace(table) == "" {
		return errors.New("dynamodb: table name is required")
	}
	return nil
}
