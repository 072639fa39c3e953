package s3

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type s3Session struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucket        string
}

// SessionOptions configures the S3 session. Without keys the default AWS credential
// chain (.aws/config, environment, instance role) is used.
type SessionOptions struct {
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	// Endpoint overrides the S3 endpoint, e.g. for MinIO. Path style addressing is
	// used when it is set.
	Endpoint string
}

func NewS3Session(ctx context.Context, opts SessionOptions) (*S3Repository, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("could not create s3 session: bucket is required")
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(opts.Region)}
	if opts.AccessKey != "" && opts.SecretKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	// Load aws config (.aws/config)
	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("could not load aws config: %w", err)
	}

	// Create an aws s3 service client
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	session := &s3Session{
		client:        client,
		presignClient: s3.NewPresignClient(client),
		bucket:        opts.Bucket,
	}
	return &S3Repository{
		s3_session: session,
	}, nil
}
