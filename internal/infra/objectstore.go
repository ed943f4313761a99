package infra

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"steamwiki/internal/config"
)

// ObjectStore is the narrow surface the upload and migration services
// need from the current storage backend.
type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
	PublicURL(key string) string
	// Locations lists the URL prefixes that identify objects already
	// living in this backend.
	Locations() []string
}

type s3Store struct {
	client   *s3.Client
	bucket   string
	endpoint string
	cdnBase  string
}

func NewObjectStore(cfg *config.Config) (ObjectStore, error) {
	if cfg.S3Endpoint == "" || cfg.S3Bucket == "" {
		return nil, fmt.Errorf("s3 endpoint and bucket must be configured")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		o.UsePathStyle = true
	})

	return &s3Store{
		client:   client,
		bucket:   cfg.S3Bucket,
		endpoint: cfg.S3Endpoint,
		cdnBase:  cfg.CDNBaseURL,
	}, nil
}

func (s *s3Store) Put(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	return err
}

func (s *s3Store) PublicURL(key string) string {
	if s.cdnBase != "" {
		return strings.TrimSuffix(s.cdnBase, "/") + "/" + key
	}
	return strings.TrimSuffix(s.endpoint, "/") + "/" + s.bucket + "/" + key
}

func (s *s3Store) Locations() []string {
	locations := []string{strings.TrimSuffix(s.endpoint, "/") + "/" + s.bucket}
	if s.cdnBase != "" {
		locations = append(locations, strings.TrimSuffix(s.cdnBase, "/"))
	}
	return locations
}
