// Package storage contains the built-in object storage provider clients.
package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/scribeflow/scribeflow/pkg/providers"
)

// S3Config configures the S3 client. Endpoint is optional; set it for
// S3-compatible stores (MinIO, R2, OSS) together with ForcePathStyle.
type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	ForcePathStyle  bool
}

// S3 implements providers.StorageClient on any S3-compatible store.
type S3 struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucket        string
}

// NewS3 constructs an S3 storage client. When no static credentials are
// given the default AWS credential chain applies.
func NewS3(ctx context.Context, cfg S3Config) (*S3, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3: bucket must not be empty")
	}

	optFns := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		optFns = append(optFns, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, fmt.Errorf("s3: load AWS config: %w", err)
	}

	var s3Options []func(*s3.Options)
	if cfg.Endpoint != "" {
		s3Options = append(s3Options, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}
	if cfg.ForcePathStyle {
		s3Options = append(s3Options, func(o *s3.Options) {
			o.UsePathStyle = true
		})
	}

	client := s3.NewFromConfig(awsCfg, s3Options...)
	return &S3{
		client:        client,
		presignClient: s3.NewPresignClient(client),
		bucket:        cfg.Bucket,
	}, nil
}

// Provider implements providers.Client.
func (s *S3) Provider() string { return "s3" }

// PutObject implements providers.StorageClient.
func (s *S3) PutObject(ctx context.Context, key string, body io.Reader, sizeBytes int64, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if sizeBytes > 0 {
		input.ContentLength = aws.Int64(sizeBytes)
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return providers.Errorf(providers.KindTransient, s.Provider(), "put %s: %v", key, err)
	}
	return nil
}

// GetObjectURL implements providers.StorageClient. The returned URL is a
// presigned GET valid for ttl.
func (s *S3) GetObjectURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	presigned, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", providers.Errorf(providers.KindTransient, s.Provider(), "presign get %s: %v", key, err)
	}
	return presigned.URL, nil
}

// PresignPut implements providers.StorageClient.
func (s *S3) PresignPut(ctx context.Context, key string, ttl time.Duration, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	presigned, err := s.presignClient.PresignPutObject(ctx, input, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", providers.Errorf(providers.KindTransient, s.Provider(), "presign put %s: %v", key, err)
	}
	return presigned.URL, nil
}

// Delete implements providers.StorageClient.
func (s *S3) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return providers.Errorf(providers.KindTransient, s.Provider(), "delete %s: %v", key, err)
	}
	return nil
}
