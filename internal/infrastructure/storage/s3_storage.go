package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"loteamentos_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Storage implements IObjectStorage over an S3 bucket (or an S3-compatible
// local endpoint such as MinIO/LocalStack).
//
// Env vars:
//   - STORAGE_BUCKET (default: loteamentos-publico)
//   - S3_ENDPOINT (optional; switches to path-style addressing)
//   - STORAGE_PUBLIC_BASE_URL (optional; overrides the generated public URL base)
type S3Storage struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

var _ interfaces.IObjectStorage = (*S3Storage)(nil)

func NewS3Storage(cfg aws.Config) *S3Storage {
	bucket := getenvDefault("STORAGE_BUCKET", "loteamentos-publico")
	endpoint := os.Getenv("S3_ENDPOINT")

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	baseURL := os.Getenv("STORAGE_PUBLIC_BASE_URL")
	if baseURL == "" {
		if endpoint != "" {
			baseURL = fmt.Sprintf("%s/%s", strings.TrimRight(endpoint, "/"), bucket)
		} else {
			baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, cfg.Region)
		}
	}

	return &S3Storage{client: client, bucket: bucket, baseURL: baseURL}
}

func (s *S3Storage) Exists(ctx context.Context, path string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *S3Storage) Save(ctx context.Context, path string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(path),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	return err
}

func (s *S3Storage) MakePublic(ctx context.Context, path string) (string, error) {
	_, err := s.client.PutObjectAcl(ctx, &s3.PutObjectAclInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
		ACL:    types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", s.baseURL, path), nil
}

// Delete removes the object. S3 DeleteObject already succeeds on missing
// keys, matching the interface contract.
func (s *S3Storage) Delete(ctx context.Context, path string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	})
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return nil
	}
	return err
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
