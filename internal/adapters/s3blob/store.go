// Package s3blob stores resume files in S3-compatible object storage. The
// application never proxies file bytes; clients upload and download through
// presigned URLs.
package s3blob

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	apperrors "github.com/goldengigs/goldengigs/internal/errors"
	"github.com/goldengigs/goldengigs/internal/ports"
)

const presignExpiry = 15 * time.Minute

// Options configures the resume store. Endpoint is set for MinIO-style
// deployments and left empty for real S3.
type Options struct {
	Region    string
	Bucket    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// Store issues presigned URLs for resume blobs.
type Store struct {
	presign *s3.PresignClient
	bucket  string
}

var _ ports.BlobStore = (*Store)(nil)

// New builds a Store from opts.
func New(ctx context.Context, opts Options) (*Store, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &Store{presign: s3.NewPresignClient(client), bucket: opts.Bucket}, nil
}

// PresignResumeUpload returns a time-limited PUT URL and the object key the
// caller should record as the profile's resume location.
func (s *Store) PresignResumeUpload(ctx context.Context, principalID, filename string) (string, string, error) {
	ext := strings.ToLower(path.Ext(filename))
	if ext != ".pdf" && ext != ".doc" && ext != ".docx" {
		return "", "", apperrors.ValidationField("filename", "resume must be a pdf, doc, or docx file")
	}

	key := fmt.Sprintf("resumes/%s/%s%s", principalID, uuid.NewString(), ext)
	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", "", fmt.Errorf("presign resume upload: %w", err)
	}
	return req.URL, key, nil
}

// PresignResumeDownload returns a time-limited GET URL for a stored resume.
func (s *Store) PresignResumeDownload(ctx context.Context, objectKey string) (string, error) {
	if objectKey == "" {
		return "", apperrors.ValidationField("resume_url", "no resume on file")
	}
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", fmt.Errorf("presign resume download: %w", err)
	}
	return req.URL, nil
}
