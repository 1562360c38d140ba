package export

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/thronos/careerforge/internal/filex"
)

// S3Config addresses an S3-compatible bucket. Endpoint is optional and, when
// set, is used with path-style addressing (MinIO and friends).
type S3Config struct {
	Bucket    string
	Prefix    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var loadDefaultAWSConfig = config.LoadDefaultConfig

// S3Exporter uploads each kit under <Prefix>/<kit id>/.
type S3Exporter struct {
	bucket string
	prefix string
	client objectPutter
}

func NewS3Exporter(ctx context.Context, c S3Config) (*S3Exporter, error) {
	if c.Bucket == "" {
		return nil, fmt.Errorf("s3 export: bucket is required")
	}

	opts := []func(*config.LoadOptions) error{}
	if c.Region != "" {
		opts = append(opts, config.WithRegion(c.Region))
	}
	if c.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, ""),
		))
	}
	cfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("s3 export: load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3Exporter{bucket: c.Bucket, prefix: c.Prefix, client: client}, nil
}

func (e *S3Exporter) Export(ctx context.Context, kitID string, files []File) (string, error) {
	base := path.Join(e.prefix, filex.SafeName(kitID))
	for _, f := range files {
		key := path.Join(base, f.Name)
		_, err := e.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(e.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(f.Body),
			ContentType: aws.String("text/plain; charset=utf-8"),
		})
		if err != nil {
			return "", fmt.Errorf("put s3://%s/%s: %w", e.bucket, key, err)
		}
	}
	return fmt.Sprintf("s3://%s/%s/", e.bucket, base), nil
}
