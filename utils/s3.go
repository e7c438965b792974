package utils

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Opener reads dataset objects addressed as s3://bucket/key.
type S3Opener struct {
	client *s3.Client
}

func NewS3Opener(ctx context.Context, region string) (*S3Opener, error) {
	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config for S3: %w", err)
	}
	return &S3Opener{client: s3.NewFromConfig(cfg)}, nil
}

func (o *S3Opener) Open(ctx context.Context, url string) (io.ReadCloser, error) {
	bucket, key, err := ParseS3URL(url)
	if err != nil {
		return nil, err
	}
	out, err := o.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	return out.Body, nil
}

// ParseS3URL splits s3://bucket/path/to/key.
func ParseS3URL(url string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(url, "s3://")
	if !ok {
		return "", "", fmt.Errorf("not an s3 url: %q", url)
	}
	bucket, key, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("s3 url needs bucket and key: %q", url)
	}
	return bucket, key, nil
}
