package publish

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/df07/go-ppm-raytracer/pkg/log"
)

const (
	// UploadTimeout bounds a single PutObject call
	UploadTimeout = 30 * time.Second

	// ContentType is the MIME type of plain PPM images
	ContentType = "image/x-portable-pixmap"
)

// Config describes an S3-compatible bucket
type Config struct {
	Endpoint  string // Custom endpoint, empty for AWS
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

// Uploader stores rendered images in a bucket
type Uploader struct {
	client s3iface.S3API
	bucket string
	logger log.Logger
}

// NewUploader creates an uploader with static credentials and path-style addressing
func NewUploader(cfg Config) (*Uploader, error) {
	if cfg.Bucket == "" {
		return nil, ErrNoBucket
	}

	awsConfig := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("publish: creating session: %w", err)
	}

	return NewUploaderWithClient(s3.New(sess), cfg.Bucket), nil
}

// NewUploaderWithClient creates an uploader around an existing S3 client
func NewUploaderWithClient(client s3iface.S3API, bucket string) *Uploader {
	return &Uploader{
		client: client,
		bucket: bucket,
		logger: log.New("publish"),
	}
}

// Upload stores data under key
func (u *Uploader) Upload(ctx context.Context, key string, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	size := int64(len(data))
	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(ContentType),
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUploadFailed, key, err)
	}

	u.logger.Infof("uploaded s3://%s/%s (%d bytes)", u.bucket, key, size)
	return nil
}

// ObjectKey returns the key a render of scene finished at t is stored under
func ObjectKey(scene string, t time.Time) string {
	return fmt.Sprintf("renders/%s/render_%s.ppm", scene, t.UTC().Format("20060102_150405"))
}
