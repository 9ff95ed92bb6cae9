package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// Minio stores blobs in a MinIO/S3 bucket with public read access so
// image URLs can be embedded directly in pages.
type Minio struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewMinio connects and ensures the bucket exists with a public-read
// policy. Bucket creation failure is logged but tolerated; the bucket
// may already exist under credentials that cannot create buckets.
func NewMinio(endpoint, publicURL, accessKey, secretKey, bucket string) (*Minio, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: strings.HasPrefix(publicURL, "https://"),
	})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, errBucket := client.BucketExists(ctx, bucket)
	if errBucket == nil && !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err == nil {
			policy := fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`, bucket)
			_ = client.SetBucketPolicy(ctx, bucket, policy)
			zap.S().Infof("Bucket %s created and policy set", bucket)
		} else {
			zap.S().Warnf("Failed to create bucket %s: %v", bucket, err)
		}
	}

	if publicURL == "" {
		publicURL = "http://" + endpoint
	}

	return &Minio{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

func (s *Minio) Save(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (s *Minio) Delete(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

func (s *Minio) URL(key string) string {
	// path.Join would eat the double slash in the scheme, join by hand
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, key)
}

func (s *Minio) Ping(ctx context.Context) error {
	_, err := s.client.BucketExists(ctx, s.bucket)
	return err
}
