package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/ross-rotordynamics/ross-bott/internal/providers"
	"github.com/ross-rotordynamics/ross-bott/internal/structures"
)

const defaultEndpoint = "s3.amazonaws.com"

// S3Mirror keeps copies of the persisted CSV files in an S3-compatible
// bucket. Credentials come from the usual AWS environment variables.
type S3Mirror struct {
	client *minio.Client
	bucket string
}

func NewMirrorProvider(conf *structures.Config, logger providers.Logger) (Mirror, error) {
	if conf.Storage.Bucket == "" {
		logger.Infof(providers.TypeApp, "Object storage mirror disabled (no bucket)")
		return &noopMirror{}, nil
	}

	endpoint := conf.Storage.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewEnvAWS(),
		Secure: conf.Storage.UseSSL,
		Region: conf.Storage.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("object storage client: %w", err)
	}

	logger.Infof(providers.TypeApp, "Mirroring series files to bucket %s", conf.Storage.Bucket)
	return &S3Mirror{client: client, bucket: conf.Storage.Bucket}, nil
}

func (m *S3Mirror) Upload(ctx context.Context, name string, data []byte) error {
	_, err := m.client.PutObject(ctx, m.bucket, name, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "text/csv"})
	return err
}

func (m *S3Mirror) Fetch(ctx context.Context, name string) ([]byte, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, os.ErrNotExist
		}
		return nil, err
	}
	return data, nil
}

// noopMirror keeps everything local when no bucket is configured.
type noopMirror struct{}

func (n *noopMirror) Upload(_ context.Context, _ string, _ []byte) error {
	return nil
}

func (n *noopMirror) Fetch(_ context.Context, _ string) ([]byte, error) {
	return nil, os.ErrNotExist
}
