package repository

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
)

const minioNoSuchKey = "NoSuchKey"

type minioDocument struct {
	client *minio.Client
	bucket string
	object string
}

func NewMinioOverrideStore(client *minio.Client, bucket, object string) *DocumentOverrideStore {
	return &DocumentOverrideStore{backend: &minioDocument{client: client, bucket: bucket, object: object}}
}

// EnsureBucket creates the bucket when it does not exist yet.
func EnsureBucket(ctx context.Context, client *minio.Client, bucket string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", bucket, err)
	}
	if exists {
		return nil
	}
	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket %s: %w", bucket, err)
	}
	return nil
}

func (m *minioDocument) Read(ctx context.Context) ([]byte, bool, error) {
	object, err := m.client.GetObject(ctx, m.bucket, m.object, minio.GetObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == minioNoSuchKey {
			return nil, false, nil
		}
		return nil, false, m.readError(err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		if minio.ToErrorResponse(err).Code == minioNoSuchKey {
			return nil, false, nil
		}
		return nil, false, m.readError(err)
	}
	return data, true, nil
}

func (m *minioDocument) Write(ctx context.Context, data []byte) error {
	_, err := m.client.PutObject(
		ctx,
		m.bucket,
		m.object,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json; charset=utf-8"},
	)
	if err != nil {
		return fmt.Errorf("put object %s/%s: %w", m.bucket, m.object, err)
	}
	return nil
}

func (m *minioDocument) readError(err error) error {
	return fmt.Errorf("get object %s/%s: %w", m.bucket, m.object, err)
}
