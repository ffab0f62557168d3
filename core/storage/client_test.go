package storage_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"school-onboarding/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
			Bucket:    "test-bucket",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTP", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

type fakeClient struct {
	objects       map[string][]byte
	missingBucket bool
}

func (f *fakeClient) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return !f.missingBucket, nil
}

func (f *fakeClient) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	data, ok := f.objects[objectName]
	if !ok {
		return nil, errors.New("object not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeClient) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	return minio.UploadInfo{}, nil
}

func (f *fakeClient) ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo)
	close(ch)
	return ch
}

func TestFetchWorkbook(t *testing.T) {
	t.Run("DownloadsObjectToTempFile", func(t *testing.T) {
		client := &fakeClient{objects: map[string][]byte{
			"term1.xlsx": []byte("workbook-bytes"),
		}}

		path, err := storage.FetchWorkbook(context.Background(), client, "onboarding", "term1.xlsx")
		assert.NoError(t, err)
		defer os.Remove(path)

		data, err := os.ReadFile(path)
		assert.NoError(t, err)
		assert.Equal(t, []byte("workbook-bytes"), data)
	})

	t.Run("MissingObject", func(t *testing.T) {
		client := &fakeClient{objects: map[string][]byte{}}

		_, err := storage.FetchWorkbook(context.Background(), client, "onboarding", "missing.xlsx")
		assert.Error(t, err)
	})

	t.Run("MissingBucket", func(t *testing.T) {
		client := &fakeClient{missingBucket: true}

		_, err := storage.FetchWorkbook(context.Background(), client, "gone", "term1.xlsx")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "gone")
	})
}
