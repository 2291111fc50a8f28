package storage

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"laporin/pkg/logger"
)

type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

func NewCloudStorageClient(ctx context.Context, bucketName, credentialsPath string) (*CloudStorageClient, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

// Upload writes the object at the given path and returns its public URL.
func (c *CloudStorageClient) Upload(ctx context.Context, path string, file io.Reader, contentType string) (string, error) {
	obj := c.client.Bucket(c.bucketName).Object(path)
	wc := obj.NewWriter(ctx)
	wc.ContentType = contentType
	wc.CacheControl = "public, max-age=86400"

	if _, err := io.Copy(wc, file); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to copy file to GCS: %v", err)
	}

	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %v", err)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", fmt.Errorf("failed to set ACL: %v", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, path), nil
}

func (c *CloudStorageClient) Delete(ctx context.Context, path string) error {
	obj := c.client.Bucket(c.bucketName).Object(path)
	if err := obj.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete file: %v", err)
	}

	return nil
}

// DeletePrefix removes every object under the prefix. Individual delete
// failures are logged and skipped so one stuck object cannot block cleanup.
func (c *CloudStorageClient) DeletePrefix(ctx context.Context, prefix string) error {
	bucket := c.client.Bucket(c.bucketName)
	it := bucket.Objects(ctx, &storage.Query{Prefix: prefix})

	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to list objects under %s: %v", prefix, err)
		}

		if err := bucket.Object(attrs.Name).Delete(ctx); err != nil {
			logger.Warn("Failed to delete object %s: %v", attrs.Name, err)
		}
	}

	return nil
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}
