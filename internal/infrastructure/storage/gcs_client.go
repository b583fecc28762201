package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"portfolia/pkg/errors"
)

// allowedTypes maps accepted MIME types to file extensions. Images only,
// plus PDF for the resume; everything else is rejected server-side.
var allowedTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/jpg":       ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
}

type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
	maxBytes   int64
}

func NewCloudStorageClient(ctx context.Context, bucketName string, maxBytes int64, credentialsPath string) (*CloudStorageClient, error) {
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
		maxBytes:   maxBytes,
	}, nil
}

func (c *CloudStorageClient) UploadFile(ctx context.Context, file io.Reader, fileType, folder string) (string, error) {
	ext, ok := allowedTypes[fileType]
	if !ok {
		return "", errors.BadRequest(fmt.Sprintf("File type %s is not allowed", fileType), nil)
	}
	if fileType == "application/pdf" && folder != "resume" {
		return "", errors.BadRequest("PDF uploads are only accepted for the resume", nil)
	}

	filename := fmt.Sprintf("%s/%s-%s%s", folder, uuid.New().String(), time.Now().Format("20060102150405"), ext)

	obj := c.client.Bucket(c.bucketName).Object(filename)
	wc := obj.NewWriter(ctx)
	wc.ContentType = fileType
	wc.CacheControl = "public, max-age=86400"

	// LimitReader with one extra byte so an over-limit upload is detected
	// rather than silently truncated.
	written, err := io.Copy(wc, io.LimitReader(file, c.maxBytes+1))
	if err != nil {
		wc.Close()
		return "", errors.Internal("Failed to write file to storage", err)
	}
	if written > c.maxBytes {
		wc.Close()
		obj.Delete(ctx)
		return "", errors.BadRequest(fmt.Sprintf("File exceeds the %d byte limit", c.maxBytes), nil)
	}

	if err := wc.Close(); err != nil {
		return "", errors.Internal("Failed to finalize upload", err)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", errors.Internal("Failed to make file public", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, filename), nil
}

func (c *CloudStorageClient) DeleteFile(ctx context.Context, fileURL string) error {
	const prefix = "https://storage.googleapis.com/"
	if !strings.HasPrefix(fileURL, prefix) {
		return errors.BadRequest("Invalid storage URL", nil)
	}

	path := fileURL[len(prefix):]
	parts := strings.SplitN(path, "/", 2)
	if len(parts) != 2 || parts[0] != c.bucketName {
		return errors.BadRequest("Storage URL does not belong to this bucket", nil)
	}

	obj := c.client.Bucket(c.bucketName).Object(parts[1])
	if err := obj.Delete(ctx); err != nil {
		return errors.Internal("Failed to delete file", err)
	}

	return nil
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}
