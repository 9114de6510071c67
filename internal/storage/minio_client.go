package storage

import (
	"context"
	"fmt"
	"goblog/internal/config"
	"goblog/internal/models"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinIOClient struct {
	client *minio.Client
	bucket string
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.Media.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Media.MinIO.AccessKey, cfg.Media.MinIO.SecretKey, ""),
		Secure: cfg.Media.MinIO.UseSSL,
		Region: cfg.Media.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к MinIO: %w", err)
	}

	m := &MinIOClient{client: client, bucket: cfg.Media.MinIO.BucketName}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, m.bucket)
	if err != nil {
		return nil, fmt.Errorf("ошибка при проверке бакета: %w", err)
	}
	if !exists {
		err = client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{Region: cfg.Media.MinIO.Region})
		if err != nil {
			return nil, fmt.Errorf("ошибка при создании бакета: %w", err)
		}
	}

	return m, nil
}

func (m *MinIOClient) Save(ctx context.Context, name, contentType string, file io.Reader, size int64) error {
	_, err := m.client.PutObject(ctx, m.bucket, name, file, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("%w: ошибка загрузки в MinIO: %w", models.ErrUploadFailed, err)
	}

	return nil
}

func (m *MinIOClient) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	object, err := m.client.GetObject(ctx, m.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения из MinIO: %w", err)
	}

	// GetObject ленивый: отсутствие объекта видно только на Stat
	if _, err := object.Stat(); err != nil {
		object.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, fmt.Errorf("%s: %w", name, models.ErrFileNotFound)
		}
		return nil, fmt.Errorf("ошибка чтения из MinIO: %w", err)
	}

	return object, nil
}

func (m *MinIOClient) Delete(ctx context.Context, name string) error {
	err := m.client.RemoveObject(ctx, m.bucket, name, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("ошибка удаления из MinIO: %w", err)
	}

	return nil
}
