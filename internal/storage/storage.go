package storage

import (
	"context"
	"io"
)

// Storage — бэкенд хранения загруженных файлов. Имена объектов
// генерирует сервисный слой, бэкенд только пишет/читает/удаляет.
type Storage interface {
	Save(ctx context.Context, name, contentType string, file io.Reader, size int64) error
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Delete(ctx context.Context, name string) error
}
