package storage

import (
	"context"
	"fmt"
	"goblog/internal/models"
	"io"
	"os"
	"path/filepath"
)

type LocalStorage struct {
	root string
}

func NewLocalStorage(root string) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("не удалось создать каталог медиа %s: %w", root, err)
	}

	return &LocalStorage{root: root}, nil
}

func (s *LocalStorage) Save(ctx context.Context, name, contentType string, file io.Reader, size int64) error {
	location := filepath.Join(s.root, name)

	dst, err := os.Create(location)
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrUploadFailed, err)
	}

	_, err = io.Copy(dst, file)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		// не оставляем частично записанный файл
		os.Remove(location)
		return fmt.Errorf("%w: %w", models.ErrUploadFailed, err)
	}

	return nil
}

func (s *LocalStorage) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	location := filepath.Join(s.root, name)

	f, err := os.Open(location)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", name, models.ErrFileNotFound)
		}
		return nil, fmt.Errorf("ошибка при открытии файла: %w", err)
	}

	return f, nil
}

func (s *LocalStorage) Delete(ctx context.Context, name string) error {
	location := filepath.Join(s.root, name)

	if err := os.Remove(location); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("ошибка при удалении файла: %w", err)
	}

	return nil
}
