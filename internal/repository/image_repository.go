package repository

import (
	"context"
	"fmt"
	"goblog/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type imageRepository struct {
	db *sqlx.DB
}

func NewImageRepository(db *sqlx.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) Create(ctx context.Context, image *models.Image) error {
	if image.Location == "" || image.Filename == "" || image.ContentType == "" || image.Size <= 0 {
		return fmt.Errorf("неполный дескриптор файла: %w", models.ErrPersistFailed)
	}

	if image.ID == "" {
		image.ID = uuid.New().String()
	}

	query := `
		INSERT INTO images (id, location, filename, size, content_type, post_id)
		VALUES (:id, :location, :filename, :size, :content_type, :post_id)
	`

	_, err := r.db.NamedExecContext(ctx, query, image)
	if err != nil {
		return fmt.Errorf("ошибка при создании изображения: %w: %w", models.ErrPersistFailed, err)
	}

	return nil
}

func (r *imageRepository) GetByPostID(ctx context.Context, postID string) ([]models.Image, error) {
	query := `SELECT * FROM images WHERE post_id = $1 ORDER BY filename`

	var images []models.Image
	err := r.db.SelectContext(ctx, &images, query, postID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении изображений: %w", err)
	}

	return images, nil
}

func (r *imageRepository) DeleteByPostID(ctx context.Context, postID string) error {
	query := `DELETE FROM images WHERE post_id = $1`

	_, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении изображений поста: %w", err)
	}

	return nil
}
