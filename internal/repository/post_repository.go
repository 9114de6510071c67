package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"goblog/internal/models"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	post.CreatedAt = time.Now()

	query := `
		INSERT INTO posts (id, title, content, published, created_at, created_by)
		VALUES (:id, :title, :content, :published, :created_at, :created_by)
	`

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return fmt.Errorf("%s: %w", post.Title, models.ErrTitleTaken)
		}
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *postRepository) GetOwnByID(ctx context.Context, postID, userID string) (*models.Post, error) {
	query := `SELECT * FROM posts WHERE id = $1 AND created_by = $2`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", postID, models.ErrPostNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

func (r *postRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var count int

	query := `SELECT COUNT(*) FROM posts WHERE title = $1`

	err := r.db.GetContext(ctx, &count, query, title)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке заголовка: %w", err)
	}

	return count > 0, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	// владелец не меняется: ownership входит в условие WHERE
	query := `
		UPDATE posts SET
			content = :content,
			published = :published
		WHERE id = :id AND created_by = :created_by
	`

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", post.ID, models.ErrPostNotFound)
	}

	return nil
}

// Delete удаляет пост вместе со строками изображений одной транзакцией.
func (r *postRepository) Delete(ctx context.Context, postID, userID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `DELETE FROM images WHERE post_id = $1`, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении изображений поста: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE id = $1 AND created_by = $2`, postID, userID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", postID, models.ErrPostNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	return nil
}

func (r *postRepository) GetByUser(ctx context.Context, userID string, filter *PostFilter) ([]models.Post, error) {
	query := `SELECT * FROM posts WHERE created_by = $1`
	args := []interface{}{userID}

	conditions, filterArgs := filter.Conditions(len(args), false)
	for _, condition := range conditions {
		query += " AND " + condition
	}
	args = append(args, filterArgs...)
	query += filter.OrderClause(false)

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов: %w", err)
	}

	return posts, nil
}

func (r *postRepository) Find(ctx context.Context, filter *PostFilter) ([]models.Post, error) {
	query := `SELECT p.*, u.username FROM posts p JOIN users u ON u.id = p.created_by`

	conditions, args := filter.Conditions(0, true)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += filter.OrderClause(true)

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске постов: %w", err)
	}

	return posts, nil
}

func (r *postRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM posts WHERE created_by = $1`

	err := r.db.GetContext(ctx, &count, query, userID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте постов пользователя: %w", err)
	}

	return count, nil
}
