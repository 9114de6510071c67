package repository

import (
	"context"
	"goblog/internal/models"

	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User, password string) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, userID, newPassword string) error
	Delete(ctx context.Context, userID string) error
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetOwnByID(ctx context.Context, postID, userID string) (*models.Post, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID, userID string) error
	GetByUser(ctx context.Context, userID string, filter *PostFilter) ([]models.Post, error)
	Find(ctx context.Context, filter *PostFilter) ([]models.Post, error)
	CountByUser(ctx context.Context, userID string) (int, error)
}

type ImageRepository interface {
	Create(ctx context.Context, image *models.Image) error
	GetByPostID(ctx context.Context, postID string) ([]models.Image, error)
	DeleteByPostID(ctx context.Context, postID string) error
}

type Repository struct {
	User  UserRepository
	Post  PostRepository
	Image ImageRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:  NewUserRepository(db),
		Post:  NewPostRepository(db),
		Image: NewImageRepository(db),
	}
}
