package service

import (
	"context"
	"errors"
	"fmt"

	"goblog/internal/config"
	"goblog/internal/models"
	"goblog/internal/repository"
)

type UpdateUserRequest struct {
	FullName *string
	Email    *string
	IsActive *bool
}

type ChangePasswordRequest struct {
	OldPassword        string
	NewPassword        string
	NewPasswordConfirm string
}

type UserService interface {
	UpdateUser(ctx context.Context, user *models.User, req UpdateUserRequest) (*models.User, error)
	ChangePassword(ctx context.Context, user *models.User, req ChangePasswordRequest) error
	DeleteUser(ctx context.Context, user *models.User) error
}

type userService struct {
	userRepo repository.UserRepository
	postRepo repository.PostRepository
	cfg      *config.Config
}

func NewUserService(userRepo repository.UserRepository, postRepo repository.PostRepository, cfg *config.Config) UserService {
	return &userService{
		userRepo: userRepo,
		postRepo: postRepo,
		cfg:      cfg,
	}
}

func (s *userService) UpdateUser(ctx context.Context, user *models.User, req UpdateUserRequest) (*models.User, error) {
	// перечитываем: пользователь мог исчезнуть между авторизацией и обновлением
	instance, err := s.userRepo.GetByUsername(ctx, user.Username)
	if err != nil {
		return nil, err
	}

	// применяем только переданные поля
	if req.FullName != nil {
		instance.FullName = *req.FullName
	}
	if req.Email != nil {
		instance.Email = *req.Email
	}
	if req.IsActive != nil {
		instance.IsActive = *req.IsActive
	}

	if err := s.userRepo.Update(ctx, instance); err != nil {
		return nil, err
	}

	return instance, nil
}

func (s *userService) ChangePassword(ctx context.Context, user *models.User, req ChangePasswordRequest) error {
	instance, err := s.userRepo.GetByUsername(ctx, user.Username)
	if err != nil {
		return err
	}

	if req.NewPassword != req.NewPasswordConfirm {
		return models.ErrPasswordMismatch
	}

	if _, err := s.userRepo.VerifyPassword(ctx, instance.Username, req.OldPassword); err != nil {
		if errors.Is(err, models.ErrCredentialsInvalid) {
			return models.ErrPasswordIncorrect
		}
		return err
	}

	return s.userRepo.UpdatePassword(ctx, instance.ID, req.NewPassword)
}

func (s *userService) DeleteUser(ctx context.Context, user *models.User) error {
	instance, err := s.userRepo.GetByUsername(ctx, user.Username)
	if err != nil {
		return err
	}

	count, err := s.postRepo.CountByUser(ctx, instance.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("постов: %d: %w", count, models.ErrUserHasPosts)
	}

	return s.userRepo.Delete(ctx, instance.ID)
}
