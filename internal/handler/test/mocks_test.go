package test

import (
	"context"
	"io"
	"mime/multipart"

	"github.com/stretchr/testify/mock"

	"goblog/internal/models"
	"goblog/internal/repository"
	"goblog/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req service.RegisterRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockAuthService) Refresh(user *models.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) IssueToken(subject string, kind service.TokenKind) (string, error) {
	args := m.Called(subject, kind)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) VerifyToken(tokenString string, kind service.TokenKind) (string, error) {
	args := m.Called(tokenString, kind)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Authorize(ctx context.Context, tokenString string, kind service.TokenKind) (*models.User, error) {
	args := m.Called(ctx, tokenString, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) UpdateUser(ctx context.Context, user *models.User, req service.UpdateUserRequest) (*models.User, error) {
	args := m.Called(ctx, user, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) ChangePassword(ctx context.Context, user *models.User, req service.ChangePasswordRequest) error {
	args := m.Called(ctx, user, req)
	return args.Error(0)
}

func (m *MockUserService) DeleteUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, user *models.User, req service.CreatePostRequest, files []*multipart.FileHeader) (*models.Post, error) {
	args := m.Called(ctx, user, req, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, user *models.User, postID string, req service.UpdatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, user, postID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, user *models.User, postID string) error {
	args := m.Called(ctx, user, postID)
	return args.Error(0)
}

func (m *MockPostService) ShowMyPosts(ctx context.Context, user *models.User, filter *repository.PostFilter) ([]models.Post, error) {
	args := m.Called(ctx, user, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostService) FindPosts(ctx context.Context, filter *repository.PostFilter) ([]models.Post, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostService) DownloadFile(ctx context.Context, fileName string) (io.ReadCloser, error) {
	args := m.Called(ctx, fileName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}
