package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"goblog/internal/config"
	"goblog/internal/models"
	"goblog/internal/repository"
)

// TokenKind — вид токена. У каждого вида свой секрет и своё время жизни,
// поэтому access-токен нельзя предъявить как refresh и наоборот.
type TokenKind string

const (
	AccessToken  TokenKind = "access"
	RefreshToken TokenKind = "refresh"
)

type RegisterRequest struct {
	Username        string
	FullName        string
	Email           string
	Password        string
	PasswordConfirm string
}

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, string, error)
	Refresh(user *models.User) (string, error)
	IssueToken(subject string, kind TokenKind) (string, error)
	VerifyToken(tokenString string, kind TokenKind) (string, error)
	Authorize(ctx context.Context, tokenString string, kind TokenKind) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	exists, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%s: %w", req.Username, models.ErrUsernameTaken)
	}

	exists, err = s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%s: %w", req.Email, models.ErrEmailTaken)
	}

	if req.Password != req.PasswordConfirm {
		return nil, models.ErrPasswordMismatch
	}

	user := &models.User{
		Username: req.Username,
		FullName: req.FullName,
		Email:    req.Email,
	}

	if err := s.userRepo.Create(ctx, user, req.Password); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (string, string, error) {
	user, err := s.userRepo.VerifyPassword(ctx, username, password)
	if err != nil {
		return "", "", err
	}

	if !user.IsActive {
		return "", "", models.ErrUserInactive
	}

	accessToken, err := s.IssueToken(user.Username, AccessToken)
	if err != nil {
		return "", "", fmt.Errorf("ошибка генерации access token: %w", err)
	}

	refreshToken, err := s.IssueToken(user.Username, RefreshToken)
	if err != nil {
		return "", "", fmt.Errorf("ошибка генерации refresh token: %w", err)
	}

	return accessToken, refreshToken, nil
}

// Refresh выпускает только новый access token: refresh-токен не ротируется
// и остаётся действительным до собственного истечения.
func (s *authService) Refresh(user *models.User) (string, error) {
	accessToken, err := s.IssueToken(user.Username, AccessToken)
	if err != nil {
		return "", fmt.Errorf("ошибка генерации access token: %w", err)
	}

	return accessToken, nil
}

func (s *authService) secretAndTTL(kind TokenKind) ([]byte, time.Duration) {
	if kind == RefreshToken {
		return []byte(s.cfg.RefreshSecretKey), s.cfg.RefreshTokenDuration
	}
	return []byte(s.cfg.AccessSecretKey), s.cfg.AccessTokenDuration
}

func (s *authService) IssueToken(subject string, kind TokenKind) (string, error) {
	secret, ttl := s.secretAndTTL(kind)
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.GetSigningMethod(s.cfg.Algorithm), claims)

	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

// VerifyToken возвращает subject токена. Истёкший, но корректно подписанный
// токен — ErrTokenExpired; любой другой дефект — ErrCredentialsInvalid.
func (s *authService) VerifyToken(tokenString string, kind TokenKind) (string, error) {
	secret, _ := s.secretAndTTL(kind)

	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{s.cfg.Algorithm}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", models.ErrTokenExpired
		}
		return "", models.ErrCredentialsInvalid
	}

	if !token.Valid || claims.Subject == "" {
		return "", models.ErrCredentialsInvalid
	}

	return claims.Subject, nil
}

// Authorize — единая точка авторизации: через неё проходят все защищённые
// маршруты, ни один хендлер не обращается к репозиториям мимо неё.
func (s *authService) Authorize(ctx context.Context, tokenString string, kind TokenKind) (*models.User, error) {
	username, err := s.VerifyToken(tokenString, kind)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, models.ErrCredentialsInvalid
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, models.ErrUserInactive
	}

	return user, nil
}
