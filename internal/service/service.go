package service

import (
	"goblog/internal/cache"
	"goblog/internal/config"
	"goblog/internal/repository"
	"goblog/internal/storage"
)

type Service struct {
	Auth AuthService
	User UserService
	Post PostService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage, cache *cache.Cache) *Service {
	return &Service{
		Auth: NewAuthService(rep.User, cfg),
		User: NewUserService(rep.User, rep.Post, cfg),
		Post: NewPostService(rep.Post, rep.Image, storage, cache, cfg),
	}
}
