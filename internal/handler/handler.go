package handlers

import (
	"github.com/go-playground/validator/v10"

	"goblog/internal/cache"
	"goblog/internal/config"
	"goblog/internal/database"
	"goblog/internal/service"
)

type Handlers struct {
	AuthService service.AuthService
	UserService service.UserService
	PostService service.PostService
	DB          *database.DB
	Cache       *cache.Cache
	Cfg         *config.Config
	Validate    *validator.Validate
}

func NewHandlers(services *service.Service, db *database.DB, cache *cache.Cache, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthService: services.Auth,
		UserService: services.User,
		PostService: services.Post,
		DB:          db,
		Cache:       cache,
		Cfg:         cfg,
		Validate:    validator.New(),
	}
}
