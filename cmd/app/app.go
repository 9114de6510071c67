package app

import (
	"context"
	"log"

	"goblog/internal/cache"
	"goblog/internal/config"
	"goblog/internal/database"
	"goblog/internal/repository"
	"goblog/internal/service"
	"goblog/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *service.Service, *cache.Cache) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// media storage
	var store storage.Storage
	switch cfg.Media.Backend {
	case "minio":
		store, err = storage.NewMinIOClient(cfg)
		if err != nil {
			log.Fatalf("Не удалось инициализировать MinIO: %v", err)
		}
	default:
		store, err = storage.NewLocalStorage(cfg.Media.Root)
		if err != nil {
			log.Fatalf("Не удалось инициализировать медиа-каталог: %v", err)
		}
	}

	// search cache, опционален
	var searchCache *cache.Cache
	if cfg.Redis.Enabled {
		searchCache = cache.New(cfg)
		if err := searchCache.Ping(context.Background()); err != nil {
			log.Printf("Внимание: Redis недоступен, кеш отключён: %v", err)
			searchCache.Close()
			searchCache = nil
		}
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, store, searchCache)

	return db, services, searchCache
}
