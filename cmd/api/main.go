package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"goblog/cmd/app"
	"goblog/internal/config"
	handlers "goblog/internal/handler"
	"goblog/internal/middleware"
	"goblog/internal/service"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.AccessSecretKey == "" || cfg.RefreshSecretKey == "" {
		log.Fatal("ACCESS_SECRET_KEY и REFRESH_SECRET_KEY не установлены в .env файле")
	}

	db, services, searchCache := app.App(cfg)
	defer db.CloseDB()
	defer searchCache.Close()

	handler := handlers.NewHandlers(services, db, searchCache, cfg)

	authRequired := middleware.Auth(services.Auth, service.AccessToken)
	refreshRequired := middleware.Auth(services.Auth, service.RefreshToken)

	router := mux.NewRouter()
	router.HandleFunc("/health", handler.HealthHandler).Methods(http.MethodGet)

	// setting up routes
	admin := router.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/register/", handler.Register).Methods(http.MethodPost)
	admin.HandleFunc("/login/", handler.Login).Methods(http.MethodPost)
	admin.Handle("/refresh/", refreshRequired(http.HandlerFunc(handler.Refresh))).Methods(http.MethodPost)
	admin.Handle("/update/", authRequired(http.HandlerFunc(handler.UpdateUser))).Methods(http.MethodPut)
	admin.Handle("/delete/", authRequired(http.HandlerFunc(handler.DeleteUser))).Methods(http.MethodDelete)
	admin.Handle("/change_password/", authRequired(http.HandlerFunc(handler.ChangePassword))).Methods(http.MethodPut)

	blog := router.PathPrefix("/blog").Subrouter()
	blog.Use(mux.MiddlewareFunc(authRequired))
	blog.HandleFunc("/create_post/", handler.CreatePost).Methods(http.MethodPost)
	blog.HandleFunc("/update_post/{id}/", handler.UpdatePost).Methods(http.MethodPut)
	blog.HandleFunc("/delete_post/{id}/", handler.DeletePost).Methods(http.MethodDelete)
	blog.HandleFunc("/show_my_posts/", handler.ShowMyPosts).Methods(http.MethodGet)
	blog.HandleFunc("/find_post/", handler.FindPost).Methods(http.MethodGet)
	blog.HandleFunc("/download_file/{name}/", handler.DownloadFile).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Сервер запущен на %s", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
