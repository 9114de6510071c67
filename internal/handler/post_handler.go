package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"goblog/internal/models"
	"goblog/internal/repository"
	"goblog/internal/service"
)

type CreatePostRequest struct {
	Title   string `json:"title" validate:"required,max=250"`
	Content string `json:"content" validate:"required"`
}

type UpdatePostRequest struct {
	Content   *string `json:"content"`
	Published *bool   `json:"published"`
}

// parsePostFilter собирает фильтр из query-параметров; неизвестные
// параметры игнорируются, пустой набор означает выдачу как есть.
func parsePostFilter(r *http.Request, withUsername bool) *repository.PostFilter {
	query := r.URL.Query()
	filter := &repository.PostFilter{}

	if v := query.Get("title__like"); v != "" {
		filter.TitleLike = &v
	}
	if v := query.Get("published"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			filter.Published = &b
		}
	}
	if v := query.Get("search"); v != "" {
		filter.Search = &v
	}
	if withUsername {
		if v := query.Get("username"); v != "" {
			filter.Username = &v
		}
	}
	if v := query.Get("order_by"); v != "" {
		filter.OrderBy = strings.Split(v, ",")
	}

	return filter
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	user, ok := models.UserFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	var req CreatePostRequest
	var files []*multipart.FileHeader

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
			WriteError(w, "Ошибка при обработке формы", http.StatusBadRequest)
			return
		}
		req.Title = r.FormValue("title")
		req.Content = r.FormValue("content")
		files = r.MultipartForm.File["image"]
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
			return
		}
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные: "+err.Error(), http.StatusBadRequest)
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), user, service.CreatePostRequest{
		Title:   req.Title,
		Content: req.Content,
	}, files)
	if err != nil {
		HandleServiceError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	user, ok := models.UserFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]
	if postID == "" {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}

	var req UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.UpdatePost(r.Context(), user, postID, service.UpdatePostRequest{
		Content:   req.Content,
		Published: req.Published,
	})
	if err != nil {
		HandleServiceError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	user, ok := models.UserFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]
	if postID == "" {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}

	if err := h.PostService.DeletePost(r.Context(), user, postID); err != nil {
		HandleServiceError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Пост успешно удалён"}, http.StatusOK)
}

func (h *Handlers) ShowMyPosts(w http.ResponseWriter, r *http.Request) {
	user, ok := models.UserFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	posts, err := h.PostService.ShowMyPosts(r.Context(), user, parsePostFilter(r, false))
	if err != nil {
		HandleServiceError(w, err)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) FindPost(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.FindPosts(r.Context(), parsePostFilter(r, true))
	if err != nil {
		HandleServiceError(w, err)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) DownloadFile(w http.ResponseWriter, r *http.Request) {
	fileName := mux.Vars(r)["name"]
	if fileName == "" {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}

	file, err := h.PostService.DownloadFile(r.Context(), fileName)
	if err != nil {
		HandleServiceError(w, err)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", fileName))

	if _, err := io.Copy(w, file); err != nil {
		// заголовки уже ушли, статус не поменять
		log.Printf("Ошибка при отдаче файла %s: %v", fileName, err)
	}
}
