package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"goblog/internal/models"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Detail string `json:"detail"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Detail: message})
}

// WriteSuccess - функция для успешных ответов
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// HandleServiceError разрешает доменную ошибку в пару {detail, status}.
// Сырые ошибки БД и ввода-вывода наружу не уходят.
func HandleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrUsernameTaken),
		errors.Is(err, models.ErrEmailTaken),
		errors.Is(err, models.ErrPasswordMismatch),
		errors.Is(err, models.ErrPasswordIncorrect),
		errors.Is(err, models.ErrTitleTaken),
		errors.Is(err, models.ErrUserHasPosts),
		errors.Is(err, models.ErrFileTooLarge),
		errors.Is(err, models.ErrPersistFailed):
		WriteError(w, err.Error(), http.StatusBadRequest)

	case errors.Is(err, models.ErrCredentialsInvalid),
		errors.Is(err, models.ErrTokenExpired):
		WriteError(w, err.Error(), http.StatusUnauthorized)

	case errors.Is(err, models.ErrUserInactive):
		WriteError(w, err.Error(), http.StatusForbidden)

	case errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrPostNotFound),
		errors.Is(err, models.ErrNoPosts),
		errors.Is(err, models.ErrPostsNotFound),
		errors.Is(err, models.ErrFileNotFound):
		WriteError(w, err.Error(), http.StatusNotFound)

	case errors.Is(err, models.ErrUploadFailed):
		WriteError(w, models.ErrUploadFailed.Error(), http.StatusInternalServerError)

	default:
		WriteError(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
	}
}
