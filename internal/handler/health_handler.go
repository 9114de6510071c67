package handlers

import (
	"net/http"
)

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{Status: "ok", Database: "ok", Cache: "disabled"}
	statusCode := http.StatusOK

	if err := h.DB.HealthCheck(); err != nil {
		response.Status = "degraded"
		response.Database = err.Error()
		statusCode = http.StatusServiceUnavailable
	}

	if h.Cache != nil {
		response.Cache = "ok"
		if err := h.Cache.Ping(r.Context()); err != nil {
			// кеш не критичен, статус сервиса не меняем
			response.Cache = err.Error()
		}
	}

	WriteSuccess(w, response, statusCode)
}
