package handlers

import (
	"errors"
	"net/http"

	apperrors "github.com/athebyme/gomarket-platform/storefront-service/pkg/errors"
	"github.com/athebyme/gomarket-platform/storefront-service/pkg/interfaces"
	"github.com/go-chi/render"
)

// errorResponse представляет структуру ответа с ошибкой
type errorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
}

// response представляет структуру успешного ответа
type response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// statusFor сопоставляет ошибку с HTTP статусом и кодом ошибки
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidFilter):
		return http.StatusBadRequest, "bad_request"
	case apperrors.IsNotFound(err):
		return http.StatusNotFound, "not_found"
	case apperrors.IsNetwork(err):
		return http.StatusBadGateway, "bad_gateway"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// writeError отдает ошибку в формате errorResponse
func writeError(w http.ResponseWriter, r *http.Request, logger interfaces.LoggerPort, err error, message string) {
	status, code := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorWithContext(r.Context(), message,
			interfaces.LogField{Key: "error", Value: err.Error()},
			interfaces.LogField{Key: "status", Value: status})
	}
	if status == http.StatusBadRequest {
		message = err.Error()
	}

	render.Status(r, status)
	render.JSON(w, r, errorResponse{
		Error:   code,
		Code:    status,
		Message: message,
	})
}

// writeJSON отдает успешный ответ
func writeJSON(w http.ResponseWriter, r *http.Request, data, meta interface{}) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, response{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}
