// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"rocketreading/internal/model"
)

// HandleError writes the JSON error response for err. Errors without an
// AppError in their chain get a generic body derived from the sentinel.
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	statusCode := MapErrorToStatusCode(err)

	var errResp model.APIErrorResponse
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		errResp = model.APIErrorResponse{Error: appErr.Detail}
	} else {
		errResp = model.APIErrorResponse{Error: defaultErrorDetail(err)}
	}

	if statusCode >= http.StatusInternalServerError {
		logger.Error("Request failed", "status", statusCode, "error", err)
	} else {
		logger.Warn("Request rejected", "status", statusCode, "error", err)
	}

	RespondWithJSON(w, statusCode, errResp)
}

// MapErrorToStatusCode maps the sentinel errors to HTTP status codes.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrPartialWrite):
		return http.StatusInternalServerError
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, model.ErrNotInitialized):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func defaultErrorDetail(err error) model.ErrorDetail {
	switch {
	case errors.Is(err, model.ErrPartialWrite):
		return model.ErrorDetail{Code: "PARTIAL_WRITE", Message: "review was not recorded; re-read the item state before retrying"}
	case errors.Is(err, model.ErrNotFound):
		return model.ErrorDetail{Code: "NOT_FOUND", Message: "resource not found"}
	case errors.Is(err, model.ErrInvalidInput):
		return model.ErrorDetail{Code: "INVALID_INPUT", Message: err.Error()}
	case errors.Is(err, model.ErrConflict):
		return model.ErrorDetail{Code: "CONFLICT", Message: "resource conflict"}
	case errors.Is(err, model.ErrNotInitialized):
		return model.ErrorDetail{Code: "STORE_UNAVAILABLE", Message: "store is not open"}
	default:
		return model.ErrorDetail{Code: "INTERNAL_SERVER_ERROR", Message: "an internal error occurred"}
	}
}

// RespondWithJSON writes payload with the given status.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Error marshaling JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR","message":"failed to encode response"}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// NewValidationErrorResponse folds validator errors into one AppError with
// translated messages.
func NewValidationErrorResponse(errs validator.ValidationErrors) *model.AppError {
	fields := make([]string, 0, len(errs))
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field())
		messages = append(messages, e.Translate(Trans))
	}

	return model.NewAppError(
		"VALIDATION_ERROR",
		strings.Join(messages, "; "),
		strings.Join(fields, ","),
		model.ErrInvalidInput,
	)
}
