// internal/webutil/request.go
package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"rocketreading/internal/model"
)

// maxBodyBytes bounds request bodies; a full curriculum seed fits comfortably.
const maxBodyBytes = 1 << 20

// DecodeJSONBody decodes the request body into dst, rejecting unknown fields.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return model.NewAppError("INVALID_BODY", "request body is required", "", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return model.NewAppError("INVALID_BODY", fmt.Sprintf("malformed JSON body: %v", err), "", model.ErrInvalidInput)
	}
	return nil
}

// DecodeAndValidate decodes the body and runs struct validation on dst.
func DecodeAndValidate(r *http.Request, dst interface{}) error {
	if err := DecodeJSONBody(r, dst); err != nil {
		return err
	}
	if err := Validator.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return NewValidationErrorResponse(verrs)
		}
		return model.NewAppError("VALIDATION_ERROR", err.Error(), "", model.ErrInvalidInput)
	}
	return nil
}

// ParseTimeQuery reads an RFC 3339 query parameter, falling back to def when absent.
func ParseTimeQuery(r *http.Request, name string, def time.Time) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, model.NewAppError("INVALID_QUERY", fmt.Sprintf("%s must be an RFC 3339 timestamp", name), name, model.ErrInvalidInput)
	}
	return t, nil
}

// ParseIntParam converts a path or query value to a positive int.
func ParseIntParam(raw, name string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, model.NewAppError("INVALID_PARAMETER", fmt.Sprintf("%s must be a positive integer", name), name, model.ErrInvalidInput)
	}
	return n, nil
}
