// AngelaMos | 2026
// response.go

package core

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

type envelope struct {
	Success bool  `json:"success"`
	Data    any   `json:"data,omitempty"`
	Error   *info `json:"error,omitempty"`
	Meta    any   `json:"meta,omitempty"`
}

type info struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type PageMeta struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // best-effort response write
	_ = json.NewEncoder(w).Encode(body)
}

func OK(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

func Created(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusCreated, envelope{Success: true, Data: data})
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func Paginated(w http.ResponseWriter, data any, page, pageSize, total int) {
	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Data:    data,
		Meta:    PageMeta{Page: page, PageSize: pageSize, Total: total},
	})
}

func JSONError(w http.ResponseWriter, err error) {
	appErr := FromError(err)

	if appErr.Status >= http.StatusInternalServerError {
		slog.Error("request failed", "error", err)
	}

	writeJSON(w, appErr.Status, envelope{
		Success: false,
		Error:   &info{Code: appErr.Code, Message: appErr.Message},
	})
}

func BadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, envelope{
		Success: false,
		Error:   &info{Code: "BAD_REQUEST", Message: message},
	})
}

func Unauthorized(w http.ResponseWriter, message string) {
	JSONError(w, UnauthorizedError(message))
}

func Forbidden(w http.ResponseWriter, message string) {
	JSONError(w, ForbiddenError(message))
}

func NotFound(w http.ResponseWriter, resource string) {
	JSONError(w, NotFoundError(resource))
}

func UnprocessableEntity(w http.ResponseWriter, message string) {
	JSONError(w, ValidationError(message))
}

func InternalServerError(w http.ResponseWriter, err error) {
	slog.Error("internal error", "error", err)
	writeJSON(w, http.StatusInternalServerError, envelope{
		Success: false,
		Error:   &info{Code: "INTERNAL", Message: "internal server error"},
	})
}

// FormatValidationError flattens validator.ValidationErrors into a single
// field-oriented message suitable for the error envelope.
func FormatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request"
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			parts = append(parts, field+" is required")
		case "email":
			parts = append(parts, field+" must be a valid email address")
		case "iso4217":
			parts = append(parts, field+" must be a valid ISO 4217 currency code")
		case "phone":
			parts = append(parts, field+" must be a valid telephone number")
		case "min":
			parts = append(parts, field+" must be at least "+fe.Param())
		case "max":
			parts = append(parts, field+" must be at most "+fe.Param())
		case "url":
			parts = append(parts, field+" must be a valid URL")
		default:
			parts = append(parts, field+" is invalid")
		}
	}

	return strings.Join(parts, "; ")
}
