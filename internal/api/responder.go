package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/nhalm/canonlog"
	"github.com/stockboard/stockboard/internal/apperrors"
)

func renderJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func renderError(w http.ResponseWriter, r *http.Request, statusCode int, err error, message, param string) {
	canonlog.AddRequestError(r.Context(), err)
	sanitizedMessage := sanitizeErrorMessage(message, statusCode)
	renderJSON(w, statusCode, NewErrorResponse(statusCode, err, sanitizedMessage, param))
}

func sanitizeErrorMessage(message string, statusCode int) string {
	if statusCode >= 500 {
		return "An internal error occurred"
	}
	if strings.Contains(strings.ToLower(message), "runtime error") {
		return "Invalid request"
	}
	return message
}

func Success(w http.ResponseWriter, data any) {
	renderJSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data any) {
	renderJSON(w, http.StatusCreated, data)
}

func List(w http.ResponseWriter, data any, page, pageSize, totalItems, totalPages int) {
	renderJSON(w, http.StatusOK, NewListResponse(data, page, pageSize, totalItems, totalPages))
}

func BadRequest(w http.ResponseWriter, r *http.Request, err error, message, param string) {
	renderError(w, r, http.StatusBadRequest, err, message, param)
}

// ValidationFailed renders a 400 that lists every invalid field.
func ValidationFailed(w http.ResponseWriter, r *http.Request, err *apperrors.ValidationError) {
	canonlog.AddRequestError(r.Context(), err)
	resp := NewErrorResponse(http.StatusBadRequest, err, err.Error(), err.FirstField())
	resp.Error.Code = "validation_failed"
	resp.Error.Fields = err.Fields
	renderJSON(w, http.StatusBadRequest, resp)
}

func NotFound(w http.ResponseWriter, r *http.Request, err error, message string) {
	renderError(w, r, http.StatusNotFound, err, message, "")
}

func InternalError(w http.ResponseWriter, r *http.Request, err error, message string) {
	renderError(w, r, http.StatusInternalServerError, err, message, "")
}

func ConflictError(w http.ResponseWriter, r *http.Request, err error, message string) {
	renderError(w, r, http.StatusConflict, err, message, "")
}
