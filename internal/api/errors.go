package api

import (
	"errors"
	"net/http"

	"github.com/stockboard/stockboard/internal/apperrors"
)

func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var notFoundErr *apperrors.NotFoundError
	if errors.As(err, &notFoundErr) {
		NotFound(w, r, err, err.Error())
		return
	}

	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		ValidationFailed(w, r, validationErr)
		return
	}

	var conflictErr *apperrors.ConflictError
	if errors.As(err, &conflictErr) {
		ConflictError(w, r, err, err.Error())
		return
	}

	InternalError(w, r, err, "internal server error")
}
