package http

import (
	"net/http"

	"github.com/nadavsuissa/EmailManager-sub000/internal/extraction"
	pkgErrors "github.com/nadavsuissa/EmailManager-sub000/pkg/errors"
)

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case extraction.ErrEmptyEmailBody:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "email body is required")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
