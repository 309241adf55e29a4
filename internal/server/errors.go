package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-match/internal/fetch"
	"github.com/jonathan/resume-match/internal/session"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var notFound *session.NotFoundError
	var expired *session.ExpiredError
	var fetchErr *fetch.Error

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &expired):
		return http.StatusGone
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
