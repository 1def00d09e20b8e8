package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/levantva/crewcenter/internal/common"
)

var (
	ErrUnavailable           = common.ErrorUnavailable
	ErrUnauthorized          = common.ErrorUnauthorized
	ErrNotFound              = common.ErrorNotFound
	ErrMissingAPICredentials = errors.New("api credentials are missing")
)

// StatusError carries an unexpected HTTP status that maps to no sentinel.
type StatusError struct {
	Code int
	Path string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.Code, e.Path)
}

// mapStatus converts a non-2xx response status into an error.
func mapStatus(code int, path string) error {
	switch {
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return ErrUnauthorized
	case code == http.StatusNotFound:
		return ErrNotFound
	case code >= 500:
		return fmt.Errorf("%w: status %d from %s", ErrUnavailable, code, path)
	default:
		return &StatusError{Code: code, Path: path}
	}
}

// mapError converts a transport failure into an error.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}
