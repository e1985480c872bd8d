package sonarr

import (
	"errors"
	"fmt"
)

// Sentinel errors for Sonarr API responses.
var (
	// ErrUnauthorized is returned when Sonarr rejects the API key.
	ErrUnauthorized = errors.New("unauthorized: invalid api key")

	// ErrNotFound is returned for 404s and for lookups with no result.
	ErrNotFound = errors.New("not found")

	// ErrNoRootFolder is returned when Sonarr has no root folder to add series under.
	ErrNoRootFolder = errors.New("no root folder configured in sonarr")
)

// APIError is returned for unexpected HTTP statuses.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("sonarr API error: %d", e.StatusCode)
	}
	return fmt.Sprintf("sonarr API error %d: %s", e.StatusCode, e.Body)
}
