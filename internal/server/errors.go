package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrScanNotFound indicates the requested scan does not exist
type ErrScanNotFound struct {
	ScanID uuid.UUID
}

func (e *ErrScanNotFound) Error() string {
	return fmt.Sprintf("scan not found: %s", e.ScanID)
}

// ErrPersistenceDisabled indicates the server is running without a database
type ErrPersistenceDisabled struct{}

func (e *ErrPersistenceDisabled) Error() string {
	return "scan persistence is not configured"
}

// ErrExtraction indicates an uploaded file could not be converted to text
type ErrExtraction struct {
	Message string
}

func (e *ErrExtraction) Error() string {
	return fmt.Sprintf("extraction error: %s", e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrScanNotFound:
		return http.StatusNotFound
	case *ErrPersistenceDisabled:
		return http.StatusServiceUnavailable
	case *ErrExtraction:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
