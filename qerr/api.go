package qerr

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

func NewConnectionError(url string, err error) *ConnectionError {
	if err == nil {
		err = fmt.Errorf("failed connection")
	}
	baseError := newBaseError(err, CONNECTION_ERROR, http.StatusInternalServerError)
	baseError.AddDetail("url", url)

	return &ConnectionError{
		baseError,
	}
}

type ConnectionError struct {
	baseError
}

// NewAPIError wraps a non-2xx response, keeping the status code and the
// error_type tag reported by the service.
func NewAPIError(status int, errorType, message string) *APIError {
	if message == "" {
		message = "request rejected"
	}
	baseError := newBaseError(errors.New(message), API_ERROR, status)
	baseError.AddDetail("status_code", strconv.Itoa(status))
	if errorType != "" {
		baseError.AddDetail("error_type", errorType)
	}

	return &APIError{
		baseError,
	}
}

type APIError struct {
	baseError
}

func NewTableNotFoundError(table string, err error) *TableNotFoundError {
	if err == nil {
		err = fmt.Errorf("table not found")
	}
	baseError := newBaseError(err, TABLE_NOT_FOUND, http.StatusNotFound)
	baseError.AddDetail("table", table)

	return &TableNotFoundError{
		baseError,
	}
}

type TableNotFoundError struct {
	baseError
}

// FromResponse converts a non-2xx response from the service into the
// matching typed error.
func FromResponse(status int, table, errorType, message string) Error {
	if status == http.StatusNotFound {
		var err error
		if message != "" {
			err = errors.New(message)
		}
		notFound := NewTableNotFoundError(table, err)
		if errorType != "" {
			notFound.AddDetail("error_type", errorType)
		}
		return notFound
	}
	return NewAPIError(status, errorType, message)
}
