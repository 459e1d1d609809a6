package qerr

import (
	"fmt"
	"net/http"
)

const (
	// QUERY CONSTRUCTION:
	INVALID_QUERY = "Invalid Query"

	// CONFIGURATION:
	INVALID_CONFIG = "Invalid Config"

	// TRANSPORT:
	CONNECTION_ERROR = "Connection Error"
	API_ERROR        = "API Error"
	TABLE_NOT_FOUND  = "Table Not Found"

	// MISCELLANEOUS:
	INTERNAL_ERROR   = "Internal Error"
	INVALID_ARGUMENT = "Invalid Argument"
)

type JSONStackTrace map[string]interface{}

// Error is implemented by every typed error in this package. GetStatus is
// the HTTP status the condition maps to; GetType is the error_type tag.
type Error interface {
	GetStatus() int
	GetType() string
	AddDetail(key, value string)
	Details() map[string]string
	Stack() JSONStackTrace
	Error() string
}

func newBaseError(err error, errorType string, status int) baseError {
	if err == nil {
		err = fmt.Errorf("initial error")
	}
	genericError := NewGenericError(err)

	return baseError{
		status:       status,
		errorType:    errorType,
		GenericError: genericError,
	}
}

type baseError struct {
	status    int
	errorType string
	GenericError
}

func (e *baseError) GetStatus() int {
	return e.status
}

func (e *baseError) GetType() string {
	return e.errorType
}

func (e *baseError) AddDetail(key, value string) {
	e.GenericError.AddDetail(key, value)
}

func (e *baseError) Error() string {
	return e.GenericError.Error()
}

func NewInternalError(err error) *InternalError {
	if err == nil {
		err = fmt.Errorf("internal")
	}
	baseError := newBaseError(err, INTERNAL_ERROR, http.StatusInternalServerError)

	return &InternalError{
		baseError,
	}
}

type InternalError struct {
	baseError
}

func NewInvalidArgumentError(err error) *InvalidArgumentError {
	if err == nil {
		err = fmt.Errorf("invalid argument")
	}
	baseError := newBaseError(err, INVALID_ARGUMENT, http.StatusBadRequest)

	return &InvalidArgumentError{
		baseError,
	}
}

type InvalidArgumentError struct {
	baseError
}
