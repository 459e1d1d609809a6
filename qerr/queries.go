package qerr

import (
	"fmt"
	"net/http"
	"strconv"
)

func NewInvalidQueryError(err error) *InvalidQueryError {
	if err == nil {
		err = fmt.Errorf("invalid query")
	}
	baseError := newBaseError(err, INVALID_QUERY, http.StatusBadRequest)

	return &InvalidQueryError{
		baseError,
	}
}

// NewEmptyQueryPopError marks an attempt to compose sub-queries where the
// sub-query at the given position has no row filters to contribute.
func NewEmptyQueryPopError(position int) *InvalidQueryError {
	err := fmt.Errorf("sub-query has no row filters to compose")
	baseError := newBaseError(err, INVALID_QUERY, http.StatusBadRequest)
	baseError.AddDetail("query_position", strconv.Itoa(position))

	return &InvalidQueryError{
		baseError,
	}
}

type InvalidQueryError struct {
	baseError
}
