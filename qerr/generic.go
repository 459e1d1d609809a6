package qerr

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
)

const ENABLE_STACK_TRACE = true

func NewGenericError(err error) GenericError {
	msg := err.Error()
	return GenericError{
		msg:     msg,
		err:     eris.New(msg),
		details: map[string]string{},
	}
}

// GenericError carries a message, an eris-wrapped root error for stack
// traces, and a map of normalized detail pairs attached by typed errors.
type GenericError struct {
	msg     string
	err     error
	details map[string]string
}

// Error renders the message followed by one "key: value" line per detail.
// Detail lines are sorted by key so the rendering is stable.
func (e *GenericError) Error() string {
	msg := e.msg
	if len(e.details) > 0 {
		msg = fmt.Sprintf("%s\n", msg)
	}
	keys := make([]string, 0, len(e.details))
	for key := range e.details {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		msg = fmt.Sprintf("%s%s: %s\n", msg, key, e.details[key])
	}
	return msg
}

func (e *GenericError) Stack() JSONStackTrace {
	return eris.ToJSON(e.err, ENABLE_STACK_TRACE)
}

func (e *GenericError) Details() map[string]string {
	return e.details
}

// AddDetail normalizes the key to lower_snake_case and records the pair.
func (e *GenericError) AddDetail(key, value string) {
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ToLower(key)
	e.details[key] = value
}

// AddDetails records alternating keys and values. A trailing key without a
// value is dropped; non-string elements are rendered with fmt.Sprint.
func (e *GenericError) AddDetails(keysAndValues ...interface{}) {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		e.AddDetail(fmt.Sprint(keysAndValues[i]), fmt.Sprint(keysAndValues[i+1]))
	}
}

func (e *GenericError) SetMessage(msg string) {
	e.msg = fmt.Sprintf("%s: %s", msg, e.msg)
}
