package logging

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Logger struct {
	*zap.SugaredLogger
}

type RequestID string

func NewRequestID() RequestID {
	return RequestID(uuid.New().String())
}

func (logger Logger) WithRequestID(id RequestID) Logger {
	return Logger{
		logger.With("request-id", id),
	}
}

// WithRequest tags every entry with the request ID plus the table the
// request targets.
func (logger Logger) WithRequest(id RequestID, table string) Logger {
	return Logger{
		logger.With("request-id", id, "table", table),
	}
}

func NewLogger(service string) Logger {
	baseLogger, err := zap.NewDevelopment(
		zap.AddStacktrace(zap.ErrorLevel),
	)
	if err != nil {
		panic(err)
	}
	logger := baseLogger.Sugar().Named(service)
	return Logger{
		logger,
	}
}
