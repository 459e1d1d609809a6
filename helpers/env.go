package helpers

import (
	"os"
	"strconv"
	"time"
)

// GetEnv returns the value of the environment variable key if it is set,
// otherwise the provided fallback.
func GetEnv(key, fallback string) string {
	value, has := os.LookupEnv(key)
	if !has {
		return fallback
	}
	return value
}

func getEnvGeneric(key string, fallback interface{}, convert func(string) (interface{}, error)) interface{} {
	value, has := os.LookupEnv(key)
	if !has {
		return fallback
	}
	parsed, err := convert(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// GetEnvInt parses the environment variable key as an int, falling back on
// absence or a parse failure.
func GetEnvInt(key string, fallback int) int {
	return getEnvGeneric(key, fallback, func(val string) (interface{}, error) {
		return strconv.Atoi(val)
	}).(int)
}

func GetEnvBool(key string, fallback bool) bool {
	return getEnvGeneric(key, fallback, func(val string) (interface{}, error) {
		return strconv.ParseBool(val)
	}).(bool)
}

// GetEnvDuration parses the environment variable key with time.ParseDuration,
// so values like "30s" or "2m" work.
func GetEnvDuration(key string, fallback time.Duration) time.Duration {
	return getEnvGeneric(key, fallback, func(val string) (interface{}, error) {
		return time.ParseDuration(val)
	}).(time.Duration)
}
