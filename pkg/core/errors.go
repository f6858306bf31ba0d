package core

import (
	"errors"
	"fmt"
)

// ConfigError reports a structural rule or configuration violation detected
// before any query executes.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return e.Msg
}

// ConfigErrorf builds a ConfigError with a formatted message.
func ConfigErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// IsConfigError reports whether err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// QueryError is the single error kind for every backend failure surfaced
// through the execution port: connectivity, authentication, malformed SQL,
// timeouts.
type QueryError struct {
	Cause error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query execution failed: %v", e.Cause)
}

func (e *QueryError) Unwrap() error {
	return e.Cause
}

// AsQueryError returns err unchanged if it already is a QueryError, and
// wraps it otherwise. A nil err stays nil.
func AsQueryError(err error) error {
	if err == nil {
		return nil
	}
	var qe *QueryError
	if errors.As(err, &qe) {
		return err
	}
	return &QueryError{Cause: err}
}
