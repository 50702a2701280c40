// Package apperr holds the error kinds shared by the pipeline: malformed
// annotations, invalid configuration and failures of external collaborators.
package apperr

import (
	"github.com/pkg/errors"
)

var (
	ErrParse         = errors.New("parse error")
	ErrConfiguration = errors.New("configuration error")
	ErrExternal      = errors.New("external failure")
)

// Parse reports a malformed line in source. line is 1-based; 0 means the
// whole source.
func Parse(source string, line int, format string, args ...any) error {
	if line > 0 {
		return errors.Wrapf(ErrParse, "%s:%d: "+format, append([]any{source, line}, args...)...)
	}
	return errors.Wrapf(ErrParse, "%s: "+format, append([]any{source}, args...)...)
}

func Configuration(format string, args ...any) error {
	return errors.Wrapf(ErrConfiguration, format, args...)
}

// External tags err as coming from a collaborator, keeping its message.
func External(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &externalError{cause: err, msg: errors.Errorf(format, args...).Error()}
}

type externalError struct {
	cause error
	msg   string
}

func (e *externalError) Error() string {
	return e.msg + ": " + e.cause.Error()
}

func (e *externalError) Unwrap() error {
	return e.cause
}

func (e *externalError) Is(target error) bool {
	return target == ErrExternal
}

func IsParse(err error) bool {
	return errors.Is(err, ErrParse)
}

func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

func IsExternal(err error) bool {
	return errors.Is(err, ErrExternal)
}
