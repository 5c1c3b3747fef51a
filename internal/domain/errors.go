package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per ErrorKind.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
	ErrInvalidParams = errors.New("invalid parameters")
	ErrExecution     = errors.New("execution error")
)

// ErrorKind classifies failures for the CLI exit path and the TUI toasts.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindInvalidParams ErrorKind = "invalid_params"
	KindExecution     ErrorKind = "execution"
)

func (k ErrorKind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindInvalidConfig:
		return ErrInvalidConfig
	case KindInvalidParams:
		return ErrInvalidParams
	case KindExecution:
		return ErrExecution
	}
	return nil
}

// OpError carries the failing operation, its kind and an optional file path.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Op + ": " + string(e.Kind)
	if e.Path != "" {
		msg += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches the sentinel of the error's kind, so errors.Is(err, ErrNotFound)
// holds for every not-found OpError whatever its cause.
func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	s := e.Kind.sentinel()
	return s != nil && s == target
}

// KindOf returns the kind of the outermost OpError in err's chain, or "".
func KindOf(err error) ErrorKind {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return ""
}

func IsKind(err error, kind ErrorKind) bool {
	return kind != "" && KindOf(err) == kind
}
