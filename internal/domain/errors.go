package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBoard    = errors.New("invalid board")
	ErrSessionNotFound = errors.New("game not found")
	ErrInvalidConfig   = errors.New("invalid config")
)

// ErrorKind groups errors by how an adapter should answer them.
type ErrorKind string

const (
	KindUnknown       ErrorKind = ""
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindInvalidBoard  ErrorKind = "invalid_board"
	KindStorage       ErrorKind = "storage"
)

// OpError records which operation failed, on what, and why.
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
	msg := e.Op
	if e.Kind != KindUnknown {
		msg += " [" + string(e.Kind) + "]"
	}
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

// KindOf returns the kind of the outermost OpError in err's chain. Without
// one, the domain sentinels still classify; anything else is KindUnknown.
func KindOf(err error) ErrorKind {
	var oe *OpError
	if errors.As(err, &oe) && oe.Kind != KindUnknown {
		return oe.Kind
	}
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidBoard):
		return KindInvalidBoard
	case errors.Is(err, ErrInvalidConfig):
		return KindInvalidConfig
	}
	return KindUnknown
}

func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}
