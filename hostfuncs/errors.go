package hostfuncs

import (
	"errors"
	"fmt"

	"github.com/reglet-dev/scriptbox/domain/entities"
)

var (
	// ErrNilFunction is returned when a callable binding holds a nil function.
	ErrNilFunction = errors.New("nil host function")

	// ErrKindMismatch is returned when a binding's value does not match its declared kind.
	ErrKindMismatch = errors.New("host value does not match declared kind")
)

// PanicError is returned in place of a panic raised by a host function,
// so the panic surfaces in the script as an exception instead of crashing the host.
type PanicError struct {
	Value    any
	Function string
	Stack    []byte
}

func (e *PanicError) Error() string {
	var msg string
	switch v := e.Value.(type) {
	case error:
		msg = v.Error()
	case string:
		msg = v
	default:
		msg = fmt.Sprintf("%v", v)
	}
	if e.Function != "" {
		return fmt.Sprintf("host function %s panicked: %s", e.Function, msg)
	}
	return "host function panicked: " + msg
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// ToErrorDetail converts the panic to a structured error.
func (e *PanicError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "call", Code: "panic"}
}
