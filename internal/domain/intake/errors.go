package intake

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnknownField     = errors.New("unknown field")
	ErrInvalidSelection = errors.New("invalid selection")
	ErrNotFound         = errors.New("not found")

	// ErrInvalidState: se intentó enviar un formulario que no es submittable.
	ErrInvalidState = errors.New("invalid state")
)

// InvalidStateError detalla qué condiciones fallaban al intentar el envío.
// errors.Is(err, ErrInvalidState) es true.
type InvalidStateError struct {
	Missing []Field
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: form not submittable (missing: %s)", ErrInvalidState, joinFields(e.Missing))
}

func (e *InvalidStateError) Is(target error) bool {
	return target == ErrInvalidState
}
