package machine

import (
	"errors"

	"github.com/marekmiklenda/rings/translate"
)

var f = translate.From

var (
	// ErrZeroRingLength rejects MKR with a zero capacity. It is raised
	// at assembly time; a resolved program never trips it at runtime.
	ErrZeroRingLength = errors.New(f("cannot create a ring with zero length"))
	// ErrDivideByZero rejects DIV when the divisor ring holds zero.
	ErrDivideByZero = errors.New(f("division by zero"))
	// ErrRingLimit rejects MKR once 255 rings exist; further rings would
	// not be addressable.
	ErrRingLimit = errors.New(f("ring limit reached"))
)

// ErrInvalidRing reports an instruction addressing a ring id that was
// never created.
type ErrInvalidRing byte

func (e ErrInvalidRing) Error() string {
	return f("invalid ring %d", byte(e))
}

// ErrValueRange reports an arithmetic result outside 0..255. Results
// never wrap.
type ErrValueRange int

func (e ErrValueRange) Error() string {
	return f("arithmetic result %d does not fit in a byte", int(e))
}

// ErrRuntime tags a runtime failure with the program offset of the
// instruction that raised it.
type ErrRuntime struct {
	Offset int
	Err    error
}

func (e *ErrRuntime) Error() string {
	return f("offset %d: %v", e.Offset, e.Err)
}

func (e *ErrRuntime) Unwrap() error {
	return e.Err
}
