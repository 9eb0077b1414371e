// Package loc tracks source positions through the assembly pipeline.
//
// Every pipeline stage tags the values it produces with the Pos of the
// byte that started them, and wraps failures in an Error carrying that
// same Pos. A stage that merely transforms values passes errors through
// untouched, so a diagnostic surfacing many stages downstream still
// points at the exact character that caused it. An Error without a
// position is legal (programs assembled without debug symbols report
// bare messages); both forms share the one propagation contract of the
// errors package.
package loc

import (
	"errors"

	"github.com/marekmiklenda/rings/translate"
)

var f = translate.From

// Pos is a line/column source position. Line and Col start at 1.
type Pos struct {
	Line int
	Col  int
}

// String renders the position in the line@column form used by diagnostics.
func (p Pos) String() string {
	return f("%d@%d", p.Line, p.Col)
}

// NextChar advances the column by one.
func (p *Pos) NextChar() {
	p.Col++
}

// NextLine advances to the first column of the following line.
func (p *Pos) NextLine() {
	p.Line++
	p.Col = 1
}

// Start is the position of the first character of a source stream.
func Start() Pos {
	return Pos{Line: 1, Col: 1}
}

// Located pairs a value with the position of the source character that
// produced it.
type Located[V any] struct {
	Pos   Pos
	Value V
}

// Transform keeps the position and replaces the value.
func Transform[V, N any](l Located[V], value N) Located[N] {
	return Located[N]{Pos: l.Pos, Value: value}
}

// Error attaches an optional source position to an error. A nil Pos
// means the failure has no source location (or location tracking was
// disabled); the message then degrades to the bare underlying error.
type Error struct {
	Pos *Pos
	Err error
}

func (e *Error) Error() string {
	if e.Pos == nil {
		return e.Err.Error()
	}

	return f("at %v: %v", *e.Pos, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// At wraps err with a position. An error already carrying a position is
// returned unchanged, preserving the original failure site.
func At(pos Pos, err error) error {
	var located *Error
	if errors.As(err, &located) && located.Pos != nil {
		return err
	}

	return &Error{Pos: &pos, Err: err}
}

// PosOf extracts the position attached to err, if any.
func PosOf(err error) (pos Pos, ok bool) {
	var located *Error
	if errors.As(err, &located) && located.Pos != nil {
		pos = *located.Pos
		ok = true
	}

	return
}
