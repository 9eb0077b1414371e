package asm

import (
	"errors"

	"github.com/marekmiklenda/rings/machine"
	"github.com/marekmiklenda/rings/translate"
)

var f = translate.From

var (
	// Character decode errors
	ErrIncompleteChar = errors.New(f("incomplete UTF-8 character"))

	// Tokenizer errors
	ErrUnfinishedToken = errors.New(f("unfinished token"))

	// Statement parser errors
	ErrUnclosedStatement = errors.New(f("unclosed statement"))
)

// ErrInvalidCodepoint reports an assembled codepoint that is not a
// valid Unicode scalar value.
type ErrInvalidCodepoint uint32

func (e ErrInvalidCodepoint) Error() string {
	return f("invalid UTF-8 codepoint: %d", uint32(e))
}

// ErrInvalidChar reports a character that cannot appear in the current
// lexical context.
type ErrInvalidChar rune

func (e ErrInvalidChar) Error() string {
	return f("invalid character: %c", rune(e))
}

// ErrInvalidDigit reports a digit outside the active number system.
type ErrInvalidDigit struct {
	Radix Radix
	Char  rune
}

func (e *ErrInvalidDigit) Error() string {
	return f("invalid digit for %v number: %c", e.Radix, e.Char)
}

// ErrNumberRange reports a numeric literal that does not fit in a byte.
type ErrNumberRange struct {
	Radix Radix
	Value int
}

func (e *ErrNumberRange) Error() string {
	return f("number out of range: %d", e.Value)
}

// ErrExpression reports a $( ) constant expression that failed to
// evaluate to an integer.
type ErrExpression struct {
	Expr string
	Err  error
}

func (e *ErrExpression) Error() string {
	if e.Err == nil {
		return f("$(%v) is not a valid expression", e.Expr)
	}

	return f("$(%v) is not a valid expression: %v", e.Expr, e.Err)
}

func (e *ErrExpression) Unwrap() error {
	return e.Err
}

// ErrUnexpectedToken reports a token that cannot start or continue the
// current statement.
type ErrUnexpectedToken Token

func (e ErrUnexpectedToken) Error() string {
	return f("unexpected token: %v", Token(e))
}

// ErrLabelExpected reports a token found where a label name was
// required.
type ErrLabelExpected Token

func (e ErrLabelExpected) Error() string {
	return f("expected label, got %v", Token(e))
}

// ErrArgExpected reports a token found where an instruction argument
// was required.
type ErrArgExpected Token

func (e ErrArgExpected) Error() string {
	return f("expected instruction argument, got %v", Token(e))
}

// ErrLabelDuplicate reports a label declared more than once.
type ErrLabelDuplicate string

func (e ErrLabelDuplicate) Error() string {
	return f("duplicate label: %v", string(e))
}

// ErrLabelMissing reports a reference to a label that was never
// declared.
type ErrLabelMissing string

func (e ErrLabelMissing) Error() string {
	return f("label not found: %v", string(e))
}

// ErrArgCount reports an argument count that does not match the
// primitive's arity.
type ErrArgCount struct {
	Primitive machine.Primitive
	Want      int
	Got       int
}

func (e *ErrArgCount) Error() string {
	return f("wrong number of arguments for %v: expected %d, got %d", e.Primitive, e.Want, e.Got)
}

// ErrArgKind reports argument kinds (literal vs. label reference) that
// do not match the primitive's signature.
type ErrArgKind machine.Primitive

func (e ErrArgKind) Error() string {
	return f("invalid instruction arguments for %v", machine.Primitive(e))
}
