package asm

import (
	"iter"
	"strconv"
	"unicode"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/marekmiklenda/rings/loc"
	"github.com/marekmiklenda/rings/machine"
)

// Radix is the number system of a numeric literal.
type Radix int

const (
	RadixBinary  = Radix(2)
	RadixOctal   = Radix(8)
	RadixDecimal = Radix(10)
	RadixHex     = Radix(16)
)

func (r Radix) String() string {
	switch r {
	case RadixBinary:
		return f("binary")
	case RadixOctal:
		return f("octal")
	case RadixDecimal:
		return f("decimal")
	case RadixHex:
		return f("hexadecimal")
	default:
		return f("unknown")
	}
}

// digit returns the value of c in this radix.
func (r Radix) digit(c rune) (value int, ok bool) {
	switch {
	case c >= '0' && c <= '9':
		value = int(c - '0')
	case c >= 'A' && c <= 'F':
		value = int(c-'A') + 10
	case c >= 'a' && c <= 'f':
		value = int(c-'a') + 10
	default:
		return
	}

	ok = value < int(r)
	return
}

// TokenKind discriminates the lexical token variants.
type TokenKind int

const (
	TokenColon = TokenKind(iota)
	TokenWord
	TokenNumber
	TokenNewline
	TokenPrimitive
)

// Token is one lexical token. Word, Num and Prim are meaningful only
// for the corresponding kind.
type Token struct {
	Kind TokenKind
	Word string
	Num  byte
	Prim machine.Primitive
}

func (t Token) String() string {
	switch t.Kind {
	case TokenColon:
		return ":"
	case TokenWord:
		return t.Word
	case TokenNumber:
		return strconv.Itoa(int(t.Num))
	case TokenNewline:
		return f("newline")
	case TokenPrimitive:
		return t.Prim.String()
	default:
		return f("unknown token")
	}
}

type tokState int

const (
	tsInit = tokState(iota)
	tsComment
	tsLeadingZero
	tsNumberStub // radix known, no digits yet
	tsNumber
	tsWord
	tsExprStart // '$' seen, '(' required
	tsExpr
)

type tokenizer struct {
	state tokState
	num   int
	radix Radix
	word  []rune
	expr  []rune
	start loc.Pos // position of the first character of the current token
}

// wordToken reclassifies a completed word as a primitive when it
// matches one of the sixteen mnemonics.
func wordToken(word string) Token {
	if prim, ok := machine.LookupPrimitive(word); ok {
		return Token{Kind: TokenPrimitive, Prim: prim}
	}

	return Token{Kind: TokenWord, Word: word}
}

// evalExpr evaluates a $( ) constant expression with starlark and
// requires an integer result that fits in a byte.
func evalExpr(expr string) (value byte, err error) {
	thread := &starlark.Thread{Name: "expr"}
	opts := &syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(opts, thread, "expr", "rc="+expr+"\n", nil)
	if err != nil {
		err = &ErrExpression{Expr: expr, Err: err}
		return
	}

	result, ok := globals["rc"]
	if !ok {
		err = &ErrExpression{Expr: expr}
		return
	}
	stInt, ok := result.(starlark.Int)
	if !ok {
		err = &ErrExpression{Expr: expr}
		return
	}
	i64, ok := stInt.Int64()
	if !ok || i64 < 0 || i64 > 0xFF {
		err = &ErrNumberRange{Radix: RadixDecimal, Value: int(i64)}
		return
	}

	value = byte(i64)
	return
}

// consume feeds one character to the state machine, possibly emitting a
// completed token.
func (t *tokenizer) consume(c rune) (tok Token, emitted bool, err error) {
	switch t.state {
	case tsInit:
		switch {
		case c == '#':
			t.state = tsComment
		case c == ':':
			tok = Token{Kind: TokenColon}
			emitted = true
		case c == '0':
			t.state = tsLeadingZero
		case c >= '1' && c <= '9':
			t.state = tsNumber
			t.radix = RadixDecimal
			t.num = int(c - '0')
		case c == '$':
			t.state = tsExprStart
		case unicode.IsSpace(c):
			// skip
		default:
			t.state = tsWord
			t.word = append(t.word[:0], c)
		}

	case tsComment:
		if c == '\n' {
			t.state = tsInit
		}

	case tsLeadingZero:
		switch {
		case c == 'x' || c == 'X':
			t.state = tsNumberStub
			t.radix = RadixHex
			t.num = 0
		case c == 'b':
			t.state = tsNumberStub
			t.radix = RadixBinary
			t.num = 0
		case c >= '0' && c <= '7':
			t.state = tsNumber
			t.radix = RadixOctal
			t.num = int(c - '0')
		case c == '8' || c == '9':
			err = &ErrInvalidDigit{Radix: RadixOctal, Char: c}
		case unicode.IsSpace(c):
			t.state = tsInit
			tok = Token{Kind: TokenNumber, Num: 0}
			emitted = true
		default:
			err = ErrInvalidChar(c)
		}

	case tsNumberStub, tsNumber:
		if digit, ok := t.radix.digit(c); ok {
			t.num = t.num*int(t.radix) + digit
			if t.num > 0xFF {
				err = &ErrNumberRange{Radix: t.radix, Value: t.num}
				return
			}
			t.state = tsNumber
			return
		}
		if t.state == tsNumber && unicode.IsSpace(c) {
			t.state = tsInit
			tok = Token{Kind: TokenNumber, Num: byte(t.num)}
			emitted = true
			return
		}
		err = ErrInvalidChar(c)

	case tsWord:
		if unicode.IsSpace(c) {
			t.state = tsInit
			tok = wordToken(string(t.word))
			emitted = true
			return
		}
		t.word = append(t.word, c)

	case tsExprStart:
		if c != '(' {
			err = ErrInvalidChar(c)
			return
		}
		t.state = tsExpr
		t.expr = t.expr[:0]

	case tsExpr:
		switch {
		case c == ')':
			t.state = tsInit
			var value byte
			value, err = evalExpr(string(t.expr))
			if err != nil {
				return
			}
			tok = Token{Kind: TokenNumber, Num: value}
			emitted = true
		case c == '\n':
			err = ErrInvalidChar(c)
		default:
			t.expr = append(t.expr, c)
		}
	}

	return
}

// Tokens turns a located character sequence into a lazy token sequence.
// A newline that closes a token is emitted as its own Newline token
// right after it; both are significant to the statement parser. Errors
// carry the position of the first character of the offending token.
func Tokens(chars iter.Seq2[loc.Located[rune], error]) iter.Seq2[loc.Located[Token], error] {
	return func(yield func(loc.Located[Token], error) bool) {
		var t tokenizer

		for ch, err := range chars {
			if err != nil {
				yield(loc.Located[Token]{}, err)
				return
			}

			if t.state == tsInit {
				t.start = ch.Pos
			}

			tok, emitted, err := t.consume(ch.Value)
			if err != nil {
				yield(loc.Located[Token]{}, loc.At(t.start, err))
				return
			}

			if emitted {
				if !yield(loc.Located[Token]{Pos: t.start, Value: tok}, nil) {
					return
				}
			}

			if ch.Value == '\n' {
				newline := loc.Located[Token]{Pos: ch.Pos, Value: Token{Kind: TokenNewline}}
				if !yield(newline, nil) {
					return
				}
			}
		}

		if t.state != tsInit {
			yield(loc.Located[Token]{}, loc.At(t.start, ErrUnfinishedToken))
		}
	}
}
