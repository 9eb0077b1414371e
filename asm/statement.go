package asm

import (
	"iter"
	"slices"

	"github.com/marekmiklenda/rings/loc"
	"github.com/marekmiklenda/rings/machine"
)

// StatementKind discriminates the two statement variants.
type StatementKind int

const (
	StatementLabel = StatementKind(iota)
	StatementInstruction
)

// Arg is one instruction argument placeholder: a byte literal or a
// not-yet-resolved label reference.
type Arg struct {
	Kind  machine.ArgKind
	Num   byte
	Label string
}

// Statement is one syntactic statement: a label declaration or an
// instruction with its argument placeholders.
type Statement struct {
	Kind  StatementKind
	Label string
	Prim  machine.Primitive
	Args  []Arg
}

type parseState int

const (
	psInit = parseState(iota)
	psLabel // colon seen, label name expected
	psInstr // primitive seen, collecting arguments
)

type parser struct {
	state parseState
	prim  machine.Primitive
	args  []Arg
	colon bool // argument builder: colon seen, label word expected
	start loc.Pos
}

// pushArg feeds one token to the two-state argument builder.
func (p *parser) pushArg(tok Token) (arg Arg, emitted bool, err error) {
	if p.colon {
		if tok.Kind == TokenWord {
			p.colon = false
			arg = Arg{Kind: machine.ArgLabel, Label: tok.Word}
			emitted = true
			return
		}
		err = ErrLabelExpected(tok)
		return
	}

	switch tok.Kind {
	case TokenColon:
		p.colon = true
	case TokenNumber:
		arg = Arg{Kind: machine.ArgLiteral, Num: tok.Num}
		emitted = true
	default:
		err = ErrArgExpected(tok)
	}

	return
}

// consume feeds one token to the state machine, possibly emitting a
// completed statement.
func (p *parser) consume(tok Token) (stmt Statement, emitted bool, err error) {
	switch p.state {
	case psInit:
		switch tok.Kind {
		case TokenNewline:
			// blank line
		case TokenColon:
			p.state = psLabel
		case TokenPrimitive:
			p.state = psInstr
			p.prim = tok.Prim
			p.args = p.args[:0]
			p.colon = false
		default:
			err = ErrUnexpectedToken(tok)
		}

	case psLabel:
		if tok.Kind == TokenWord {
			p.state = psInit
			stmt = Statement{Kind: StatementLabel, Label: tok.Word}
			emitted = true
			return
		}
		err = ErrLabelExpected(tok)

	case psInstr:
		var arg Arg
		var complete bool
		arg, complete, err = p.pushArg(tok)
		if err != nil || !complete {
			return
		}

		p.args = append(p.args, arg)
		if len(p.args) == p.prim.Arity() {
			p.state = psInit
			stmt = Statement{
				Kind: StatementInstruction,
				Prim: p.prim,
				Args: slices.Clone(p.args),
			}
			emitted = true
		}
	}

	return
}

// Statements turns a lazy token sequence into a lazy statement
// sequence. A statement is emitted in one step as soon as its required
// argument count is reached; errors carry the position of the token
// that opened the statement.
func Statements(tokens iter.Seq2[loc.Located[Token], error]) iter.Seq2[loc.Located[Statement], error] {
	return func(yield func(loc.Located[Statement], error) bool) {
		var p parser

		for tok, err := range tokens {
			if err != nil {
				yield(loc.Located[Statement]{}, err)
				return
			}

			if p.state == psInit {
				p.start = tok.Pos
			}

			stmt, emitted, err := p.consume(tok.Value)
			if err != nil {
				yield(loc.Located[Statement]{}, loc.At(p.start, err))
				return
			}

			if emitted {
				if !yield(loc.Located[Statement]{Pos: p.start, Value: stmt}, nil) {
					return
				}
			}
		}

		if p.state != psInit {
			yield(loc.Located[Statement]{}, loc.At(p.start, ErrUnclosedStatement))
		}
	}
}
