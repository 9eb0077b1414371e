package asm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marekmiklenda/rings/loc"
	"github.com/marekmiklenda/rings/machine"
)

// parseAll drains the statement sequence, returning the statements and
// the terminating error, if any.
func parseAll(src string) (stmts []loc.Located[Statement], err error) {
	for stmt, serr := range Statements(Tokens(Chars(strings.NewReader(src)))) {
		if serr != nil {
			err = serr
			return
		}
		stmts = append(stmts, stmt)
	}

	return
}

func TestStatements_Basic(t *testing.T) {
	assert := assert.New(t)

	stmts, err := parseAll(":loop\nmkr 4\nput 0 7\njeq 0 1 :loop\n")
	assert.NoError(err)
	assert.Equal([]loc.Located[Statement]{
		{
			Pos:   loc.Pos{Line: 1, Col: 1},
			Value: Statement{Kind: StatementLabel, Label: "loop"},
		},
		{
			Pos: loc.Pos{Line: 2, Col: 1},
			Value: Statement{
				Kind: StatementInstruction,
				Prim: machine.MKR,
				Args: []Arg{{Kind: machine.ArgLiteral, Num: 4}},
			},
		},
		{
			Pos: loc.Pos{Line: 3, Col: 1},
			Value: Statement{
				Kind: StatementInstruction,
				Prim: machine.PUT,
				Args: []Arg{
					{Kind: machine.ArgLiteral, Num: 0},
					{Kind: machine.ArgLiteral, Num: 7},
				},
			},
		},
		{
			Pos: loc.Pos{Line: 4, Col: 1},
			Value: Statement{
				Kind: StatementInstruction,
				Prim: machine.JEQ,
				Args: []Arg{
					{Kind: machine.ArgLiteral, Num: 0},
					{Kind: machine.ArgLiteral, Num: 1},
					{Kind: machine.ArgLabel, Label: "loop"},
				},
			},
		},
	}, stmts)
}

func TestStatements_BlankLinesAndComments(t *testing.T) {
	assert := assert.New(t)

	stmts, err := parseAll("\n# comment\n\nhlt 0\n\n")
	assert.NoError(err)
	if assert.Len(stmts, 1) {
		assert.Equal(machine.HLT, stmts[0].Value.Prim)
		assert.Equal(loc.Pos{Line: 4, Col: 1}, stmts[0].Pos)
	}
}

func TestStatements_NewlineCannotSplitInstruction(t *testing.T) {
	assert := assert.New(t)

	_, err := parseAll("put 0\n7\n")
	var argErr ErrArgExpected
	if assert.ErrorAs(err, &argErr) {
		assert.Equal(TokenNewline, Token(argErr).Kind)
	}
}

// render spells a token stream back out as source text.
func render(tokens []loc.Located[Token]) string {
	var sb strings.Builder
	for _, tok := range tokens {
		switch tok.Value.Kind {
		case TokenColon:
			sb.WriteByte(':')
		case TokenWord:
			sb.WriteString(tok.Value.Word)
			sb.WriteByte(' ')
		case TokenNumber:
			sb.WriteString(tok.Value.String())
			sb.WriteByte(' ')
		case TokenNewline:
			sb.WriteByte('\n')
		case TokenPrimitive:
			sb.WriteString(tok.Value.Prim.String())
			sb.WriteByte(' ')
		}
	}

	return sb.String()
}

func TestStatements_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	src := "mkr 4\nput 0 7\n:loop\njmp :loop\n"

	direct, err := parseAll(src)
	assert.NoError(err)

	tokens, err := lexAll(src)
	assert.NoError(err)
	reparsed, err := parseAll(render(tokens))
	assert.NoError(err)

	// Positions shift with the re-rendered spacing; the statements
	// themselves must survive the round trip.
	assert.Equal(len(direct), len(reparsed))
	for i := range direct {
		assert.Equal(direct[i].Value, reparsed[i].Value)
	}
}

func TestStatements_UnexpectedToken(t *testing.T) {
	assert := assert.New(t)

	_, err := parseAll("5\n")
	var unexpected ErrUnexpectedToken
	if assert.ErrorAs(err, &unexpected) {
		assert.Equal(TokenNumber, Token(unexpected).Kind)
	}

	_, err = parseAll("bogus 1\n")
	assert.ErrorAs(err, &unexpected)
}

func TestStatements_LabelExpected(t *testing.T) {
	assert := assert.New(t)

	_, err := parseAll(": 5\n")
	var labelErr ErrLabelExpected
	assert.ErrorAs(err, &labelErr)

	_, err = parseAll("jmp : 5\n")
	assert.ErrorAs(err, &labelErr)
}

func TestStatements_ArgExpected(t *testing.T) {
	assert := assert.New(t)

	// The closing newline arrives while PUT still wants an argument.
	_, err := parseAll("put 0")
	var argErr ErrArgExpected
	if assert.ErrorAs(err, &argErr) {
		assert.Equal(TokenNewline, Token(argErr).Kind)
	}

	pos, ok := loc.PosOf(err)
	if assert.True(ok) {
		assert.Equal(loc.Pos{Line: 1, Col: 1}, pos)
	}
}
