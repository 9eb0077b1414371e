package machine

import (
	"strings"
)

// Primitive is one of the sixteen instruction mnemonics.
type Primitive int

//go:generate go tool stringer -linecomment -type=Primitive
const (
	MKR = Primitive(0)  // mkr
	PUT = Primitive(1)  // put
	ROT = Primitive(2)  // rot
	SWP = Primitive(3)  // swp
	INP = Primitive(4)  // inp
	OUT = Primitive(5)  // out
	ERR = Primitive(6)  // err
	ADD = Primitive(7)  // add
	SUB = Primitive(8)  // sub
	MUL = Primitive(9)  // mul
	DIV = Primitive(10) // div
	JMP = Primitive(11) // jmp
	JEQ = Primitive(12) // jeq
	JGT = Primitive(13) // jgt
	JLT = Primitive(14) // jlt
	HLT = Primitive(15) // hlt
)

// ArgKind is the form of an instruction argument placeholder.
type ArgKind int

const (
	ArgLiteral = ArgKind(0) // a byte literal (ring id or value)
	ArgLabel   = ArgKind(1) // a label reference
)

// primitiveByWord maps completed three-letter words to primitives.
var primitiveByWord = map[string]Primitive{
	"mkr": MKR,
	"put": PUT,
	"rot": ROT,
	"swp": SWP,
	"inp": INP,
	"out": OUT,
	"err": ERR,
	"add": ADD,
	"sub": SUB,
	"mul": MUL,
	"div": DIV,
	"jmp": JMP,
	"jeq": JEQ,
	"jgt": JGT,
	"jlt": JLT,
	"hlt": HLT,
}

// LookupPrimitive resolves a completed word to a primitive. Only words
// of exactly three characters qualify; matching is case-insensitive.
func LookupPrimitive(word string) (prim Primitive, ok bool) {
	if len(word) != 3 {
		return
	}

	prim, ok = primitiveByWord[strings.ToLower(word)]
	return
}

var primitiveArity = [...]int{
	MKR: 1,
	PUT: 2,
	ROT: 2,
	SWP: 2,
	INP: 1,
	OUT: 1,
	ERR: 1,
	ADD: 3,
	SUB: 3,
	MUL: 3,
	DIV: 3,
	JMP: 1,
	JEQ: 3,
	JGT: 3,
	JLT: 3,
	HLT: 1,
}

// Arity returns the number of arguments the primitive requires.
func (p Primitive) Arity() int {
	return primitiveArity[p]
}

// Signature returns the required kind of each argument position. Only
// the first Arity() entries are meaningful. The jump primitives are the
// only ones taking a label reference: JMP in position 0, the
// conditional jumps in position 2.
func (p Primitive) Signature() (sig [3]ArgKind) {
	switch p {
	case JMP:
		sig[0] = ArgLabel
	case JEQ, JGT, JLT:
		sig[2] = ArgLabel
	}

	return
}
