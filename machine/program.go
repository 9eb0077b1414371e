package machine

import (
	"slices"

	"github.com/marekmiklenda/rings/loc"
)

// Program is an immutable, fully resolved instruction sequence. It may
// carry one source position per instruction (debug symbols) or none at
// all; the choice is made once, at assembly time.
type Program struct {
	instrs []Instruction
	pos    []loc.Pos
}

// NewProgram builds a program from resolved instructions. pos is either
// nil or exactly one position per instruction; anything else is
// discarded. Both slices are copied.
func NewProgram(instrs []Instruction, pos []loc.Pos) *Program {
	prog := &Program{instrs: slices.Clone(instrs)}
	if len(pos) == len(instrs) {
		prog.pos = slices.Clone(pos)
	}

	return prog
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.instrs)
}

// At returns the instruction at a program offset.
func (prog *Program) At(offset int) (in Instruction, ok bool) {
	if offset < 0 || offset >= len(prog.instrs) {
		return
	}

	return prog.instrs[offset], true
}

// Pos returns the source position recorded for a program offset, if the
// program carries debug symbols.
func (prog *Program) Pos(offset int) (pos loc.Pos, ok bool) {
	if offset < 0 || offset >= len(prog.pos) {
		return
	}

	return prog.pos[offset], true
}

// Symbols returns the offset to source line map used for breakpoints
// and error reporting. Empty when the program carries no debug symbols.
func (prog *Program) Symbols() map[int]int {
	symbols := make(map[int]int, len(prog.pos))
	for offset, pos := range prog.pos {
		symbols[offset] = pos.Line
	}

	return symbols
}
