package asm

import (
	"io"

	"github.com/marekmiklenda/rings/loc"
	"github.com/marekmiklenda/rings/machine"
)

// Assembler resolves a statement stream into an executable program.
// The zero value records one source position per instruction (debug
// symbols); set NoDebug to emit a bare program instead. The flag only
// changes what the program carries, never how it resolves.
type Assembler struct {
	NoDebug bool
}

// Assemble runs the whole pipeline over a source stream: decode,
// tokenize, parse, then resolve. The forward pass records label
// declarations against the current instruction count and buffers
// instruction statements, so forward references are legal; resolution
// happens only after the statement stream is exhausted.
func (a *Assembler) Assemble(r io.Reader) (prog *machine.Program, err error) {
	labels := make(map[string]int, 16)
	var stmts []loc.Located[Statement]

	for stmt, err := range Statements(Tokens(Chars(r))) {
		if err != nil {
			return nil, err
		}

		switch stmt.Value.Kind {
		case StatementLabel:
			if _, dup := labels[stmt.Value.Label]; dup {
				return nil, loc.At(stmt.Pos, ErrLabelDuplicate(stmt.Value.Label))
			}
			labels[stmt.Value.Label] = len(stmts)
		case StatementInstruction:
			stmts = append(stmts, stmt)
		}
	}

	instrs := make([]machine.Instruction, 0, len(stmts))
	var pos []loc.Pos
	if !a.NoDebug {
		pos = make([]loc.Pos, 0, len(stmts))
	}

	for _, stmt := range stmts {
		in, err := resolve(stmt.Value, labels)
		if err != nil {
			return nil, loc.At(stmt.Pos, err)
		}
		if err := in.Validate(); err != nil {
			return nil, loc.At(stmt.Pos, err)
		}

		instrs = append(instrs, in)
		if pos != nil {
			pos = append(pos, stmt.Pos)
		}
	}

	return machine.NewProgram(instrs, pos), nil
}

// resolve checks a statement's argument placeholders against the
// primitive's arity and signature and produces the fully decoded
// instruction.
func resolve(stmt Statement, labels map[string]int) (in machine.Instruction, err error) {
	prim := stmt.Prim
	if len(stmt.Args) != prim.Arity() {
		err = &ErrArgCount{Primitive: prim, Want: prim.Arity(), Got: len(stmt.Args)}
		return
	}

	in.Op = prim
	sig := prim.Signature()
	for i, arg := range stmt.Args {
		if arg.Kind != sig[i] {
			err = ErrArgKind(prim)
			return
		}

		switch arg.Kind {
		case machine.ArgLiteral:
			in.Args[i] = arg.Num
		case machine.ArgLabel:
			target, ok := labels[arg.Label]
			if !ok {
				err = ErrLabelMissing(arg.Label)
				return
			}
			in.Target = target
		}
	}

	return
}
