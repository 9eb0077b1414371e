package asm

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marekmiklenda/rings/device"
	"github.com/marekmiklenda/rings/loc"
	"github.com/marekmiklenda/rings/machine"
)

func assemble(t *testing.T, src string) *machine.Program {
	t.Helper()

	var a Assembler
	prog, err := a.Assemble(strings.NewReader(src))
	assert.NoError(t, err)
	return prog
}

func instrs(prog *machine.Program) (out []machine.Instruction) {
	for offset := range prog.Len() {
		in, _ := prog.At(offset)
		out = append(out, in)
	}

	return
}

func TestAssemble_ForwardReference(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t, "jmp :end\nhlt 1\n:end\nhlt 0\n")
	assert.Equal([]machine.Instruction{
		{Op: machine.JMP, Target: 2},
		{Op: machine.HLT, Args: [3]byte{1}},
		{Op: machine.HLT, Args: [3]byte{0}},
	}, instrs(prog))
}

func TestAssemble_BackwardReference(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t, ":top\nout 0\njmp :top\n")
	assert.Equal([]machine.Instruction{
		{Op: machine.OUT, Args: [3]byte{0}},
		{Op: machine.JMP, Target: 0},
	}, instrs(prog))
}

func TestAssemble_EquivalentSpellings(t *testing.T) {
	assert := assert.New(t)

	// Comments, case, radix and constant expressions never change the
	// encoding.
	plain := assemble(t, "mkr 4\nput 0 7\n")
	fancy := assemble(t, "# setup\n  MKR $(2*2)\n\nput 0x0 0b111 # seven\n")
	assert.Equal(instrs(plain), instrs(fancy))
}

func TestAssemble_LabelAtEnd(t *testing.T) {
	assert := assert.New(t)

	// A label after the last instruction resolves to one past the end;
	// jumping there runs off the program, exiting 0.
	prog := assemble(t, "jmp :end\n:end\n")
	assert.Equal([]machine.Instruction{
		{Op: machine.JMP, Target: 1},
	}, instrs(prog))

	code, err := machine.Execute(prog, &device.Buffer{})
	assert.NoError(err)
	assert.Equal(byte(0), code)
}

func TestAssemble_DuplicateLabel(t *testing.T) {
	assert := assert.New(t)

	var a Assembler
	_, err := a.Assemble(strings.NewReader(":x\nhlt 0\n:x\n"))
	assert.ErrorIs(err, ErrLabelDuplicate("x"))

	pos, ok := loc.PosOf(err)
	if assert.True(ok) {
		assert.Equal(loc.Pos{Line: 3, Col: 1}, pos)
	}
}

func TestAssemble_LabelNotFound(t *testing.T) {
	assert := assert.New(t)

	var a Assembler
	_, err := a.Assemble(strings.NewReader("jmp :nowhere\n"))
	assert.ErrorIs(err, ErrLabelMissing("nowhere"))
}

func TestAssemble_ZeroRingRejected(t *testing.T) {
	assert := assert.New(t)

	var a Assembler
	_, err := a.Assemble(strings.NewReader("mkr 0\n"))
	assert.ErrorIs(err, machine.ErrZeroRingLength)
}

func TestAssemble_ArgKindMismatch(t *testing.T) {
	assert := assert.New(t)

	var a Assembler
	_, err := a.Assemble(strings.NewReader("jmp 5\n"))
	assert.ErrorIs(err, ErrArgKind(machine.JMP))

	_, err = a.Assemble(strings.NewReader(":x\nput 0 :x\n"))
	assert.ErrorIs(err, ErrArgKind(machine.PUT))
}

func TestResolve_ArgCount(t *testing.T) {
	assert := assert.New(t)

	stmt := Statement{
		Kind: StatementInstruction,
		Prim: machine.PUT,
		Args: []Arg{{Kind: machine.ArgLiteral, Num: 0}},
	}
	_, err := resolve(stmt, nil)
	var countErr *ErrArgCount
	if assert.ErrorAs(err, &countErr) {
		assert.Equal(machine.PUT, countErr.Primitive)
		assert.Equal(2, countErr.Want)
		assert.Equal(1, countErr.Got)
	}
}

func TestAssemble_DebugSymbols(t *testing.T) {
	assert := assert.New(t)

	src := "mkr 1\n:loop\nput 0 5\njmp :loop\n"

	prog := assemble(t, src)
	pos, ok := prog.Pos(1)
	assert.True(ok)
	assert.Equal(loc.Pos{Line: 3, Col: 1}, pos)
	assert.Equal(map[int]int{0: 1, 1: 3, 2: 4}, prog.Symbols())

	bare := Assembler{NoDebug: true}
	prog, err := bare.Assemble(strings.NewReader(src))
	assert.NoError(err)
	_, ok = prog.Pos(0)
	assert.False(ok)
	assert.Empty(prog.Symbols())
}

func TestAssemble_RuntimeErrorCarriesSourceLine(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t, "mkr 1\nmkr 1\ndiv 0 1 0\n")
	_, err := machine.Execute(prog, &device.Buffer{})
	assert.ErrorIs(err, machine.ErrDivideByZero)

	pos, ok := loc.PosOf(err)
	if assert.True(ok) {
		assert.Equal(loc.Pos{Line: 3, Col: 1}, pos)
	}
}

func TestAssemble_HaltScenario(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t, "hlt 3\n")
	dev := &device.Buffer{}
	code, err := machine.Execute(prog, dev)
	assert.NoError(err)
	assert.Equal(byte(3), code)
	assert.Empty(dev.Output)
	assert.Empty(dev.ErrOutput)
}

func TestAssemble_CountedLoopScenario(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t, strings.Join([]string{
		"mkr 1 # value",
		"mkr 1 # counter",
		"mkr 1 # step",
		"mkr 1 # limit",
		"put 0 5",
		"put 2 1",
		"put 3 5",
		":loop",
		"out 0",
		"add 1 2 1",
		"jlt 1 3 :loop",
		"hlt 0",
	}, "\n"))

	dev := &device.Buffer{}
	code, err := machine.Execute(prog, dev)
	assert.NoError(err)
	assert.Equal(byte(0), code)
	assert.Equal([]byte{5, 5, 5, 5, 5}, dev.Output)
}

// boundedDev fails the write that would exceed its limit, so endless
// loops terminate under test.
type boundedDev struct {
	limit  int
	output []byte
}

func (d *boundedDev) Inp(vm *machine.VM) (byte, error) { return 0, nil }

func (d *boundedDev) Out(value byte, vm *machine.VM) error {
	if len(d.output) >= d.limit {
		return errors.New("output full")
	}

	d.output = append(d.output, value)
	return nil
}

func (d *boundedDev) Err(value byte, vm *machine.VM) error {
	return d.Out(value, vm)
}

func TestAssemble_EndlessLoopScenario(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t, ":start\nmkr 1\nput 0 5\nout 0\njmp :start\n")
	dev := &boundedDev{limit: 4}

	_, err := machine.Execute(prog, dev)
	assert.Error(err)
	assert.Equal([]byte{5, 5, 5, 5}, dev.output)
}

func TestAssemble_InputEchoScenario(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t, "mkr 1\ninp 0\nout 0\ninp 0\nout 0\nerr 0\n")
	dev := &device.Buffer{Input: []byte{65}}
	code, err := machine.Execute(prog, dev)
	assert.NoError(err)
	assert.Equal(byte(0), code)
	assert.Equal([]byte{65, device.EOFByte}, dev.Output)
	assert.Equal([]byte{device.EOFByte}, dev.ErrOutput)
}
