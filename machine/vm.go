package machine

import (
	"github.com/marekmiklenda/rings/loc"
)

// Io is the I/O capability injected into a run by the embedder. Each
// operation receives the VM for read-only introspection of its state.
type Io interface {
	// Inp reads one byte from the input source.
	Inp(vm *VM) (byte, error)
	// Out writes one byte to the output sink.
	Out(value byte, vm *VM) error
	// Err writes one byte to the error sink.
	Err(value byte, vm *VM) error
}

// maxRings is the register file limit; ring ids are single bytes.
const maxRings = 255

// DebugFunc is called before each instruction executes, with the
// current program offset and the full ring register file.
type DebugFunc func(offset int, rings []*Ring)

// VM is the mutable state of one program run: the ring register file,
// the program counter, and the exit code once HLT has set it. A VM is
// single-threaded and lives for exactly one Run call.
type VM struct {
	Hook DebugFunc // Optional per-instruction debug hook.

	Rings    []*Ring
	PC       int
	ExitCode *byte
}

// Ring resolves a ring id against the register file.
func (vm *VM) Ring(id byte) (ring *Ring, err error) {
	if int(id) >= len(vm.Rings) {
		err = ErrInvalidRing(id)
		return
	}

	ring = vm.Rings[int(id)]
	return
}

// Run executes the program from offset 0 until the counter runs past
// the end (exit code 0) or an instruction halts. Runtime failures abort
// the run, tagged with the offending program offset and, when the
// program carries debug symbols, its source position.
func (vm *VM) Run(prog *Program, dev Io) (code byte, err error) {
	for {
		in, ok := prog.At(vm.PC)
		if !ok {
			return
		}

		if vm.Hook != nil {
			vm.Hook(vm.PC, vm.Rings)
		}

		offset := vm.PC
		vm.PC++

		outcome, execErr := in.Execute(vm, dev)
		if execErr != nil {
			err = &ErrRuntime{Offset: offset, Err: execErr}
			if pos, located := prog.Pos(offset); located {
				err = loc.At(pos, err)
			}
			return
		}

		switch outcome.Kind {
		case Jump:
			vm.PC = outcome.Target
		case Halt:
			halted := outcome.Code
			vm.ExitCode = &halted
			code = halted
			return
		}
	}
}

// Execute runs a program on a fresh machine.
func Execute(prog *Program, dev Io) (byte, error) {
	vm := &VM{}
	return vm.Run(prog, dev)
}
