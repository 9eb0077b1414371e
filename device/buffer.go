package device

import (
	"github.com/marekmiklenda/rings/machine"
)

// Buffer is an in-memory machine.Io for tests and embedding. Input is
// consumed from the front; output and error bytes are appended to
// their slices. Once Input is exhausted, INP reads EOFByte.
type Buffer struct {
	Input     []byte
	Output    []byte
	ErrOutput []byte

	read int
}

var _ machine.Io = (*Buffer)(nil)

func (b *Buffer) Inp(vm *machine.VM) (byte, error) {
	if b.read >= len(b.Input) {
		return EOFByte, nil
	}

	value := b.Input[b.read]
	b.read++
	return value, nil
}

func (b *Buffer) Out(value byte, vm *machine.VM) error {
	b.Output = append(b.Output, value)
	return nil
}

func (b *Buffer) Err(value byte, vm *machine.VM) error {
	b.ErrOutput = append(b.ErrOutput, value)
	return nil
}
