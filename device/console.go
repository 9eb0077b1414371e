package device

import (
	"errors"
	"io"
	"os"

	"github.com/marekmiklenda/rings/machine"
)

// EOFByte is the value INP reads once the input stream is exhausted.
const EOFByte = 0xFF

// Console is a machine.Io over byte streams. Nil fields default to the
// process standard streams. End of input reads as EOFByte; genuine read
// and write failures propagate as runtime errors.
type Console struct {
	Input     io.Reader
	Output    io.Writer
	ErrOutput io.Writer
}

var _ machine.Io = (*Console)(nil)

func (c *Console) Inp(vm *machine.VM) (value byte, err error) {
	in := c.Input
	if in == nil {
		in = os.Stdin
	}

	var one [1]byte
	_, err = io.ReadFull(in, one[:])
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return EOFByte, nil
	}
	if err != nil {
		return
	}

	value = one[0]
	return
}

func (c *Console) Out(value byte, vm *machine.VM) error {
	out := c.Output
	if out == nil {
		out = os.Stdout
	}

	_, err := out.Write([]byte{value})
	return err
}

func (c *Console) Err(value byte, vm *machine.VM) error {
	out := c.ErrOutput
	if out == nil {
		out = os.Stderr
	}

	_, err := out.Write([]byte{value})
	return err
}
