package machine

// Instruction is a fully resolved instruction. Args holds the byte
// operands (ring ids and literals) in source order; Target holds the
// resolved label target, as an instruction index, for the jump
// primitives.
type Instruction struct {
	Op     Primitive
	Args   [3]byte
	Target int
}

// OutcomeKind classifies how an instruction completed.
type OutcomeKind int

const (
	// Continue proceeds to the next instruction.
	Continue = OutcomeKind(0)
	// Jump transfers control to Outcome.Target.
	Jump = OutcomeKind(1)
	// Halt terminates the program with Outcome.Code.
	Halt = OutcomeKind(2)
)

// Outcome is the result of executing one instruction. Control transfer
// and termination are ordinary outcomes here, not errors; the execution
// loop dispatches on Kind.
type Outcome struct {
	Kind   OutcomeKind
	Target int
	Code   byte
}

// Validate rejects instructions that can never execute successfully.
func (in Instruction) Validate() error {
	if in.Op == MKR && in.Args[0] == 0 {
		return ErrZeroRingLength
	}

	return nil
}

// arith applies a three-operand arithmetic primitive to two cell
// values. Any result outside the byte range is an error.
func arith(op Primitive, a, b byte) (value byte, err error) {
	var result int
	switch op {
	case ADD:
		result = int(a) + int(b)
	case SUB:
		result = int(a) - int(b)
	case MUL:
		result = int(a) * int(b)
	case DIV:
		if b == 0 {
			err = ErrDivideByZero
			return
		}
		result = int(a) / int(b)
	}

	if result < 0 || result > 0xFF {
		err = ErrValueRange(result)
		return
	}

	value = byte(result)
	return
}

// Execute runs the instruction against the machine state and the I/O
// capability.
func (in Instruction) Execute(vm *VM, dev Io) (outcome Outcome, err error) {
	switch in.Op {
	case MKR:
		if len(vm.Rings) >= maxRings {
			err = ErrRingLimit
			return
		}
		var ring *Ring
		ring, err = NewRing(in.Args[0])
		if err != nil {
			return
		}
		vm.Rings = append(vm.Rings, ring)

	case PUT:
		var ring *Ring
		ring, err = vm.Ring(in.Args[0])
		if err != nil {
			return
		}
		ring.SetCell(in.Args[1])

	case ROT:
		var ring *Ring
		ring, err = vm.Ring(in.Args[0])
		if err != nil {
			return
		}
		ring.Rotate(in.Args[1])

	case SWP:
		var a, b *Ring
		a, err = vm.Ring(in.Args[0])
		if err != nil {
			return
		}
		b, err = vm.Ring(in.Args[1])
		if err != nil {
			return
		}
		va, vb := a.Cell(), b.Cell()
		a.SetCell(vb)
		b.SetCell(va)

	case INP:
		var ring *Ring
		ring, err = vm.Ring(in.Args[0])
		if err != nil {
			return
		}
		var value byte
		value, err = dev.Inp(vm)
		if err != nil {
			return
		}
		ring.SetCell(value)

	case OUT, ERR:
		var ring *Ring
		ring, err = vm.Ring(in.Args[0])
		if err != nil {
			return
		}
		if in.Op == OUT {
			err = dev.Out(ring.Cell(), vm)
		} else {
			err = dev.Err(ring.Cell(), vm)
		}

	case ADD, SUB, MUL, DIV:
		var a, b, c *Ring
		a, err = vm.Ring(in.Args[0])
		if err != nil {
			return
		}
		b, err = vm.Ring(in.Args[1])
		if err != nil {
			return
		}
		c, err = vm.Ring(in.Args[2])
		if err != nil {
			return
		}
		var value byte
		value, err = arith(in.Op, a.Cell(), b.Cell())
		if err != nil {
			return
		}
		c.SetCell(value)

	case JMP:
		outcome = Outcome{Kind: Jump, Target: in.Target}

	case JEQ, JGT, JLT:
		var a, b *Ring
		a, err = vm.Ring(in.Args[0])
		if err != nil {
			return
		}
		b, err = vm.Ring(in.Args[1])
		if err != nil {
			return
		}
		va, vb := a.Cell(), b.Cell()
		var taken bool
		switch in.Op {
		case JEQ:
			taken = va == vb
		case JGT:
			taken = va > vb
		case JLT:
			taken = va < vb
		}
		if taken {
			outcome = Outcome{Kind: Jump, Target: in.Target}
		}

	case HLT:
		outcome = Outcome{Kind: Halt, Code: in.Args[0]}
	}

	return
}
