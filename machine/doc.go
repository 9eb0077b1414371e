// Package machine implements the Rings virtual machine.
//
// The machine's only storage primitive is the ring: a fixed-capacity
// circular byte array with a rotation offset. A resolved Program is an
// immutable sequence of instructions over sixteen primitives; the VM
// executes it against a register file of rings and an injected Io
// capability, producing an exit code or a runtime error tagged with the
// offending program offset.
package machine
