package machine

import (
	"fmt"
	"strings"
)

// Ring is a fixed-capacity circular byte array with a rotation offset.
// Capacity is set at creation and never changes; the offset is kept
// reduced modulo the capacity. Logical index 0 always names the cell
// last rotated into view.
type Ring struct {
	offset byte
	cells  []byte
}

// NewRing creates a zero-filled ring. Capacity must be at least 1.
func NewRing(capacity byte) (ring *Ring, err error) {
	if capacity == 0 {
		err = ErrZeroRingLength
		return
	}

	ring = &Ring{cells: make([]byte, capacity)}
	return
}

// Len returns the ring's capacity.
func (r *Ring) Len() byte {
	return byte(len(r.cells))
}

// Rotate advances the rotation offset by the given amount, modulo the
// capacity. Rotation is a pure reindexing and never moves cell values.
func (r *Ring) Rotate(by byte) {
	r.offset = byte((uint16(r.offset) + uint16(by)) % uint16(len(r.cells)))
}

// index maps a logical index to the physical cell slot.
func (r *Ring) index(i byte) int {
	n := uint16(len(r.cells))
	return int((uint16(r.offset) + n - uint16(i)%n) % n)
}

// At reads the cell at a logical index.
func (r *Ring) At(i byte) byte {
	return r.cells[r.index(i)]
}

// SetAt writes the cell at a logical index.
func (r *Ring) SetAt(i, value byte) {
	r.cells[r.index(i)] = value
}

// Cell reads the current cell (logical index 0).
func (r *Ring) Cell() byte {
	return r.At(0)
}

// SetCell writes the current cell.
func (r *Ring) SetCell(value byte) {
	r.SetAt(0, value)
}

// String renders the rotation offset and the physical cell contents.
func (r *Ring) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[(+%02X)", r.offset)
	for _, cell := range r.cells {
		fmt.Fprintf(&sb, " %02X", cell)
	}
	sb.WriteByte(']')

	return sb.String()
}
