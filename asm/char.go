package asm

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"unicode/utf8"

	"github.com/marekmiklenda/rings/loc"
)

// leadMask selects the payload bits of the leading byte, indexed by
// sequence length.
var leadMask = [5]byte{0, 0x7F, 0x1F, 0x0F, 0x07}

// sequenceLength determines the UTF-8 sequence length from the leading
// byte's high bits.
func sequenceLength(lead byte) int {
	switch {
	case lead < 0x80:
		return 1
	case lead < 0xE0:
		return 2
	case lead < 0xF0:
		return 3
	default:
		return 4
	}
}

// readChar decodes one UTF-8 character. Continuation bytes contribute
// six payload bits each, shifted into place below the leading byte's
// payload. io.EOF is returned only on a clean end of stream.
func readChar(br *bufio.Reader) (c rune, err error) {
	lead, err := br.ReadByte()
	if err != nil {
		return
	}

	length := sequenceLength(lead)
	var codepoint uint32
	for i := 1; i < length; i++ {
		var next byte
		next, err = br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = ErrIncompleteChar
			}
			return
		}
		codepoint |= uint32(next&0x3F) << ((length - i - 1) * 6)
	}
	codepoint |= uint32(lead&leadMask[length]) << ((length - 1) * 6)

	if !utf8.ValidRune(rune(codepoint)) {
		err = ErrInvalidCodepoint(codepoint)
		return
	}

	c = rune(codepoint)
	return
}

// Chars decodes a byte stream into a lazy sequence of located UTF-8
// characters. A clean end of stream yields one final implicit newline,
// so a source lacking a trailing newline still closes its last
// statement. Decode and read failures end the sequence with an error
// carrying the position of the offending byte.
func Chars(r io.Reader) iter.Seq2[loc.Located[rune], error] {
	return func(yield func(loc.Located[rune], error) bool) {
		br := bufio.NewReader(r)
		pos := loc.Start()

		for {
			c, err := readChar(br)
			if errors.Is(err, io.EOF) {
				yield(loc.Located[rune]{Pos: pos, Value: '\n'}, nil)
				return
			}
			if err != nil {
				yield(loc.Located[rune]{}, loc.At(pos, err))
				return
			}

			if !yield(loc.Located[rune]{Pos: pos, Value: c}, nil) {
				return
			}

			if c == '\n' {
				pos.NextLine()
			} else {
				pos.NextChar()
			}
		}
	}
}
