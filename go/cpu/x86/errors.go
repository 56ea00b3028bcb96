package x86

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrTruncated means the stream ended in the middle of an instruction.
var ErrTruncated = errors.New("truncated instruction")

// UnsupportedOpcodeError is returned for opcode bytes with no table entry.
type UnsupportedOpcodeError struct {
	Op     byte
	Escape bool
}

func (e *UnsupportedOpcodeError) Error() string {
	if e.Escape {
		return fmt.Sprintf("unsupported opcode 0x%02X (two-byte escape)", e.Op)
	}
	return fmt.Sprintf("unsupported opcode 0x%02X", e.Op)
}

// UnsupportedModeError is returned when an instruction uses a ModRM memory operand.
type UnsupportedModeError struct {
	Op  byte
	Mod uint8
}

func (e *UnsupportedModeError) Error() string {
	return fmt.Sprintf("unsupported addressing mode mod=%02b for opcode 0x%02X", e.Mod, e.Op)
}

// UnimplementedError is returned by the interpreter for instructions that
// decode fine but have no execution semantics.
type UnimplementedError struct {
	Op       byte
	Mnemonic string
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("%s (opcode 0x%02X) cannot be executed", e.Mnemonic, e.Op)
}

// IsTruncated reports whether err (or its cause) is ErrTruncated.
func IsTruncated(err error) bool {
	return errors.Is(err, ErrTruncated)
}
