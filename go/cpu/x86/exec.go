package x86

import (
	"github.com/pkg/errors"
)

func (c *Cpu) low16(reg uint8) uint16 {
	val, _ := c.RegRead(int(reg))
	return uint16(val)
}

// writes the low 16 bits of reg, keeping the high half
func (c *Cpu) setLow16(reg uint8, v uint16) {
	val, _ := c.RegRead(int(reg))
	c.RegWrite(int(reg), val&0xFFFF0000|uint64(v))
}

// exec applies ins to the register file. It must not modify any state
// before it knows the instruction can complete.
func (c *Cpu) exec(ins *Ins) error {
	switch ins.Form {
	case FormMovRegImm16:
		c.setLow16(ins.Dst, ins.Imm)

	case FormAddRM16Reg16:
		c.setLow16(ins.Dst, c.low16(ins.Dst)+c.low16(ins.Src))

	case FormCmpAccImm16:
		// no flags register is modeled, so a compare has nothing to write
		return &UnimplementedError{Op: ins.Op, Mnemonic: ins.Mnemonic()}

	default:
		return errors.Errorf("no execution semantics for form %v (opcode 0x%02X)", ins.Form, ins.Op)
	}
	return nil
}
