package x86

import (
	"fmt"
)

// Ins is a fully decoded instruction. Both the disassembler and the
// interpreter consume it, so they always agree on its length.
type Ins struct {
	addr  uint64
	bytes []byte

	Prefix Prefix
	Op     byte
	Form   Form
	// register operands: Dst is the r/m (or opcode-encoded) register, Src the reg field
	Dst, Src uint8
	Imm      uint16
}

func (i *Ins) Addr() uint64 {
	return i.addr
}

func (i *Ins) Bytes() []byte {
	return i.bytes
}

// Len is the number of bytes consumed, prefixes included.
func (i *Ins) Len() int {
	return len(i.bytes)
}

func (i *Ins) Mnemonic() string {
	switch i.Form {
	case FormMovRegImm16:
		return "mov"
	case FormAddRM16Reg16:
		return "add"
	case FormCmpAccImm16:
		return "cmp"
	}
	return UnknownText
}

func (i *Ins) OpStr() string {
	switch i.Form {
	case FormMovRegImm16, FormCmpAccImm16:
		return fmt.Sprintf("%s, %d", Reg16Names[i.Dst], i.Imm)
	case FormAddRM16Reg16:
		return Reg16Names[i.Dst] + ", " + Reg16Names[i.Src]
	}
	return ""
}

func (i *Ins) String() string {
	if op := i.OpStr(); op != "" {
		return i.Mnemonic() + " " + op
	}
	return i.Mnemonic()
}

// Decoder turns bytes into instructions using one opcode table.
type Decoder struct {
	table Table
}

func NewDecoder(t Table) *Decoder {
	return &Decoder{table: t}
}

func (d *Decoder) Table() Table {
	return d.table
}

// Decode reads one instruction from the start of mem. addr is only used to
// label the result. On failure nothing about mem is retained.
func (d *Decoder) Decode(mem []byte, addr uint64) (*Ins, error) {
	c := NewCursor(mem)
	prefix, ok := ScanPrefixes(c)
	if !ok {
		return nil, ErrTruncated
	}
	op, ok := c.ReadU8()
	if !ok {
		return nil, ErrTruncated
	}
	ins := &Ins{addr: addr, Prefix: prefix, Op: op, Form: d.table.Lookup(op)}
	switch ins.Form {
	case FormNone:
		return nil, &UnsupportedOpcodeError{Op: op}
	case FormEscape:
		return nil, &UnsupportedOpcodeError{Op: op, Escape: true}

	case FormMovRegImm16:
		if ins.Imm, ok = c.ReadU16(); !ok {
			return nil, ErrTruncated
		}
		ins.Dst = op - OP_MOV_R16_IMM

	case FormAddRM16Reg16:
		b, ok := c.ReadU8()
		if !ok {
			return nil, ErrTruncated
		}
		modrm := ModRM(b)
		if !modrm.Direct() {
			return nil, &UnsupportedModeError{Op: op, Mod: modrm.Mod()}
		}
		ins.Dst, ins.Src = modrm.RM(), modrm.Reg()

	case FormCmpAccImm16:
		if ins.Imm, ok = c.ReadU16(); !ok {
			return nil, ErrTruncated
		}
		ins.Dst = EAX

	default:
		return nil, &UnsupportedOpcodeError{Op: op}
	}
	ins.bytes = append([]byte(nil), c.Consumed()...)
	return ins, nil
}
