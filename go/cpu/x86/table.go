package x86

// Form identifies an instruction shape: which operands follow the opcode and
// how many bytes they take. Every opcode byte maps to exactly one Form.
type Form uint8

const (
	FormNone Form = iota
	FormEscape
	// B8+r iw
	FormMovRegImm16
	// 01 /r, register-direct only
	FormAddRM16Reg16
	// 3D iw
	FormCmpAccImm16
)

var formNames = map[Form]string{
	FormNone:         "none",
	FormEscape:       "escape",
	FormMovRegImm16:  "mov r16, imm16",
	FormAddRM16Reg16: "add r/m16, r16",
	FormCmpAccImm16:  "cmp ax, imm16",
}

func (f Form) String() string {
	if s, ok := formNames[f]; ok {
		return s
	}
	return "invalid"
}

// Table maps primary opcode bytes to instruction forms. It is a value type:
// derived tables never alias the one they were built from.
type Table [256]Form

// NewTable builds the default one-byte opcode table.
func NewTable() Table {
	var t Table
	for r := 0; r < 8; r++ {
		t[OP_MOV_R16_IMM+r] = FormMovRegImm16
	}
	t[OP_ADD_RM16_R16] = FormAddRM16Reg16
	t[OP_CMP_AX_IMM16] = FormCmpAccImm16
	t[OP_ESCAPE] = FormEscape
	return t
}

// Lookup never fails: unsupported bytes map to FormNone.
func (t *Table) Lookup(op byte) Form {
	return t[op]
}

// Only returns a copy of t exposing just the listed opcodes.
func (t Table) Only(ops ...byte) Table {
	var out Table
	for _, op := range ops {
		out[op] = t[op]
	}
	return out
}

// Supported lists the opcodes with an executable or renderable form.
func (t *Table) Supported() []byte {
	var ops []byte
	for op, f := range t {
		if f != FormNone && f != FormEscape {
			ops = append(ops, byte(op))
		}
	}
	return ops
}
