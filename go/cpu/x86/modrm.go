package x86

// ModRM addressing classes
const (
	MOD_MemNoDisp = iota
	MOD_MemDisp8
	MOD_MemDisp32
	MOD_Reg
)

// ModRM splits an addressing byte into mod (2 bits), reg (3 bits) and rm (3 bits).
type ModRM byte

func (m ModRM) Mod() uint8 {
	return uint8(m) >> 6
}

func (m ModRM) Reg() uint8 {
	return (uint8(m) >> 3) & 7
}

func (m ModRM) RM() uint8 {
	return uint8(m) & 7
}

// Direct is true for register-direct operands (mod == 3).
func (m ModRM) Direct() bool {
	return m.Mod() == MOD_Reg
}
