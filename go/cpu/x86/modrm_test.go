package x86

import (
	"testing"
)

func TestModRM(t *testing.T) {
	tests := []struct {
		b            byte
		mod, reg, rm uint8
	}{
		{0xC8, 3, 1, 0},
		{0x00, 0, 0, 0},
		{0xFF, 3, 7, 7},
		{0x45, 1, 0, 5},
		{0x9C, 2, 3, 4},
	}
	for _, test := range tests {
		m := ModRM(test.b)
		if m.Mod() != test.mod || m.Reg() != test.reg || m.RM() != test.rm {
			t.Errorf("ModRM(%#x) = (%d, %d, %d), expecting (%d, %d, %d)",
				test.b, m.Mod(), m.Reg(), m.RM(), test.mod, test.reg, test.rm)
		}
		if m.Direct() != (test.mod == MOD_Reg) {
			t.Errorf("ModRM(%#x).Direct() = %v", test.b, m.Direct())
		}
	}
}

// every byte is a valid encoding and round trips through its fields
func TestModRMAllBytes(t *testing.T) {
	for i := 0; i < 256; i++ {
		m := ModRM(i)
		if back := m.Mod()<<6 | m.Reg()<<3 | m.RM(); back != uint8(i) {
			t.Fatalf("ModRM(%#x) fields rebuild to %#x", i, back)
		}
	}
}
