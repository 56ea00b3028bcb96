package x86

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"golang.org/x/arch/x86/x86asm"
)

func newTestDecoder() *Decoder {
	return NewDecoder(NewTable())
}

func TestDecode(t *testing.T) {
	tests := []struct {
		code []byte
		form Form
		dst  uint8
		src  uint8
		imm  uint16
		text string
	}{
		{[]byte{0xB8, 0x05, 0x00}, FormMovRegImm16, EAX, 0, 5, "mov ax, 5"},
		{[]byte{0xBF, 0xFF, 0xFF}, FormMovRegImm16, EDI, 0, 0xFFFF, "mov di, 65535"},
		{[]byte{0xBC, 0x34, 0x12}, FormMovRegImm16, ESP, 0, 0x1234, "mov sp, 4660"},
		{[]byte{0x01, 0xC8}, FormAddRM16Reg16, EAX, ECX, 0, "add ax, cx"},
		{[]byte{0x01, 0xFE}, FormAddRM16Reg16, ESI, EDI, 0, "add si, di"},
		{[]byte{0x3D, 0x10, 0x00}, FormCmpAccImm16, EAX, 0, 16, "cmp ax, 16"},
	}
	dec := newTestDecoder()
	for _, test := range tests {
		// trailing bytes must be left alone
		code := append(append([]byte(nil), test.code...), 0x90, 0x90)
		ins, err := dec.Decode(code, 0x100)
		if err != nil {
			t.Errorf("Decode(% x) failed: %v", test.code, err)
			continue
		}
		if ins.Form != test.form || ins.Dst != test.dst || ins.Src != test.src || ins.Imm != test.imm {
			t.Errorf("Decode(% x) = %+v", test.code, ins)
		}
		if ins.Len() != len(test.code) {
			t.Errorf("Decode(% x) consumed %d bytes, expecting %d", test.code, ins.Len(), len(test.code))
		}
		if ins.String() != test.text {
			t.Errorf("Decode(% x) renders %q, expecting %q", test.code, ins.String(), test.text)
		}
		if ins.Addr() != 0x100 {
			t.Errorf("Decode(% x) has addr %#x", test.code, ins.Addr())
		}
	}
}

func TestDecodePrefixLength(t *testing.T) {
	ins, err := newTestDecoder().Decode([]byte{0xF0, 0xF0, 0x01, 0xC8}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if ins.Len() != 4 {
		t.Fatalf("Len() = %d, expecting 4", ins.Len())
	}
	if ins.Prefix != PrefixLOCK {
		t.Fatalf("Prefix = %q", ins.Prefix)
	}
}

func TestDecodeTruncated(t *testing.T) {
	dec := newTestDecoder()
	full := [][]byte{
		{0xB8, 0x05, 0x00},
		{0x01, 0xC8},
		{0x3D, 0x01, 0x02},
		{0x2E, 0xB9, 0x01, 0x02},
	}
	for _, code := range full {
		for n := 0; n < len(code); n++ {
			if _, err := dec.Decode(code[:n], 0); !IsTruncated(err) {
				t.Errorf("Decode(% x) = %v, expecting truncation", code[:n], err)
			}
		}
	}
}

func TestDecodeUnsupportedOpcode(t *testing.T) {
	dec := newTestDecoder()
	for _, op := range []byte{0x90, 0x00, 0xC3, 0xFF} {
		_, err := dec.Decode([]byte{op, 0, 0, 0}, 0)
		var uerr *UnsupportedOpcodeError
		if !errors.As(err, &uerr) {
			t.Errorf("Decode(%#x) = %v, expecting unsupported opcode", op, err)
		} else if uerr.Op != op || uerr.Escape {
			t.Errorf("Decode(%#x) rejected %#x (escape=%v)", op, uerr.Op, uerr.Escape)
		}
	}
	_, err := dec.Decode([]byte{0x0F, 0xAF, 0xC1}, 0)
	var uerr *UnsupportedOpcodeError
	if !errors.As(err, &uerr) || uerr.Op != 0x0F || !uerr.Escape {
		t.Errorf("escape decoded as %v", err)
	}
	if !strings.Contains(err.Error(), "0x0F") {
		t.Errorf("error %q does not name the opcode", err)
	}
}

func TestDecodeUnsupportedMode(t *testing.T) {
	dec := newTestDecoder()
	for _, modrm := range []byte{0x00, 0x48, 0x88} {
		_, err := dec.Decode([]byte{0x01, modrm, 0, 0, 0, 0}, 0)
		var merr *UnsupportedModeError
		if !errors.As(err, &merr) {
			t.Errorf("Decode(01 %02x) = %v, expecting unsupported mode", modrm, err)
		} else if merr.Mod != ModRM(modrm).Mod() || merr.Op != 0x01 {
			t.Errorf("Decode(01 %02x) reported %+v", modrm, merr)
		}
	}
}

// a restricted table turns everything else into unsupported opcodes
func TestDecodeRestrictedTable(t *testing.T) {
	dec := NewDecoder(NewTable().Only(0xB8))
	if _, err := dec.Decode([]byte{0xB8, 1, 0}, 0); err != nil {
		t.Fatal(err)
	}
	var uerr *UnsupportedOpcodeError
	if _, err := dec.Decode([]byte{0xB9, 1, 0}, 0); !errors.As(err, &uerr) || uerr.Op != 0xB9 {
		t.Fatalf("restricted table accepted 0xB9: %v", err)
	}
}

// cross check lengths and operands against x86asm in 16-bit mode
func TestDecodeMatchesX86asm(t *testing.T) {
	var samples [][]byte
	for op := byte(0xB8); op <= 0xBF; op++ {
		samples = append(samples, []byte{op, 0x34, 0x12})
	}
	for modrm := 0xC0; modrm <= 0xFF; modrm += 7 {
		samples = append(samples, []byte{0x01, byte(modrm)})
	}
	samples = append(samples, []byte{0x3D, 0xFF, 0x7F})

	dec := newTestDecoder()
	for _, code := range samples {
		ins, err := dec.Decode(code, 0)
		if err != nil {
			t.Errorf("Decode(% x) failed: %v", code, err)
			continue
		}
		ref, err := x86asm.Decode(code, 16)
		if err != nil {
			t.Errorf("x86asm.Decode(% x) failed: %v", code, err)
			continue
		}
		if ref.Len != ins.Len() {
			t.Errorf("% x: length %d, x86asm says %d", code, ins.Len(), ref.Len)
		}
		if !strings.EqualFold(ref.Op.String(), ins.Mnemonic()) {
			t.Errorf("% x: mnemonic %s, x86asm says %s", code, ins.Mnemonic(), ref.Op)
		}
		dst, ok := ref.Args[0].(x86asm.Reg)
		if !ok || !strings.EqualFold(dst.String(), Reg16Names[ins.Dst]) {
			t.Errorf("% x: destination %s, x86asm says %v", code, Reg16Names[ins.Dst], ref.Args[0])
		}
		switch src := ref.Args[1].(type) {
		case x86asm.Reg:
			if !strings.EqualFold(src.String(), Reg16Names[ins.Src]) {
				t.Errorf("% x: source %s, x86asm says %v", code, Reg16Names[ins.Src], src)
			}
		case x86asm.Imm:
			if uint16(src) != ins.Imm {
				t.Errorf("% x: immediate %d, x86asm says %d", code, ins.Imm, src)
			}
		}
	}
}

func FuzzDecode(f *testing.F) {
	f.Add([]byte{0xB8, 0x05, 0x00})
	f.Add([]byte{0xF0, 0xF0, 0x01, 0xC8})
	f.Add([]byte{0x0F})
	dec := newTestDecoder()
	f.Fuzz(func(t *testing.T, code []byte) {
		ins, err := dec.Decode(code, 0)
		if err == nil && (ins.Len() == 0 || ins.Len() > len(code)) {
			t.Fatalf("Decode(% x) consumed %d bytes", code, ins.Len())
		}
	})
}
