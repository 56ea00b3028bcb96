package models

import (
	"strings"
	"testing"
)

type fakeRegs []RegVal

func (f fakeRegs) RegDump() []RegVal { return f }

func newFakeRegs(vals ...uint64) fakeRegs {
	names := []string{"eax", "ecx", "edx", "ebx", "esp"}
	regs := make(fakeRegs, len(vals))
	for i, v := range vals {
		regs[i] = RegVal{Reg{i, names[i]}, v}
	}
	return regs
}

func TestStatusDiff(t *testing.T) {
	regs := newFakeRegs(1, 2, 3)
	s := &StatusDiff{Src: regs, Bits: 32}
	s.Reset()
	if n := s.Changes(true).Count(); n != 0 {
		t.Fatalf("expected no changes after Reset, got %d", n)
	}
	regs[1].Val = 0x1234
	cs := s.Changes(true)
	if len(cs.Changes) != 1 || cs.Changes[0].Name != "ecx" {
		t.Fatalf("expected only ecx to change, got %+v", cs.Changes)
	}
	if c := cs.Find(1); c == nil || c.Old != 2 || c.New != 0x1234 {
		t.Errorf("bad change: %+v", c)
	}
	if cs.Find(0) != nil {
		t.Error("unchanged register reported")
	}
	// the baseline moves forward on every call
	if n := s.Changes(true).Count(); n != 0 {
		t.Errorf("expected no changes on second call, got %d", n)
	}
	if all := s.Changes(false); len(all.Changes) != 3 {
		t.Errorf("expected every register, got %d", len(all.Changes))
	}
}

func TestChangeString(t *testing.T) {
	c := NewChange(Reg{0, "eax"}, 5, 2)
	if s := c.String(8, false); s != "+   eax 0x00000005" {
		t.Errorf("got %q", s)
	}
	c = NewChange(Reg{0, "eax"}, 5, 5)
	if s := c.String(8, false); s != "  eax 0x00000005" {
		t.Errorf("got %q", s)
	}
	colored := NewChange(Reg{0, "eax"}, 0x105, 0x5).String(8, true)
	if !strings.Contains(colored, "\x1b[") || !strings.Contains(colored, "eax") {
		t.Errorf("expected ansi escapes in %q", colored)
	}
}

func TestChangeMask(t *testing.T) {
	masks := NewChange(Reg{0, "eax"}, 0x1200, 0x1300).Mask(4)
	if len(masks) != 3 {
		t.Fatalf("expected 3 masks, got %+v", masks)
	}
	if masks[0].New != "1" || masks[0].Changed || masks[1].New != "2" || !masks[1].Changed || masks[2].New != "00" {
		t.Errorf("bad masks: %+v", masks)
	}
}

func TestChangesColumns(t *testing.T) {
	s := &StatusDiff{Src: newFakeRegs(1, 2, 3, 4, 5), Bits: 32}
	out := s.Changes(false).String(false)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %q", out)
	}
	if !strings.Contains(lines[1], "esp") {
		t.Errorf("expected the leftover register on its own row: %q", out)
	}
}
