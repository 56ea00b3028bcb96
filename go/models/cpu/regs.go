package cpu

import (
	"github.com/pkg/errors"
)

// implements register and context methods conforming to cpu.Cpu
// register enums are dense (0..count-1) so values live in a slice
type Regs struct {
	mask uint64
	vals []uint64
}

func NewRegs(bits uint, count int) *Regs {
	return &Regs{
		mask: ^uint64(0) >> (64 - bits),
		vals: make([]uint64, count),
	}
}

func (r *Regs) RegRead(enum int) (uint64, error) {
	if enum < 0 || enum >= len(r.vals) {
		return 0, errors.Errorf("invalid register: %d", enum)
	}
	return r.vals[enum], nil
}

func (r *Regs) RegWrite(enum int, val uint64) error {
	if enum < 0 || enum >= len(r.vals) {
		return errors.Errorf("invalid register: %d", enum)
	}
	r.vals[enum] = val & r.mask
	return nil
}

// RegCount returns the number of register enums in the file.
func (r *Regs) RegCount() int {
	return len(r.vals)
}

// handling ContextSave in the register file either requires you to store important cpu state (like flags) in registers
// or wrap ContextSave/ContextRestore with your own functions
func (r *Regs) ContextSave(reuse interface{}) (interface{}, error) {
	var s []uint64
	if reuse != nil {
		var ok bool
		if s, ok = reuse.([]uint64); !ok || len(s) != len(r.vals) {
			return nil, errors.New("incorrect context type")
		}
	} else {
		s = make([]uint64, len(r.vals))
	}
	copy(s, r.vals)
	return s, nil
}

func (r *Regs) ContextRestore(ctx interface{}) error {
	s, ok := ctx.([]uint64)
	if !ok || len(s) != len(r.vals) {
		return errors.New("incorrect context type")
	}
	copy(r.vals, s)
	return nil
}
