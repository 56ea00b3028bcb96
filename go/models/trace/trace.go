package trace

import (
	"github.com/pkg/errors"

	"github.com/Dcraftbg/vx86/go/models/cpu"
)

// Trace records every successfully executed instruction of a cpu, plus the
// registers it changed, into a TraceWriter.
type Trace struct {
	tf   *TraceWriter
	cpu  cpu.Cpu
	regs []int
	last []uint64
	hook cpu.Hook
	err  error
}

// NewTrace watches the given register enums for changes.
func NewTrace(tf *TraceWriter, c cpu.Cpu, regs []int) *Trace {
	return &Trace{tf: tf, cpu: c, regs: regs, last: make([]uint64, len(regs))}
}

func (t *Trace) Attach() error {
	for i, enum := range t.regs {
		val, err := t.cpu.RegRead(enum)
		if err != nil {
			return err
		}
		t.last[i] = val
	}
	hook, err := t.cpu.HookAdd(cpu.HOOK_CODE_AFTER, t.OnStep, 1, 0)
	if err != nil {
		return errors.Wrap(err, "failed to hook cpu")
	}
	t.hook = hook
	return nil
}

func (t *Trace) OnStep(c cpu.Cpu, addr uint64, size uint32) {
	if t.err != nil {
		return
	}
	mem, err := c.MemRead(addr, uint64(size))
	if err != nil {
		t.err = err
		return
	}
	if err := t.tf.Pack(&OpStep{Addr: uint32(addr), Bytes: mem}); err != nil {
		t.err = err
		return
	}
	for i, enum := range t.regs {
		val, _ := c.RegRead(enum)
		if val != t.last[i] {
			t.last[i] = val
			if err := t.tf.Pack(&OpReg{Enum: uint8(enum), Val: uint32(val)}); err != nil {
				t.err = err
				return
			}
		}
	}
}

// Close writes the exit record and releases the underlying writer.
// It returns the first error seen while tracing, if any.
func (t *Trace) Close(status int) error {
	if t.hook != nil {
		t.cpu.HookDel(t.hook)
		t.hook = nil
	}
	err := t.err
	if perr := t.tf.Pack(&OpExit{Status: int32(status)}); err == nil {
		err = perr
	}
	if cerr := t.tf.Close(); err == nil {
		err = cerr
	}
	return err
}
