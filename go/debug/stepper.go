package debug

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/Dcraftbg/vx86/go/cpu/x86"
	"github.com/Dcraftbg/vx86/go/models"
)

// Stepper pairs a Cpu with a disassembler over the same decoder, so the
// instruction shown at the prompt is the one the next Step executes.
type Stepper struct {
	cpu    *x86.Cpu
	dis    *x86.Dis
	status *models.StatusDiff
}

func NewStepper(c *x86.Cpu) *Stepper {
	s := &Stepper{
		cpu:    c,
		dis:    x86.NewDis(c.Decoder()),
		status: &models.StatusDiff{Src: c, Bits: 32},
	}
	s.status.Reset()
	return s
}

func (s *Stepper) Cpu() *x86.Cpu { return s.cpu }
func (s *Stepper) Dis() *x86.Dis { return s.dis }

// Line renders the instruction at IP as "XXXXXXXX>text", using "???" when it does not decode.
func (s *Stepper) Line() string {
	pc := s.cpu.PC()
	mem, _ := s.cpu.MemFrom(uint64(pc))
	return fmt.Sprintf("%08X>%s", pc, s.dis.Line(mem, uint64(pc)))
}

func (s *Stepper) Render(w io.Writer) error {
	_, err := fmt.Fprintln(w, s.Line())
	return err
}

// Step executes exactly one instruction. Machine state is unchanged on error.
func (s *Stepper) Step() error {
	s.status.Reset()
	pc := s.cpu.PC()
	if _, err := s.cpu.Step(); err != nil {
		return errors.Wrapf(err, "at %08X", pc)
	}
	return nil
}

func (s *Stepper) Done() bool {
	return s.cpu.Done()
}

// Changes lists the registers modified by the last Step.
func (s *Stepper) Changes() *models.Changes {
	return s.status.Changes(true)
}
