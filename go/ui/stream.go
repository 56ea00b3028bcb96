package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/Dcraftbg/vx86/go/models"
	"github.com/Dcraftbg/vx86/go/models/trace"
)

func pad(s string, to int) string {
	if len(s) >= to {
		return ""
	}
	return strings.Repeat(" ", to-len(s))
}

// StreamUI prints a recorded trace one instruction per line, with the
// registers each instruction changed in a column to the right.
type StreamUI struct {
	config *models.Config
	dis    models.Dis
	names  []string
	regfmt string
	inscol int
	regs   map[int]uint64
	// pending is the last step seen, printed once its effects are known. Cleared by Flush().
	pending *trace.OpStep
	effects []*trace.OpReg
}

func NewStreamUI(c *models.Config, dis models.Dis, names []string, bits int) *StreamUI {
	// find the longest register name
	longest := 0
	for _, name := range names {
		if len(name) > longest {
			longest = len(name)
		}
	}
	return &StreamUI{
		config: c,
		dis:    dis,
		names:  names,
		regfmt: fmt.Sprintf("%%%ds = %%0%dX", longest, bits/4),
		inscol: 32,
		regs:   make(map[int]uint64),
	}
}

// Play feeds every op from r until the exit record and returns the traced exit status.
func (s *StreamUI) Play(r *trace.TraceReader) (int, error) {
	for {
		op, err := r.Next()
		if err == io.EOF {
			s.Flush()
			return 0, errors.New("trace ended without an exit record")
		} else if err != nil {
			s.Flush()
			return 0, err
		}
		if exit, ok := op.(*trace.OpExit); ok {
			s.Flush()
			s.OnExit(int(exit.Status))
			return int(exit.Status), nil
		}
		s.Feed(op)
	}
}

func (s *StreamUI) Feed(op trace.Op) {
	switch o := op.(type) {
	case *trace.OpStep:
		s.Flush()
		s.pending = o
	case *trace.OpReg:
		s.regs[int(o.Enum)] = uint64(o.Val)
		if s.pending != nil {
			s.effects = append(s.effects, o)
		}
	}
}

func (s *StreamUI) Flush() {
	if s.pending != nil {
		s.insPrint(s.pending, s.effects)
	}
	s.pending = nil
	s.effects = nil
}

func (s *StreamUI) OnExit(status int) {
	if status == 0 && !s.config.Verbose {
		return
	}
	s.Printf("[exit status %d]\n", status)
	s.Println("[registers]")
	for enum := range s.names {
		s.Printf(s.regfmt+"\n", s.regName(enum), s.regs[enum])
	}
}

func (s *StreamUI) Printf(f string, args ...interface{}) { fmt.Fprintf(s.config.Output, f, args...) }
func (s *StreamUI) Println(args ...interface{})          { fmt.Fprintln(s.config.Output, args...) }

func (s *StreamUI) regName(enum int) string {
	if enum >= 0 && enum < len(s.names) {
		return s.names[enum]
	}
	return strconv.Itoa(enum)
}

// insPrint() takes an executed instruction and its register changes to pretty-print
//
// 00000000: mov ax, 2              | eax = 00000002
func (s *StreamUI) insPrint(op *trace.OpStep, effects []*trace.OpReg) {
	var ins string
	dis, _ := s.dis.Dis(op.Bytes, uint64(op.Addr))
	if len(dis) > 0 {
		ins = fmt.Sprintf("%08X: %s", op.Addr, models.InsString(dis[0]))
	} else {
		ins = fmt.Sprintf("%08X: %x", op.Addr, op.Bytes)
	}
	var regs []string
	for _, o := range effects {
		regs = append(regs, fmt.Sprintf(s.regfmt, s.regName(int(o.Enum)), o.Val))
	}
	if len(regs) == 0 {
		s.Println(ins)
		return
	}
	ins += pad(ins, s.inscol)
	s.Printf("%s | %s\n", ins, regs[0])
	// print extra effects
	inspad := strings.Repeat(" ", s.inscol)
	for _, r := range regs[1:] {
		s.Printf("%s + %s\n", inspad, r)
	}
}
