package x86

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/Dcraftbg/vx86/go/models"
	"github.com/Dcraftbg/vx86/go/models/cpu"
)

// Cpu holds the machine state (8 GPRs, IP and the memory image) and
// interprets instructions against it.
type Cpu struct {
	*cpu.Hooks
	*cpu.Regs
	*cpu.Mem

	dec         *Decoder
	exitRequest bool
}

var _ cpu.Cpu = &Cpu{}

// NewCpu takes ownership of mem. Execution starts at IP 0.
func NewCpu(mem []byte, t Table) (*Cpu, error) {
	if uint64(len(mem)) > 1<<32 {
		return nil, errors.Errorf("memory image too large: %d bytes", len(mem))
	}
	c := &Cpu{
		Regs: cpu.NewRegs(32, regCount),
		Mem:  cpu.NewMem(mem, binary.LittleEndian),
		dec:  NewDecoder(t),
	}
	c.Hooks = cpu.NewHooks(c)
	return c, nil
}

func (c *Cpu) Decoder() *Decoder {
	return c.dec
}

func (c *Cpu) PC() uint32 {
	pc, _ := c.RegRead(IP)
	return uint32(pc)
}

func (c *Cpu) SetPC(pc uint32) {
	c.RegWrite(IP, uint64(pc))
}

// Done reports whether IP has run off the end of memory.
func (c *Cpu) Done() bool {
	return uint64(c.PC()) >= c.MemSize()
}

// Step decodes and executes the instruction at IP. Registers and IP are
// left untouched if decoding or execution fails.
func (c *Cpu) Step() (*Ins, error) {
	pc := c.PC()
	mem, err := c.MemFrom(uint64(pc))
	if err != nil {
		return nil, err
	}
	ins, err := c.dec.Decode(mem, uint64(pc))
	if err != nil {
		return nil, err
	}
	size := uint32(ins.Len())
	c.OnCode(uint64(pc), size)
	if err := c.exec(ins); err != nil {
		return ins, err
	}
	c.SetPC(pc + size)
	c.OnCodeAfter(uint64(pc), size)
	return ins, nil
}

// Start runs until IP reaches the end of memory, a step fails, or Stop is called.
func (c *Cpu) Start() error {
	c.exitRequest = false
	for !c.Done() && !c.exitRequest {
		pc := c.PC()
		if _, err := c.Step(); err != nil {
			return errors.Wrapf(err, "at %08X", pc)
		}
	}
	return nil
}

func (c *Cpu) Stop() error {
	c.exitRequest = true
	return nil
}

// RegDump lists the general purpose registers followed by ip.
func (c *Cpu) RegDump() []models.RegVal {
	out := make([]models.RegVal, 0, regCount)
	for i, name := range Reg32Names {
		val, _ := c.RegRead(i)
		out = append(out, models.RegVal{Reg: models.Reg{Enum: i, Name: name}, Val: val})
	}
	out = append(out, models.RegVal{Reg: models.Reg{Enum: IP, Name: "ip"}, Val: uint64(c.PC())})
	return out
}

// RegString formats the GPRs four to a line: "eax=00000000 ecx=... edx=... ebx=...".
func (c *Cpu) RegString() string {
	var sb strings.Builder
	for i, name := range Reg32Names {
		if i > 0 {
			if i%4 == 0 {
				sb.WriteString("\n")
			} else {
				sb.WriteString(" ")
			}
		}
		val, _ := c.RegRead(i)
		fmt.Fprintf(&sb, "%s=%08X", name, uint32(val))
	}
	return sb.String()
}

func (c *Cpu) DumpRegs(w io.Writer) error {
	_, err := fmt.Fprintln(w, c.RegString())
	return err
}

// RegEnum looks up a register by its 32-bit name, or "ip".
func RegEnum(name string) (int, bool) {
	name = strings.ToLower(name)
	if name == "ip" || name == "eip" {
		return IP, true
	}
	for i, n := range Reg32Names {
		if n == name {
			return i, true
		}
	}
	return 0, false
}
