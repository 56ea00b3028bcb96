package cmd

import (
	"github.com/pkg/errors"

	"github.com/Dcraftbg/vx86/go/cpu/x86"
)

var RegCmd = cmd(&Command{
	Name: "reg",
	Desc: "Print the registers.",
	Run: func(c *Context) error {
		cpu := c.S.Cpu()
		c.Printf("%s\nip=%08X\n", cpu.RegString(), cpu.PC())
		return nil
	},
})

var SetCmd = cmd(&Command{
	Name: "set",
	Args: "<reg> <value>",
	Desc: "Write a register (eax..edi, ip).",
	Run: func(c *Context, name string, val uint64) error {
		enum, ok := x86.RegEnum(name)
		if !ok {
			return errors.Errorf("reg %s not found", name)
		}
		if val > 0xFFFFFFFF {
			return errors.Errorf("value %#x does not fit in 32 bits", val)
		}
		return c.S.Cpu().RegWrite(enum, val)
	},
})
