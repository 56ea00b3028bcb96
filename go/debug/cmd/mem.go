package cmd

import (
	"github.com/Dcraftbg/vx86/go/models"
)

var MemCmd = cmd(&Command{
	Name: "mem",
	Args: "<addr> <size>",
	Desc: "Hex dump memory.",
	Run: func(c *Context, addr, size uint64) error {
		mem, err := c.S.Cpu().MemRead(addr, size)
		if err != nil {
			return err
		}
		for _, line := range models.HexDump(addr, mem, 32) {
			c.Printf("  %s\n", line)
		}
		return nil
	},
})

var DisCmd = cmd(&Command{
	Name: "dis",
	Args: "<addr> <count>",
	Desc: "Disassemble count instructions.",
	Run: func(c *Context, addr uint64, count int) error {
		cpu := c.S.Cpu()
		for i := 0; i < count && addr < cpu.MemSize(); i++ {
			mem, err := cpu.MemFrom(addr)
			if err != nil {
				return err
			}
			ins, err := cpu.Decoder().Decode(mem, addr)
			if err != nil {
				c.Printf("  %08X: %02x ???\n", addr, mem[0])
				addr++
				continue
			}
			c.Printf("  %08X: %s\n", addr, ins)
			addr += uint64(ins.Len())
		}
		return nil
	},
})
