package dis

import (
	"github.com/Dcraftbg/vx86/go/cmd"
	"github.com/Dcraftbg/vx86/go/cpu/x86"
)

func New() *cmd.VxCmd {
	c := cmd.NewVxCmd("dis")
	var base *uint64
	c.SetupFlags = func() error {
		base = c.Flags.Uint64("base", 0, "address of the first byte")
		return nil
	}
	c.Main = func(path string, image []byte) error {
		dis := x86.NewDis(x86.NewDecoder(x86.NewTable()))
		return dis.Listing(c.Stdout, image, *base)
	}
	return c
}

func Main(args []string) int {
	return New().Run(args)
}

func init() { cmd.Register("dis", "disassemble a raw 16-bit x86 image", Main) }
