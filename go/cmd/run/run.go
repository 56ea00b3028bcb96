package run

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/Dcraftbg/vx86/go/cmd"
	"github.com/Dcraftbg/vx86/go/cpu/x86"
	"github.com/Dcraftbg/vx86/go/debug"
	"github.com/Dcraftbg/vx86/go/models"
	"github.com/Dcraftbg/vx86/go/models/cpu"
	"github.com/Dcraftbg/vx86/go/models/trace"
	"github.com/Dcraftbg/vx86/go/ui"
)

var gprs = []int{x86.EAX, x86.ECX, x86.EDX, x86.EBX, x86.ESP, x86.EBP, x86.ESI, x86.EDI}

type runCmd struct {
	*cmd.VxCmd
	dbg       *bool
	color     *bool
	tracefile *string
}

func New() *cmd.VxCmd {
	c := &runCmd{VxCmd: cmd.NewVxCmd("run")}
	c.SetupFlags = func() error {
		fs := c.Flags
		c.dbg = fs.Bool("dbg", false, "step through the program interactively")
		c.color = fs.Bool("color", isatty.IsTerminal(os.Stderr.Fd()), "color register changes in the debugger")
		c.tracefile = fs.String("trace", "", "write a binary execution trace to <file>")
		return nil
	}
	c.Main = c.run
	return c.VxCmd
}

func (c *runCmd) lineSource(out io.Writer) (debug.LineSource, func(), error) {
	if f, ok := c.Stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		repl, err := ui.NewRepl(out)
		if err != nil {
			return nil, nil, err
		}
		return repl, func() { repl.Close() }, nil
	}
	return ui.NewLineScanner(c.Stdin, out), func() {}, nil
}

func (c *runCmd) startTrace(machine *x86.Cpu, size int) (*trace.Trace, error) {
	f, err := os.Create(*c.tracefile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create trace file")
	}
	tf, err := trace.NewWriter(f, "x86", uint32(size))
	if err != nil {
		f.Close()
		return nil, err
	}
	tr := trace.NewTrace(tf, machine, gprs)
	if err := tr.Attach(); err != nil {
		tf.Close()
		return nil, err
	}
	return tr, nil
}

func (c *runCmd) run(path string, image []byte) error {
	config := c.Config
	config.Color = *c.color
	config.Debug = *c.dbg
	config.TraceFile = *c.tracefile

	machine, err := x86.NewCpu(image, x86.NewTable())
	if err != nil {
		return err
	}
	var tr *trace.Trace
	if config.TraceFile != "" {
		if tr, err = c.startTrace(machine, len(image)); err != nil {
			return err
		}
	}
	if config.Verbose {
		dis := x86.NewDis(machine.Decoder())
		machine.HookAdd(cpu.HOOK_CODE, func(_ cpu.Cpu, addr uint64, size uint32) {
			mem, _ := machine.MemRead(addr, uint64(size))
			config.Debugf("%08X: %s\n", addr, dis.Line(mem, addr))
		}, 1, 0)
	}

	var runErr error
	if config.Debug {
		runErr = c.debug(machine)
	} else {
		runErr = machine.Start()
	}
	if tr != nil {
		status := 0
		if runErr != nil {
			status = 1
		}
		if err := tr.Close(status); err != nil {
			config.Printf("ERROR: Failed to write trace `%s`: %v\n", config.TraceFile, err)
		}
	}
	if runErr != nil {
		c.PrintError(runErr)
	}
	config.Println("INFO: Register dump:")
	machine.DumpRegs(config.Output)
	if runErr != nil {
		return models.ExitStatus(1)
	}
	return nil
}

func (c *runCmd) debug(machine *x86.Cpu) error {
	out := c.Config.Output
	in, done, err := c.lineSource(out)
	if err != nil {
		return err
	}
	defer done()
	console := debug.NewConsole(debug.NewStepper(machine), in, out)
	console.Diff = c.Config.Verbose
	console.Color = c.Config.Color
	return console.Run()
}

func Main(args []string) int {
	return New().Run(args)
}

func init() { cmd.Register("run", "execute a raw 16-bit x86 image (default)", Main) }
