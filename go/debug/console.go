package debug

import (
	"io"
	"strings"

	"github.com/Dcraftbg/vx86/go/debug/cmd"
)

// LineSource feeds the console one line at a time. ReadLine returns io.EOF
// once input is exhausted.
type LineSource interface {
	ReadLine(prompt string) (string, error)
}

const Prompt = ":"

type Console struct {
	*Stepper
	In  LineSource
	Out io.Writer

	// print the registers each step changed, optionally in color
	Diff  bool
	Color bool
}

func NewConsole(s *Stepper, in LineSource, out io.Writer) *Console {
	return &Console{Stepper: s, In: in, Out: out}
}

// Run shows the current instruction and executes one command per line until
// input ends or IP leaves memory. An empty line repeats the previous command.
// A failed step ends the session and is returned.
func (c *Console) Run() error {
	ctx := &cmd.Context{Writer: c.Out, S: c.Stepper, Diff: c.Diff, Color: c.Color}
	var last string
	for !c.Done() {
		if err := c.Render(c.Out); err != nil {
			return err
		}
		line, err := c.In.ReadLine(Prompt)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			if last == "" {
				continue
			}
			line = last
		}
		last = line
		if err := cmd.Run(ctx, line); err != nil {
			return err
		}
	}
	return nil
}
