package cmd

import (
	"fmt"
	"io"

	"github.com/Dcraftbg/vx86/go/cpu/x86"
	"github.com/Dcraftbg/vx86/go/models"
)

// Session is the stepping machine a debugger command acts on.
type Session interface {
	Cpu() *x86.Cpu
	Step() error
	Done() bool
	Changes() *models.Changes
}

type Context struct {
	io.Writer
	S Session

	Diff  bool
	Color bool
}

func (c *Context) Printf(format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(c, format, a...)
}

func (c *Context) printChanges() {
	if !c.Diff {
		return
	}
	if cs := c.S.Changes(); len(cs.Changes) > 0 {
		c.Printf("%s", cs.String(c.Color))
	}
}
