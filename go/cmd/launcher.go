package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
)

type command struct {
	name, desc string
	main       func(args []string) int
}

var commands map[string]*command
var order []string
var pad int

// Default runs when the first argument is not a command name.
var Default = "run"

func init() { commands = make(map[string]*command) }

func Register(name, desc string, main func(args []string) int) {
	if len(name) > pad {
		pad = len(name)
	}
	commands[name] = &command{name, desc, main}
	order = append(order, name)
}

func Usage(w io.Writer, prog string) {
	fmt.Fprintln(w, "Commands:")
	fstr := fmt.Sprintf("%%-%ds | %%s\n", pad)
	for _, name := range order {
		cmd := commands[name]
		fmt.Fprintf(w, fstr, cmd.name, cmd.desc)
	}
	fmt.Fprintf(w, "\nExample: %s -dbg prog.bin\n\n", prog)
}

// Dispatch picks a command from argv[1], falling back to Default.
func Dispatch(argv []string) int {
	if len(argv) > 1 {
		if cmd, ok := commands[argv[1]]; ok {
			args := append([]string{strings.Join(argv[:2], " ")}, argv[2:]...)
			return cmd.main(args)
		}
	}
	cmd, ok := commands[Default]
	if !ok {
		Usage(os.Stderr, argv[0])
		return 1
	}
	return cmd.main(argv)
}

func Main() {
	os.Exit(Dispatch(os.Args))
}
