package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/Dcraftbg/vx86/go/models"
)

// VxCmd is the shared front end of every subcommand that takes one input
// file: flag parsing, output redirection, loading and error reporting.
type VxCmd struct {
	Config *models.Config

	SetupFlags func() error
	// Main runs the subcommand on the loaded file. Returning a
	// models.ExitStatus sets the exit code without printing anything.
	Main func(path string, data []byte) error

	Flags  *flag.FlagSet
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func NewVxCmd(name string) *VxCmd {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	return &VxCmd{
		Flags:  fs,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

func (c *VxCmd) PrintError(err error) {
	// print an error, and a stacktrace if available
	out := c.Config.Output
	fmt.Fprintf(out, "ERROR: %s\n", err)
	if !c.Config.Verbose {
		return
	}
	if err, ok := err.(stackTracer); ok {
		fmt.Fprintf(out, "%s\n", strings.Repeat("-", 40))
		// parse full path and method name for each stack frame
		var frames [][]string
		for _, f := range err.StackTrace() {
			fullpath := ""
			fileline := fmt.Sprintf("%s:%d", f, f)
			method := fmt.Sprintf("%n", f)

			frame := fmt.Sprintf("%+s", f)
			tmp := strings.SplitN(frame, "\n", 3)
			if len(tmp) == 2 {
				pathsplit := strings.Split(tmp[0], "/")
				method = pathsplit[len(pathsplit)-1]
				fullpath = strings.TrimSpace(tmp[1])
			}
			frames = append(frames, []string{fullpath, fileline, method})
			if method == "main.main" {
				break
			}
		}
		// calculate column widths
		widths := make([]int, 2)
		for _, f := range frames {
			for i, s := range f[:2] {
				if len(s) > widths[i] {
					widths[i] = len(s)
				}
			}
		}
		for _, f := range frames {
			for i := 0; i < 2; i++ {
				if widths[i] > 0 {
					pad := strings.Repeat(" ", widths[i]-len(f[i]))
					fmt.Fprintf(out, "%s%s | ", f[i], pad)
				}
			}
			fmt.Fprintf(out, "%s()\n", f[2])
		}
	}
}

// parseArgs allows flags on either side of the positional arguments.
func parseArgs(fs *flag.FlagSet, argv []string) ([]string, error) {
	var pos []string
	for {
		if err := fs.Parse(argv); err != nil {
			return nil, err
		}
		argv = fs.Args()
		if len(argv) == 0 {
			return pos, nil
		}
		pos = append(pos, argv[0])
		argv = argv[1:]
	}
}

// Run parses argv (argv[0] is the command name) and returns the process exit status.
func (c *VxCmd) Run(argv []string) int {
	fs := c.Flags
	fs.SetOutput(c.Stderr)
	verbose := fs.Bool("v", false, "verbose output")
	outfile := fs.String("o", "", "redirect diagnostic output to file (default stderr)")

	fs.Usage = func() {
		fmt.Fprintf(c.Stderr, "Usage: %s [options] <file>\n\nOptions:\n", argv[0])
		var flags []*flag.Flag
		fs.VisitAll(func(f *flag.Flag) { flags = append(flags, f) })
		models.PrintFlags(c.Stderr, flags)
	}
	if c.SetupFlags != nil {
		if err := c.SetupFlags(); err != nil {
			fmt.Fprintf(c.Stderr, "ERROR: %s\n", err)
			return 1
		}
	}
	args, err := parseArgs(fs, argv[1:])
	if err == flag.ErrHelp {
		return 0
	} else if err != nil {
		return 1
	}
	if len(args) == 0 {
		fmt.Fprintln(c.Stderr, "ERROR: Missing input file")
		fs.Usage()
		return 1
	} else if len(args) > 1 {
		fmt.Fprintf(c.Stderr, "ERROR: Unknown argument `%s`\n", args[1])
		fs.Usage()
		return 1
	}

	config := &models.Config{
		Verbose: *verbose,
		Output:  models.NopCloser(c.Stderr),
	}
	if *outfile != "" {
		out, err := os.OpenFile(*outfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(c.Stderr, "ERROR: Failed to open `%s`: %v\n", *outfile, err)
			return 1
		}
		config.Output = out
	}
	defer config.Output.Close()
	c.Config = config

	data, err := os.ReadFile(args[0])
	if err != nil {
		config.Printf("ERROR: Failed to read `%s`: %v\n", args[0], err)
		return 1
	}
	config.Debugf("loaded %d bytes from %s\n", len(data), args[0])
	if err := c.Main(args[0], data); err != nil {
		if e, ok := err.(models.ExitStatus); ok {
			return int(e)
		}
		c.PrintError(err)
		return 1
	}
	return 0
}
