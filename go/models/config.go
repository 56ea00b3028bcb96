package models

import (
	"fmt"
	"io"
	"os"
)

type Config struct {
	Color     bool
	Debug     bool
	TraceFile string
	Verbose   bool

	// diagnostic output (register dumps, errors, debugger text)
	Output io.WriteCloser
}

type nopCloser struct{ io.Writer }

func (n nopCloser) Close() error { return nil }

// NopCloser wraps w so it can be used as Config.Output without being closed.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}

func (c *Config) Init() *Config {
	if c == nil {
		c = &Config{}
	}
	if c.Output == nil {
		c.Output = NopCloser(os.Stderr)
	}
	return c
}

func (c *Config) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Output, format, args...)
}

func (c *Config) Println(s ...interface{}) {
	fmt.Fprintln(c.Output, s...)
}

// Debugf only prints with -v.
func (c *Config) Debugf(format string, args ...interface{}) {
	if c.Verbose {
		fmt.Fprintf(c.Output, "DEBUG: "+format, args...)
	}
}
