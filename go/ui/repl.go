package ui

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/shibukawa/configdir"
)

// Repl reads debugger commands from the terminal with line editing and
// history kept between sessions.
type Repl struct {
	rl *readline.Instance
}

func historyPath() string {
	configDirs := configdir.New("vx86", "dbg")
	cacheDir := configDirs.QueryCacheFolder()
	if err := cacheDir.MkdirAll(); err != nil {
		return ""
	}
	return filepath.Join(cacheDir.Path, "history")
}

// NewRepl echoes prompts and edits to out.
func NewRepl(out io.Writer) (*Repl, error) {
	rl, err := readline.NewEx(&readline.Config{
		InterruptPrompt: "^C",
		HistoryFile:     historyPath(),
		Stdout:          out,
	})
	if err != nil {
		return nil, err
	}
	return &Repl{rl: rl}, nil
}

// ReadLine returns io.EOF on Ctrl-D. Ctrl-C discards the line and prompts again.
func (r *Repl) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	for {
		line, err := r.rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		return line, err
	}
}

func (r *Repl) Close() error {
	return r.rl.Close()
}

// LineScanner reads commands from a pipe or file, echoing the prompt to out.
type LineScanner struct {
	scan *bufio.Scanner
	out  io.Writer
}

func NewLineScanner(in io.Reader, out io.Writer) *LineScanner {
	return &LineScanner{scan: bufio.NewScanner(in), out: out}
}

func (l *LineScanner) ReadLine(prompt string) (string, error) {
	fmt.Fprint(l.out, prompt)
	if l.scan.Scan() {
		return l.scan.Text(), nil
	}
	if err := l.scan.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
