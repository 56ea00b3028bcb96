package cmd

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/lunixbochs/argjoy"
	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
)

type Command struct {
	Name string
	Args string
	Desc string
	Run  interface{}
}

func (c *Command) Usage() string {
	if c.Args == "" {
		return c.Name
	}
	return c.Name + " " + c.Args
}

var Commands = make(map[string]*Command)

func cmd(c *Command) *Command {
	fn := reflect.ValueOf(c.Run)
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		panic(fmt.Sprintf("Command.Run must be a func: got (%T) %#v\n", c.Run, c.Run))
	}
	if fn.Type().NumIn() == 0 || fn.Type().In(0) != reflect.TypeOf(&Context{}) {
		panic(fmt.Sprintf("Command %s must take *Context first", c.Name))
	}
	Commands[c.Name] = c
	return c
}

func sortedCommands() []*Command {
	out := make([]*Command, 0, len(Commands))
	for _, c := range Commands {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ExecError ends the debugger session. Any other command error is printed
// and the session continues.
type ExecError struct {
	Err error
}

func (e *ExecError) Error() string { return e.Err.Error() }
func (e *ExecError) Cause() error  { return e.Err }
func (e *ExecError) Unwrap() error { return e.Err }

var aj = argjoy.NewArgjoy()

func init() {
	aj.Register(argCodec)
}

// argCodec converts command line words into the types command funcs take.
func argCodec(arg interface{}, vals []interface{}) error {
	if ctx, ok := vals[0].(*Context); ok {
		if v, ok := arg.(**Context); ok {
			*v = ctx
			return nil
		}
		return argjoy.NoMatch
	}
	s, ok := vals[0].(string)
	if !ok {
		return argjoy.NoMatch
	}
	switch v := arg.(type) {
	case *string:
		*v = s
	case *uint64:
		n, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return errors.Errorf("invalid number %q", s)
		}
		*v = n
	case *int:
		n, err := strconv.ParseInt(s, 0, 0)
		if err != nil {
			return errors.Errorf("invalid number %q", s)
		}
		*v = int(n)
	default:
		return argjoy.NoMatch
	}
	return nil
}

// Run tokenizes line and calls the named command. It only returns an error
// when the command asks to end the session.
func Run(c *Context, line string) error {
	args, err := shellwords.Parse(line)
	if err != nil {
		c.Printf("parse error: %v\n", err)
		return nil
	}
	if len(args) == 0 {
		return nil
	}
	name, args := args[0], args[1:]
	command, ok := Commands[name]
	if !ok {
		c.Printf("Unknown cmd %s\n", line)
		return nil
	}
	if reflect.TypeOf(command.Run).NumIn()-1 != len(args) {
		c.Printf("usage: %s\n", command.Usage())
		return nil
	}
	vals := make([]interface{}, 0, len(args)+1)
	vals = append(vals, c)
	for _, arg := range args {
		vals = append(vals, arg)
	}
	out, err := aj.Call(command.Run, vals...)
	if err != nil {
		c.Printf("error: %v\n", err)
		return nil
	}
	if len(out) > 0 {
		if err, ok := out[0].(error); ok {
			var exec *ExecError
			if errors.As(err, &exec) {
				return exec.Err
			}
			c.Printf("error: %v\n", err)
		}
	}
	return nil
}
