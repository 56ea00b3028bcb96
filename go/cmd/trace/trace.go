package trace

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/Dcraftbg/vx86/go/cmd"
	"github.com/Dcraftbg/vx86/go/cpu/x86"
	"github.com/Dcraftbg/vx86/go/models"
	"github.com/Dcraftbg/vx86/go/models/trace"
	"github.com/Dcraftbg/vx86/go/ui"
)

func PrintJson(w io.Writer, tf *trace.TraceReader) error {
	out, err := json.Marshal(&tf.Header)
	if err != nil {
		return errors.Wrap(err, "error printing header")
	}
	fmt.Fprintf(w, "%s\n", out)
	for {
		op, err := tf.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return errors.Wrap(err, "error reading next trace operation")
		}
		out, _ := json.Marshal(op)
		fmt.Fprintf(w, "%s\n", out)
	}
	return nil
}

func PrintPretty(config *models.Config, tf *trace.TraceReader) error {
	dis := x86.NewDis(x86.NewDecoder(x86.NewTable()))
	stream := ui.NewStreamUI(config, dis, x86.Reg32Names[:], 32)
	_, err := stream.Play(tf)
	return err
}

func New() *cmd.VxCmd {
	c := cmd.NewVxCmd("trace")
	var jsonFlag *bool
	c.SetupFlags = func() error {
		jsonFlag = c.Flags.Bool("json", false, "output trace as line-delimited JSON objects")
		return nil
	}
	c.Main = func(path string, data []byte) error {
		tf, err := trace.NewReader(bytes.NewReader(data))
		if err != nil {
			return errors.Wrapf(err, "reading %s", path)
		}
		if tf.Header.Arch != "x86" {
			return errors.Errorf("%s: unsupported trace arch %q", path, tf.Header.Arch)
		}
		if *jsonFlag {
			return PrintJson(c.Stdout, tf)
		}
		config := *c.Config
		config.Output = models.NopCloser(c.Stdout)
		return PrintPretty(&config, tf)
	}
	return c
}

func Main(args []string) int {
	return New().Run(args)
}

func init() { cmd.Register("trace", "print a trace recorded with run -trace", Main) }
