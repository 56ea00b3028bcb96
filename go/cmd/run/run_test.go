package run

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Dcraftbg/vx86/go/models/trace"
)

func writeProg(t *testing.T, prog []byte) string {
	path := filepath.Join(t.TempDir(), "prog.bin")
	if err := os.WriteFile(path, prog, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runWith(t *testing.T, stdin string, args ...string) (int, string) {
	var stderr bytes.Buffer
	c := New()
	c.Stdin = strings.NewReader(stdin)
	c.Stdout = &stderr
	c.Stderr = &stderr
	status := c.Run(append([]string{"vx86"}, args...))
	return status, stderr.String()
}

// mov ax, 5; mov cx, 3; add ax, cx
var addProgram = []byte{0xB8, 0x05, 0x00, 0xB9, 0x03, 0x00, 0x01, 0xC8}

func TestBatch(t *testing.T) {
	status, out := runWith(t, "", writeProg(t, addProgram))
	if status != 0 {
		t.Fatalf("status %d: %s", status, out)
	}
	want := "INFO: Register dump:\n" +
		"eax=00000008 ecx=00000003 edx=00000000 ebx=00000000\n" +
		"esp=00000000 ebp=00000000 esi=00000000 edi=00000000\n"
	if out != want {
		t.Errorf("got:\n%s\nexpecting:\n%s", out, want)
	}
}

func TestBatchFailure(t *testing.T) {
	status, out := runWith(t, "", writeProg(t, []byte{0xB8, 0x34, 0x12, 0x90}))
	if status != 1 {
		t.Fatalf("status %d", status)
	}
	want := "ERROR: at 00000003: unsupported opcode 0x90\n" +
		"INFO: Register dump:\n" +
		"eax=00001234 ecx=00000000 edx=00000000 ebx=00000000\n" +
		"esp=00000000 ebp=00000000 esi=00000000 edi=00000000\n"
	if out != want {
		t.Errorf("got:\n%s\nexpecting:\n%s", out, want)
	}
}

func TestDebugSession(t *testing.T) {
	status, out := runWith(t, "s\n\nhello\n", "-dbg", writeProg(t, addProgram))
	if status != 0 {
		t.Fatalf("status %d: %s", status, out)
	}
	want := "00000000>mov ax, 5\n:" +
		"00000003>mov cx, 3\n:" +
		"00000006>add ax, cx\n:" +
		"Unknown cmd hello\n" +
		"00000006>add ax, cx\n:" +
		"INFO: Register dump:\n" +
		"eax=00000005 ecx=00000003 edx=00000000 ebx=00000000\n" +
		"esp=00000000 ebp=00000000 esi=00000000 edi=00000000\n"
	if out != want {
		t.Errorf("got:\n%s\nexpecting:\n%s", out, want)
	}
}

func TestDebugStepFailure(t *testing.T) {
	status, out := runWith(t, "s\ns\n", writeProg(t, []byte{0x3D, 0x01, 0x00}), "-dbg")
	if status != 1 {
		t.Fatalf("status %d: %s", status, out)
	}
	if !strings.HasPrefix(out, "00000000>cmp ax, 1\n:ERROR: at 00000000: ") {
		t.Errorf("got:\n%s", out)
	}
	if !strings.HasSuffix(out, "esp=00000000 ebp=00000000 esi=00000000 edi=00000000\n") {
		t.Errorf("missing register dump:\n%s", out)
	}
}

func TestTraceFlag(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "out.trace")
	status, out := runWith(t, "", "-trace", tracePath, writeProg(t, addProgram))
	if status != 0 {
		t.Fatalf("status %d: %s", status, out)
	}
	f, err := os.Open(tracePath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	tf, err := trace.NewReader(f)
	if err != nil {
		t.Fatal(err)
	}
	steps := 0
	for {
		op, err := tf.Next()
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := op.(*trace.OpStep); ok {
			steps++
		}
		if exit, ok := op.(*trace.OpExit); ok {
			if exit.Status != 0 {
				t.Errorf("exit status %d", exit.Status)
			}
			break
		}
	}
	if steps != 3 {
		t.Errorf("recorded %d steps", steps)
	}
}
