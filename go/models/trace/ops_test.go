package trace

import (
	"bytes"
	"io"
	"reflect"
	"testing"
)

var allOps = []Op{
	&OpStep{Addr: 0x10, Bytes: []byte{0xB8, 0x05, 0x00}},
	&OpReg{Enum: 1, Val: 0xDEADBEEF},
	&OpStep{Addr: 0x13, Bytes: []byte{0x01, 0xC8}},
	&OpExit{Status: -1},
}

func TestOpStream(t *testing.T) {
	var buf bytes.Buffer
	for _, op := range allOps {
		if err := Pack(&buf, op); err != nil {
			t.Fatal(err)
		}
	}
	for i, want := range allOps {
		op, err := Unpack(&buf)
		if err != nil {
			t.Fatalf("op %d: %v", i, err)
		}
		if step, ok := op.(*OpStep); ok && int(step.Size) != len(step.Bytes) {
			t.Errorf("op %d: size %d for %d bytes", i, step.Size, len(step.Bytes))
		}
		// Size is filled in on pack, so compare the fields we set
		if got, ok := op.(*OpStep); ok {
			w := want.(*OpStep)
			if got.Addr != w.Addr || !bytes.Equal(got.Bytes, w.Bytes) {
				t.Errorf("op %d: got %+v, expecting %+v", i, got, w)
			}
		} else if !reflect.DeepEqual(op, want) {
			t.Errorf("op %d: got %+v, expecting %+v", i, op, want)
		}
	}
	if _, err := Unpack(&buf); err != io.EOF {
		t.Fatalf("expected io.EOF at end of stream, got %v", err)
	}
}

func TestUnpackErrors(t *testing.T) {
	if _, err := Unpack(bytes.NewReader([]byte{0xFF})); err == nil {
		t.Error("unknown op tag was accepted")
	}
	if _, err := Unpack(bytes.NewReader([]byte{OP_REG, 1})); err == nil {
		t.Error("truncated op was accepted")
	}
}
