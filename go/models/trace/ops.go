package trace

import (
	"encoding/binary"
	"io"

	"github.com/lunixbochs/struc"
	"github.com/pkg/errors"
)

var order = binary.LittleEndian

const (
	OP_STEP = 1
	OP_REG  = 2
	OP_EXIT = 3
)

// Op is one record in the trace stream. Each op is written as a one byte
// tag followed by the struc encoding of the op itself.
type Op interface {
	Tag() byte
}

// OpStep records one executed instruction and its encoding.
type OpStep struct {
	Addr  uint32
	Size  uint8 `struc:"uint8,sizeof=Bytes"`
	Bytes []byte
}

// OpReg records a register value that changed during the preceding step.
type OpReg struct {
	Enum uint8
	Val  uint32
}

// OpExit ends a trace. Status is non-zero when execution stopped on an error.
type OpExit struct {
	Status int32
}

func (o *OpStep) Tag() byte { return OP_STEP }
func (o *OpReg) Tag() byte  { return OP_REG }
func (o *OpExit) Tag() byte { return OP_EXIT }

func Pack(w io.Writer, op Op) error {
	if _, err := w.Write([]byte{op.Tag()}); err != nil {
		return err
	}
	return struc.PackWithOrder(w, op, order)
}

// Unpack returns io.EOF only when the stream ends cleanly between ops.
func Unpack(r io.Reader) (Op, error) {
	var tag [1]byte
	if _, err := io.ReadFull(r, tag[:]); err != nil {
		return nil, err
	}
	var op Op
	switch tag[0] {
	case OP_STEP:
		op = &OpStep{}
	case OP_REG:
		op = &OpReg{}
	case OP_EXIT:
		op = &OpExit{}
	default:
		return nil, errors.Errorf("unknown op: %d", tag[0])
	}
	if err := struc.UnpackWithOrder(r, op, order); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, errors.Wrapf(err, "unpacking op %d", tag[0])
	}
	return op, nil
}
