package trace

import (
	"io"
	"strings"

	"github.com/golang/snappy"
	"github.com/lunixbochs/struc"
	"github.com/pkg/errors"
)

var TRACE_MAGIC = "VX86"

const TRACE_VERSION = 1

type TraceHeader struct {
	// MAGIC ("VX86")
	Magic string `struc:"[4]byte"`
	// file format version
	Version uint32
	// Emulated architecture, right-null-padded.
	Arch string `struc:"[16]byte"`
	// size of the memory image that was executed
	MemSize uint32
}

type TraceWriter struct {
	w  io.WriteCloser
	zw *snappy.Writer
}

func NewWriter(w io.WriteCloser, arch string, memSize uint32) (*TraceWriter, error) {
	header := &TraceHeader{
		Magic:   TRACE_MAGIC,
		Version: TRACE_VERSION,
		Arch:    arch,
		MemSize: memSize,
	}
	if err := struc.Pack(w, header); err != nil {
		return nil, errors.Wrap(err, "failed to pack header")
	}
	return &TraceWriter{w: w, zw: snappy.NewBufferedWriter(w)}, nil
}

func (t *TraceWriter) Pack(op Op) error {
	return Pack(t.zw, op)
}

func (t *TraceWriter) Close() error {
	err := t.zw.Close()
	if cerr := t.w.Close(); err == nil {
		err = cerr
	}
	return err
}

type TraceReader struct {
	r      io.Reader
	zr     *snappy.Reader
	Header TraceHeader
}

func NewReader(r io.Reader) (*TraceReader, error) {
	t := &TraceReader{r: r}
	if err := struc.Unpack(r, &t.Header); err != nil {
		return nil, errors.Wrap(err, "failed to unpack header")
	}
	if t.Header.Magic != TRACE_MAGIC {
		return nil, errors.New("invalid trace file magic")
	}
	if t.Header.Version != TRACE_VERSION {
		return nil, errors.Errorf("unsupported trace version %d", t.Header.Version)
	}
	t.Header.Arch = strings.TrimRight(t.Header.Arch, "\x00")
	t.zr = snappy.NewReader(r)
	return t, nil
}

func (t *TraceReader) Next() (Op, error) {
	return Unpack(t.zr)
}
