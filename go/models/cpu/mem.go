package cpu

import (
	"encoding/binary"
	"fmt"

	"github.com/pkg/errors"
)

// MemError reports an access outside the loaded memory image.
type MemError struct {
	Addr uint64
	Size uint64
}

func (m *MemError) Error() string {
	return fmt.Sprintf("memory access out of range: %#x+%#x", m.Addr, m.Size)
}

// Mem is a flat, fixed-size memory image owned by the cpu.
// It is sized once at load time and never grows.
type Mem struct {
	data  []byte
	order binary.ByteOrder
}

// NewMem takes ownership of data.
func NewMem(data []byte, order binary.ByteOrder) *Mem {
	return &Mem{data: data, order: order}
}

func (m *Mem) MemSize() uint64 {
	return uint64(len(m.data))
}

func (m *Mem) check(addr, size uint64) error {
	end := addr + size
	if end < addr || end > uint64(len(m.data)) {
		return &MemError{Addr: addr, Size: size}
	}
	return nil
}

func (m *Mem) MemReadInto(p []byte, addr uint64) error {
	if err := m.check(addr, uint64(len(p))); err != nil {
		return err
	}
	copy(p, m.data[addr:])
	return nil
}

func (m *Mem) MemRead(addr, size uint64) ([]byte, error) {
	if err := m.check(addr, size); err != nil {
		return nil, err
	}
	p := make([]byte, size)
	copy(p, m.data[addr:])
	return p, nil
}

// MemFrom returns the image from addr to its end without copying.
// Callers must not modify the returned slice.
func (m *Mem) MemFrom(addr uint64) ([]byte, error) {
	if addr > uint64(len(m.data)) {
		return nil, &MemError{Addr: addr}
	}
	return m.data[addr:], nil
}

func (m *Mem) ReadUint(addr uint64, size int) (uint64, error) {
	if size > 8 {
		return 0, errors.Errorf("ReadUint size too large: %d > 8", size)
	}
	if err := m.check(addr, uint64(size)); err != nil {
		return 0, err
	}
	return UnpackUint(m.order, size, m.data[addr:])
}
