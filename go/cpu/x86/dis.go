package x86

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/Dcraftbg/vx86/go/models"
)

// Dis renders instructions as text without touching any machine state.
type Dis struct {
	dec *Decoder
}

func NewDis(dec *Decoder) *Dis {
	return &Dis{dec: dec}
}

// Dis decodes instructions from mem until the first one that cannot be decoded.
func (d *Dis) Dis(mem []byte, addr uint64) ([]models.Ins, error) {
	var ret []models.Ins
	for off := 0; off < len(mem); {
		ins, err := d.dec.Decode(mem[off:], addr+uint64(off))
		if err != nil {
			break
		}
		ret = append(ret, ins)
		off += ins.Len()
	}
	return ret, nil
}

// Line renders the instruction at the start of mem, or UnknownText.
func (d *Dis) Line(mem []byte, addr uint64) string {
	ins, err := d.dec.Decode(mem, addr)
	if err != nil {
		return UnknownText
	}
	return ins.String()
}

// Listing writes every instruction in mem. Bytes that do not decode are
// listed one at a time as UnknownText so the pass never stops early.
// Only write errors are returned.
func (d *Dis) Listing(w io.Writer, mem []byte, addr uint64) error {
	for off := 0; off < len(mem); {
		pc := addr + uint64(off)
		ins, err := d.dec.Decode(mem[off:], pc)
		var raw []byte
		var text string
		if err != nil {
			raw, text = mem[off:off+1], UnknownText
		} else {
			raw, text = ins.Bytes(), ins.String()
		}
		if _, err := fmt.Fprintf(w, "%08X: %-16s %s\n", pc, hex.EncodeToString(raw), text); err != nil {
			return err
		}
		off += len(raw)
	}
	return nil
}
