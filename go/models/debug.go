package models

import (
	"encoding/hex"
	"fmt"
	"strings"
)

type Reg struct {
	Enum int
	Name string
}

type RegVal struct {
	Reg
	Val uint64
}

// HexDump formats mem as lines of 16 bytes, each prefixed with its address
// and followed by a printable-ASCII column.
func HexDump(base uint64, mem []byte, bits int) []string {
	var clean = func(p []byte) string {
		o := make([]byte, len(p))
		for i, c := range p {
			if c >= 0x20 && c <= 0x7e {
				o[i] = c
			} else {
				o[i] = '.'
			}
		}
		return string(o)
	}
	const lineSize = 16
	hexFmt := fmt.Sprintf("%%0%dX:", bits/4)
	var out []string
	for i := 0; i < len(mem); i += lineSize {
		end := i + lineSize
		if end > len(mem) {
			end = len(mem)
		}
		line := mem[i:end]
		blocks := make([]string, lineSize)
		for j := range blocks {
			if j < len(line) {
				blocks[j] = hex.EncodeToString(line[j : j+1])
			} else {
				blocks[j] = "  "
			}
		}
		out = append(out, fmt.Sprintf(hexFmt+" %s [%s]", base+uint64(i), strings.Join(blocks, " "), clean(line)))
	}
	return out
}
