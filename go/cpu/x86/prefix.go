package x86

import "strings"

// Prefix is the set of legacy prefixes seen before an opcode.
type Prefix uint32

const (
	// Group 1: lock and repeat
	PrefixLOCK Prefix = 1 << iota
	PrefixREPNE
	PrefixREP

	// Group 2: segment overrides
	PrefixCS
	PrefixSS
	PrefixDS
	PrefixES
	PrefixFS
	PrefixGS

	// Group 2: branch hints, encoded with the CS and DS bytes
	PrefixBranchNotTaken
	PrefixBranchTaken

	// Group 3
	PrefixOpSize

	// Group 4
	PrefixAddrSize
)

var prefixBytes = map[byte]Prefix{
	0xF0: PrefixLOCK,
	0xF2: PrefixREPNE,
	0xF3: PrefixREP,
	0x2E: PrefixCS | PrefixBranchNotTaken,
	0x36: PrefixSS,
	0x3E: PrefixDS | PrefixBranchTaken,
	0x26: PrefixES,
	0x64: PrefixFS,
	0x65: PrefixGS,
	0x66: PrefixOpSize,
	0x67: PrefixAddrSize,
}

var prefixNames = []struct {
	bit  Prefix
	name string
}{
	{PrefixLOCK, "lock"}, {PrefixREPNE, "repne"}, {PrefixREP, "rep"},
	{PrefixCS, "cs"}, {PrefixSS, "ss"}, {PrefixDS, "ds"},
	{PrefixES, "es"}, {PrefixFS, "fs"}, {PrefixGS, "gs"},
	{PrefixBranchNotTaken, "hnt"}, {PrefixBranchTaken, "ht"},
	{PrefixOpSize, "o16"}, {PrefixAddrSize, "a16"},
}

func (p Prefix) Has(bits Prefix) bool {
	return p&bits == bits
}

func (p Prefix) String() string {
	var out []string
	for _, n := range prefixNames {
		if p&n.bit != 0 {
			out = append(out, n.name)
		}
	}
	return strings.Join(out, " ")
}

// IsPrefix reports whether b is a legacy prefix byte.
func IsPrefix(b byte) bool {
	_, ok := prefixBytes[b]
	return ok
}

// ScanPrefixes consumes prefix bytes until a non-prefix byte, which is left
// for the opcode stage. It only fails if the stream ends while scanning.
func ScanPrefixes(c *Cursor) (Prefix, bool) {
	var set Prefix
	for {
		b, ok := c.Peek()
		if !ok {
			return set, false
		}
		bit, isPrefix := prefixBytes[b]
		if !isPrefix {
			return set, true
		}
		set |= bit
		c.Skip(1)
	}
}
