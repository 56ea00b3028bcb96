package models

// Ins is one decoded instruction as seen by consumers that do not care which
// architecture produced it (listings, traces, the debugger prompt).
type Ins interface {
	Addr() uint64
	Bytes() []byte
	Mnemonic() string
	OpStr() string
}

// Dis decodes instructions from a memory snapshot starting at addr.
type Dis interface {
	Dis(mem []byte, addr uint64) ([]Ins, error)
}

// InsString renders an instruction the way listings print it.
func InsString(ins Ins) string {
	if op := ins.OpStr(); op != "" {
		return ins.Mnemonic() + " " + op
	}
	return ins.Mnemonic()
}
