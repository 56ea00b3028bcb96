package cpu

// This interface abstracts the minimum functionality an interpreter core exposes to the debugger and tracer.
type Cpu interface {
	// memory IO
	MemSize() uint64
	MemRead(addr, size uint64) ([]byte, error)
	MemReadInto(p []byte, addr uint64) error

	// register IO
	RegRead(reg int) (uint64, error)
	RegWrite(reg int, val uint64) error

	// execution
	Start() error
	Stop() error

	// hooks
	HookAdd(htype int, cb interface{}, begin, end uint64) (Hook, error)
	HookDel(hook Hook) error

	// save/restore register state
	ContextSave(reuse interface{}) (interface{}, error)
	ContextRestore(ctx interface{}) error
}
