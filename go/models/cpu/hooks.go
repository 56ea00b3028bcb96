package cpu

import (
	"github.com/pkg/errors"
)

type Hook interface{}

// CodeCb is called with the address and encoded length of an instruction.
type CodeCb func(Cpu, uint64, uint32)

type hookInfo struct {
	htype int
	start uint64
	end   uint64
}

func (h *hookInfo) Type() int {
	return h.htype
}

// start > end hooks every address
func (h *hookInfo) Contains(addr uint64) bool {
	return h.start > h.end || addr >= h.start && addr <= h.end
}

type hinfo interface {
	Type() int
}

type codeHook struct {
	hookInfo
	cb CodeCb
}

type Hooks struct {
	cpu Cpu

	code  []*codeHook
	after []*codeHook
}

func NewHooks(cpu Cpu) *Hooks {
	return &Hooks{cpu: cpu}
}

func (h *Hooks) HookAdd(htype int, cb interface{}, start uint64, end uint64) (Hook, error) {
	info := hookInfo{htype, start, end}
	var fn CodeCb
	switch v := cb.(type) {
	case CodeCb:
		fn = v
	case func(Cpu, uint64, uint32):
		fn = v
	default:
		return nil, errors.Errorf("bad callback type for hook %d: %T", htype, cb)
	}
	hh := &codeHook{info, fn}
	switch htype {
	case HOOK_CODE:
		h.code = append(h.code, hh)
	case HOOK_CODE_AFTER:
		h.after = append(h.after, hh)
	default:
		return nil, errors.Errorf("unknown hook type: %d", htype)
	}
	return hh, nil
}

func (h *Hooks) HookDel(hh Hook) error {
	info, ok := hh.(hinfo)
	if !ok {
		return errors.Errorf("not a hook: %T", hh)
	}
	del := func(list []*codeHook) []*codeHook {
		var tmp []*codeHook
		for _, v := range list {
			if v != hh {
				tmp = append(tmp, v)
			}
		}
		return tmp
	}
	switch info.Type() {
	case HOOK_CODE:
		h.code = del(h.code)
	case HOOK_CODE_AFTER:
		h.after = del(h.after)
	}
	return nil
}

func (h *Hooks) OnCode(addr uint64, size uint32) {
	for _, v := range h.code {
		if v.Contains(addr) {
			v.cb(h.cpu, addr, size)
		}
	}
}

func (h *Hooks) OnCodeAfter(addr uint64, size uint32) {
	for _, v := range h.after {
		if v.Contains(addr) {
			v.cb(h.cpu, addr, size)
		}
	}
}
