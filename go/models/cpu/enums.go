package cpu

// hook types, numbered as in Unicorn
const (
	// hook each executed instruction, before it runs
	HOOK_CODE = 4

	// hook each successfully executed instruction, after it runs
	HOOK_CODE_AFTER = 16
)
