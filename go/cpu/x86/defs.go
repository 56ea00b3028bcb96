package x86

// register enums, in ModRM/opcode encoding order
const (
	EAX = iota
	ECX
	EDX
	EBX
	ESP
	EBP
	ESI
	EDI
	IP

	regCount
)

var Reg32Names = [8]string{"eax", "ecx", "edx", "ebx", "esp", "ebp", "esi", "edi"}
var Reg16Names = [8]string{"ax", "cx", "dx", "bx", "sp", "bp", "si", "di"}

const (
	OP_ADD_RM16_R16 = 0x01
	OP_ESCAPE       = 0x0F
	OP_CMP_AX_IMM16 = 0x3D
	OP_MOV_R16_IMM  = 0xB8 // +r
)

// UnknownText is what the disassembler prints for bytes it cannot decode.
const UnknownText = "???"
