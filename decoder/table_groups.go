package decoder

// groupIndex is keyed by the opcode that carries AttrGroup and holds that
// group's index into groupAttr. Unlisted entries default to 0 and are never
// consulted, because a 0 Attr value lacking AttrGroup never reaches the
// group-dispatch step.
var groupIndex = map[opcodeKey]uint8{
	{0, 0x80}: 0,  // Group 1
	{0, 0x81}: 0,  // Group 1
	{0, 0x82}: 0,  // Group 1 (invalid in 64-bit mode)
	{0, 0x83}: 0,  // Group 1
	{0, 0x8F}: 1,  // Group 1A
	{0, 0xC0}: 2,  // Group 2
	{0, 0xC1}: 2,  // Group 2
	{0, 0xC6}: 11, // Group 11
	{0, 0xC7}: 11, // Group 11
	{0, 0xD0}: 2,  // Group 2
	{0, 0xD1}: 2,  // Group 2
	{0, 0xD2}: 2,  // Group 2
	{0, 0xD3}: 2,  // Group 2
	{0, 0xF6}: 3,  // Group 3
	{0, 0xF7}: 3,  // Group 3
	{0, 0xFE}: 4,  // Group 4
	{0, 0xFF}: 5,  // Group 5

	{1, 0x00}: 6,  // Group 6
	{1, 0x01}: 7,  // Group 7
	{1, 0x18}: 16, // Group 16 (prefetch)
	{1, 0x71}: 12, // Group 12
	{1, 0x72}: 13, // Group 13
	{1, 0x73}: 14, // Group 14
	{1, 0xAE}: 15, // Group 15
	{1, 0xB9}: 10, // Group 10
	{1, 0xBA}: 8,  // Group 8
	{1, 0xC7}: 9,  // Group 9
}

// opcodeKey distinguishes 1-byte opcodes (is2byte 0) from 0F-escape
// opcodes (is2byte 1) sharing the same byte value in groupIndex.
type opcodeKey struct {
	is2byte uint8
	opcode  uint8
}

// groupAttr is a per-group, per-modrm.reg validity table: AttrError marks a
// reg-field value that is illegal for that group, anything else marks it
// legal (the specific bits recorded here are informational only — decode.go
// keeps the immediate-width/ModR/M bits the opcode table already supplied
// and only consults this table to decide error vs. no-error). Row 17 is a
// reserved slot and row 18 holds Group P; groupIndex maps no opcode to
// either of them.
var groupAttr = [19][8]Attr{
	// Group 1 (0): ADD/OR/ADC/SBB/AND/SUB/XOR/CMP r/m, imm
	{AttrModRM, AttrModRM, AttrModRM, AttrModRM, AttrModRM, AttrModRM, AttrModRM, AttrModRM},

	// Group 1A (1): POP r/m
	{AttrModRM, AttrError, AttrError, AttrError, AttrError, AttrError, AttrError, AttrError},

	// Group 2 (2): ROL/ROR/RCL/RCR/SHL/SHR/SAR
	{AttrModRM, AttrModRM, AttrModRM, AttrModRM, AttrModRM, AttrModRM, AttrError, AttrModRM},

	// Group 3 (3): TEST/?/NOT/NEG/MUL/IMUL/DIV/IDIV
	{AttrModRM | AttrImm8, AttrError, AttrModRM, AttrModRM, AttrModRM, AttrModRM, AttrModRM, AttrModRM},

	// Group 4 (4): INC/DEC r/m8
	{AttrModRM, AttrModRM, AttrError, AttrError, AttrError, AttrError, AttrError, AttrError},

	// Group 5 (5): INC/DEC/CALL/CALLf/JMP/JMPf/PUSH r/m
	{AttrModRM, AttrModRM, AttrModRM, AttrModRM, AttrModRM, AttrModRM, AttrModRM, AttrError},

	// Group 6 (6): SLDT/STR/LLDT/LTR/VERR/VERW/JMPE
	{AttrModRM, AttrModRM, AttrModRM, AttrModRM, AttrModRM, AttrModRM, AttrError, AttrError},

	// Group 7 (7): SGDT/SIDT/LGDT/LIDT/SMSW/LMSW/INVLPG
	{AttrModRM, AttrModRM, AttrModRM, AttrModRM, AttrModRM, AttrModRM, AttrModRM, AttrModRM},

	// Group 8 (8): BT/BTS/BTR/BTC r/m, imm8
	{AttrModRM | AttrImm8, AttrModRM | AttrImm8, AttrModRM | AttrImm8, AttrModRM | AttrImm8,
		AttrModRM | AttrImm8, AttrModRM | AttrImm8, AttrModRM | AttrImm8, AttrModRM | AttrImm8},

	// Group 9 (9): CMPXCHG8B/16B, VMX
	{AttrError, AttrModRM, AttrError, AttrError, AttrError, AttrError, AttrError, AttrError},

	// Group 10 (10): UD1/UD2/POPCNT
	{AttrError, AttrError, AttrError, AttrError, AttrError, AttrError, AttrError, AttrError},

	// Group 11 (11): MOV r/m, imm
	{AttrModRM | AttrImm8, AttrError, AttrError, AttrError, AttrError, AttrError, AttrError, AttrError},

	// Group 12 (12): PSRLW/PSRAW/PSLLW
	{AttrError, AttrError, AttrModRM | AttrImm8, AttrError, AttrModRM | AttrImm8, AttrError, AttrModRM | AttrImm8, AttrError},

	// Group 13 (13): PSRLD/PSRAD/PSLLD
	{AttrError, AttrError, AttrModRM | AttrImm8, AttrError, AttrModRM | AttrImm8, AttrError, AttrModRM | AttrImm8, AttrError},

	// Group 14 (14): PSRLQ/PSRLDQ/PSLLQ/PSLLDQ
	{AttrError, AttrError, AttrModRM | AttrImm8, AttrModRM | AttrImm8, AttrError, AttrError, AttrModRM | AttrImm8, AttrModRM | AttrImm8},

	// Group 15 (15): FXSAVE/FXRSTOR/LDMXCSR/STMXCSR/fences
	{AttrModRM, AttrModRM, AttrModRM, AttrModRM, AttrError, AttrModRM, AttrModRM, AttrModRM},

	// Group 16 (16): prefetch/NOP hints
	{AttrModRM, AttrModRM, AttrModRM, AttrModRM, AttrModRM, AttrModRM, AttrModRM, AttrModRM},

	// Group 17 (17): reserved
	{AttrModRM, AttrModRM, AttrModRM, AttrModRM, AttrModRM, AttrModRM, AttrModRM, AttrModRM},

	// Group P (18): PREFETCH (SSE3)
	{AttrModRM, AttrModRM, AttrModRM, AttrModRM, AttrModRM, AttrModRM, AttrModRM, AttrModRM},
}
