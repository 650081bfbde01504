package decoder

// lockValid1 lists the 1-byte opcodes that may legally carry a LOCK prefix.
var lockValid1 = map[uint8]bool{
	0x00: true, 0x01: true, 0x02: true, 0x03: true,
	0x08: true, 0x09: true, 0x0A: true, 0x0B: true,
	0x10: true, 0x11: true, 0x12: true, 0x13: true,
	0x18: true, 0x19: true, 0x1A: true, 0x1B: true,
	0x20: true, 0x21: true, 0x22: true, 0x23: true,
	0x28: true, 0x29: true, 0x2A: true, 0x2B: true,
	0x30: true, 0x31: true, 0x32: true, 0x33: true,
	0x80: true, 0x81: true, 0x83: true,
	0x86: true, 0x87: true,
	0xF6: true, 0xF7: true,
	0xFE: true, 0xFF: true,
}

// lockValid2 lists the 0F-escape opcodes that may legally carry a LOCK prefix.
var lockValid2 = map[uint8]bool{
	0xB0: true, 0xB1: true,
	0xC0: true, 0xC1: true,
	0xC7: true,
}

// memoryOnly1 lists 1-byte opcodes whose operand must be memory (mod != 3).
var memoryOnly1 = map[uint8]bool{
	0xA0: true, 0xA1: true, 0xA2: true, 0xA3: true,
	0xA4: true, 0xA5: true, 0xA6: true, 0xA7: true,
	0xAA: true, 0xAB: true, 0xAC: true, 0xAD: true, 0xAE: true, 0xAF: true,
	0xC4: true, 0xC5: true, 0xC6: true, 0xC7: true,
}

// memoryOnly2 lists 0F-escape opcodes whose operand must be memory (mod != 3).
var memoryOnly2 = map[uint8]bool{
	0x00: true, 0x01: true,
	0x12: true, 0x13: true,
	0x16: true, 0x17: true,
	0x2B: true,
	0xB2: true, 0xB4: true, 0xB5: true,
	0xC3: true, 0xC7: true, 0xE7: true,
}

// isLockValid reports whether a LOCK prefix is legal for the given opcode,
// escape state, and decoded modrm.mod. LOCK is only ever legal on an
// instruction whose destination is memory.
func isLockValid(is2byte bool, opcode uint8, mod uint8) bool {
	if mod == 3 {
		return false
	}
	if is2byte {
		return lockValid2[opcode]
	}
	return lockValid1[opcode]
}

// requiresMemoryOperand reports whether the given opcode is only valid with
// a memory operand (mod != 3).
func requiresMemoryOperand(is2byte bool, opcode uint8) bool {
	if is2byte {
		return memoryOnly2[opcode]
	}
	return memoryOnly1[opcode]
}

// isOperandValid checks the handful of opcodes from the original source
// whose legality depends on modrm.reg (and, for the control/debug register
// moves, on modrm.mod == 3).
func isOperandValid(is2byte bool, opcode uint8, mod uint8, reg uint8) bool {
	if !is2byte {
		switch opcode {
		case 0x8C: // MOV r/m, Sreg
			return reg <= 5
		case 0x8E: // MOV Sreg, r/m
			return reg != 1 && reg <= 5
		}
		return true
	}
	switch opcode {
	case 0x20, 0x22: // MOV r32, CRn / MOV CRn, r32
		return mod == 3 && reg <= 4 && reg != 1
	case 0x21, 0x23: // MOV r32, DRn / MOV DRn, r32
		return mod == 3 && reg != 4 && reg != 5
	}
	return true
}
