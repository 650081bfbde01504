package decoder

// opcodeTable2 is the secondary 0x0F-escape opcode attribute table.
var opcodeTable2 = [256]Attr{
	0x00: AttrModRM | AttrGroup, // Group 6: SLDT/STR/LLDT/LTR/VERR/VERW
	0x01: AttrModRM | AttrGroup, // Group 7: SGDT/SIDT/LGDT/LIDT/SMSW/LMSW/INVLPG/SWAPGS
	0x02: AttrModRM,             // LAR
	0x03: AttrModRM,             // LSL
	0x04: AttrError,
	0x05: AttrNone, // SYSCALL
	0x06: AttrNone, // CLTS
	0x07: AttrNone, // SYSRET
	0x08: AttrNone, // INVD
	0x09: AttrNone, // WBINVD
	0x0A: AttrError,
	0x0B: AttrNone, // UD2
	0x0C: AttrError,
	0x0D: AttrModRM, // Group P: prefetch
	0x0E: AttrNone,  // FEMMS
	0x0F: AttrModRM, // 3DNow! escape

	0x10: AttrModRM, 0x11: AttrModRM, 0x12: AttrModRM, 0x13: AttrModRM,
	0x14: AttrModRM, 0x15: AttrModRM, 0x16: AttrModRM, 0x17: AttrModRM,
	0x18: AttrModRM | AttrGroup, // Group 16: prefetch/nop/reserved
	0x19: AttrModRM, 0x1A: AttrModRM, 0x1B: AttrModRM, 0x1C: AttrModRM,
	0x1D: AttrModRM, 0x1E: AttrModRM, 0x1F: AttrModRM, // multi-byte NOP

	0x20: AttrModRM, // MOV r/m32, CR0-CR7
	0x21: AttrModRM, // MOV r/m32, DR0-DR7
	0x22: AttrModRM, // MOV CR0-CR7, r/m32
	0x23: AttrModRM, // MOV DR0-DR7, r/m32
	0x24: AttrError, 0x25: AttrError, 0x26: AttrError, 0x27: AttrError,
	0x28: AttrModRM, 0x29: AttrModRM, 0x2A: AttrModRM, 0x2B: AttrModRM,
	0x2C: AttrModRM, 0x2D: AttrModRM, 0x2E: AttrModRM, 0x2F: AttrModRM,

	0x30: AttrNone, // WRMSR
	0x31: AttrNone, // RDTSC
	0x32: AttrNone, // RDMSR
	0x33: AttrNone, // RDPMC
	0x34: AttrNone, // SYSENTER
	0x35: AttrNone, // SYSEXIT
	0x36: AttrError,
	0x37: AttrNone,  // GETSEC
	0x38: AttrModRM, // SSE3 escape
	0x39: AttrError,
	0x3A: AttrModRM, // SSE3 escape
	0x3B: AttrError, 0x3C: AttrError, 0x3D: AttrError, 0x3E: AttrError, 0x3F: AttrError,

	// 0x40-0x4F: CMOVcc.
	0x40: AttrModRM, 0x41: AttrModRM, 0x42: AttrModRM, 0x43: AttrModRM,
	0x44: AttrModRM, 0x45: AttrModRM, 0x46: AttrModRM, 0x47: AttrModRM,
	0x48: AttrModRM, 0x49: AttrModRM, 0x4A: AttrModRM, 0x4B: AttrModRM,
	0x4C: AttrModRM, 0x4D: AttrModRM, 0x4E: AttrModRM, 0x4F: AttrModRM,

	0x50: AttrModRM, 0x51: AttrModRM, 0x52: AttrModRM, 0x53: AttrModRM,
	0x54: AttrModRM, 0x55: AttrModRM, 0x56: AttrModRM, 0x57: AttrModRM,
	0x58: AttrModRM, 0x59: AttrModRM, 0x5A: AttrModRM, 0x5B: AttrModRM,
	0x5C: AttrModRM, 0x5D: AttrModRM, 0x5E: AttrModRM, 0x5F: AttrModRM,

	0x60: AttrModRM, 0x61: AttrModRM, 0x62: AttrModRM, 0x63: AttrModRM,
	0x64: AttrModRM, 0x65: AttrModRM, 0x66: AttrModRM, 0x67: AttrModRM,
	0x68: AttrModRM, 0x69: AttrModRM, 0x6A: AttrModRM, 0x6B: AttrModRM,
	0x6C: AttrModRM, 0x6D: AttrModRM, 0x6E: AttrModRM, 0x6F: AttrModRM,

	0x70: AttrModRM | AttrImm8,             // PSHUFW/PSHUFD/PSHUFHW/PSHUFLW
	0x71: AttrModRM | AttrGroup | AttrImm8, // Group 12
	0x72: AttrModRM | AttrGroup | AttrImm8, // Group 13
	0x73: AttrModRM | AttrGroup | AttrImm8, // Group 14
	0x74: AttrModRM, 0x75: AttrModRM, 0x76: AttrModRM,
	0x77: AttrNone, // EMMS
	0x78: AttrModRM, 0x79: AttrModRM,
	0x7A: AttrError, 0x7B: AttrError,
	0x7C: AttrModRM, 0x7D: AttrModRM, 0x7E: AttrModRM, 0x7F: AttrModRM,

	0x80: AttrRel32, 0x81: AttrRel32, 0x82: AttrRel32, 0x83: AttrRel32,
	0x84: AttrRel32, 0x85: AttrRel32, 0x86: AttrRel32, 0x87: AttrRel32,
	0x88: AttrRel32, 0x89: AttrRel32, 0x8A: AttrRel32, 0x8B: AttrRel32,
	0x8C: AttrRel32, 0x8D: AttrRel32, 0x8E: AttrRel32, 0x8F: AttrRel32, // Jcc rel16/32

	// 0x90-0x9F: SETcc r/m8.
	0x90: AttrModRM, 0x91: AttrModRM, 0x92: AttrModRM, 0x93: AttrModRM,
	0x94: AttrModRM, 0x95: AttrModRM, 0x96: AttrModRM, 0x97: AttrModRM,
	0x98: AttrModRM, 0x99: AttrModRM, 0x9A: AttrModRM, 0x9B: AttrModRM,
	0x9C: AttrModRM, 0x9D: AttrModRM, 0x9E: AttrModRM, 0x9F: AttrModRM,

	0xA0: AttrNone,             // PUSH FS
	0xA1: AttrNone,             // POP FS
	0xA2: AttrNone,             // CPUID
	0xA3: AttrModRM,            // BT
	0xA4: AttrModRM | AttrImm8, // SHLD ..., imm8
	0xA5: AttrModRM,            // SHLD ..., CL
	0xA6: AttrError, 0xA7: AttrError,
	0xA8: AttrNone,             // PUSH GS
	0xA9: AttrNone,             // POP GS
	0xAA: AttrNone,             // RSM
	0xAB: AttrModRM,            // BTS
	0xAC: AttrModRM | AttrImm8, // SHRD ..., imm8
	0xAD: AttrModRM,            // SHRD ..., CL
	0xAE: AttrModRM | AttrGroup, // Group 15
	0xAF: AttrModRM,            // IMUL

	0xB0: AttrModRM, // CMPXCHG r/m8, r8
	0xB1: AttrModRM, // CMPXCHG r/m16/32/64, r16/32/64
	0xB2: AttrModRM, // LSS
	0xB3: AttrModRM, // BTR
	0xB4: AttrModRM, // LFS
	0xB5: AttrModRM, // LGS
	0xB6: AttrModRM, // MOVZX r, r/m8
	0xB7: AttrModRM, // MOVZX r, r/m16
	0xB8: AttrError, // JMPE / POPCNT (prefixed variant not modeled)
	0xB9: AttrModRM | AttrGroup, // Group 10: UD1/UD2/POPCNT
	0xBA: AttrModRM | AttrGroup | AttrImm8, // Group 8
	0xBB: AttrModRM, // BTC
	0xBC: AttrModRM, // BSF
	0xBD: AttrModRM, // BSR
	0xBE: AttrModRM, // MOVSX r, r/m8
	0xBF: AttrModRM, // MOVSX r, r/m16

	0xC0: AttrModRM,             // XADD r/m8, r8
	0xC1: AttrModRM,             // XADD r/m16/32/64, r16/32/64
	0xC2: AttrModRM | AttrImm8,  // CMPPS/CMPSS/CMPPD/CMPSD
	0xC3: AttrModRM,             // MOVNTI
	0xC4: AttrModRM | AttrImm8,  // PINSRW
	0xC5: AttrModRM | AttrImm8,  // PEXTRW
	0xC6: AttrModRM | AttrImm8,  // SHUFPS/SHUFPD
	0xC7: AttrModRM | AttrGroup, // Group 9: CMPXCHG8B/16B, VMX
	0xC8: AttrNone, 0xC9: AttrNone, 0xCA: AttrNone, 0xCB: AttrNone,
	0xCC: AttrNone, 0xCD: AttrNone, 0xCE: AttrNone, 0xCF: AttrNone, // BSWAP

	0xD0: AttrModRM, 0xD1: AttrModRM, 0xD2: AttrModRM, 0xD3: AttrModRM,
	0xD4: AttrModRM, 0xD5: AttrModRM, 0xD6: AttrModRM, 0xD7: AttrModRM,
	0xD8: AttrModRM, 0xD9: AttrModRM, 0xDA: AttrModRM, 0xDB: AttrModRM,
	0xDC: AttrModRM, 0xDD: AttrModRM, 0xDE: AttrModRM, 0xDF: AttrModRM,

	0xE0: AttrModRM, 0xE1: AttrModRM, 0xE2: AttrModRM, 0xE3: AttrModRM,
	0xE4: AttrModRM, 0xE5: AttrModRM, 0xE6: AttrModRM, 0xE7: AttrModRM,
	0xE8: AttrModRM, 0xE9: AttrModRM, 0xEA: AttrModRM, 0xEB: AttrModRM,
	0xEC: AttrModRM, 0xED: AttrModRM, 0xEE: AttrModRM, 0xEF: AttrModRM,

	0xF0: AttrModRM, 0xF1: AttrModRM, 0xF2: AttrModRM, 0xF3: AttrModRM,
	0xF4: AttrModRM, 0xF5: AttrModRM, 0xF6: AttrModRM, 0xF7: AttrModRM,
	0xF8: AttrModRM, 0xF9: AttrModRM, 0xFA: AttrModRM, 0xFB: AttrModRM,
	0xFC: AttrModRM, 0xFD: AttrModRM, 0xFE: AttrModRM,
	0xFF: AttrError,
}
