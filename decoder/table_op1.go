package decoder

// opcodeTable1 is the primary 1-byte opcode attribute table. Each entry
// describes what follows that opcode byte: a ModR/M byte, an immediate of
// some width, a relative offset, or further refinement through a group.
var opcodeTable1 = [256]Attr{
	0x00: AttrModRM, // ADD r/m8, r8
	0x01: AttrModRM, // ADD r/m16/32, r16/32
	0x02: AttrModRM, // ADD r8, r/m8
	0x03: AttrModRM, // ADD r16/32, r/m16/32
	0x04: AttrImm8,  // ADD AL, imm8
	0x05: AttrImmP66,
	0x06: AttrNone, // PUSH ES (invalid in 64-bit mode)
	0x07: AttrNone, // POP ES (invalid in 64-bit mode)
	0x08: AttrModRM,
	0x09: AttrModRM,
	0x0A: AttrModRM,
	0x0B: AttrModRM,
	0x0C: AttrImm8,
	0x0D: AttrImmP66,
	0x0E: AttrNone, // PUSH CS (invalid in 64-bit mode)
	0x0F: AttrNone, // two-byte escape

	0x10: AttrModRM,
	0x11: AttrModRM,
	0x12: AttrModRM,
	0x13: AttrModRM,
	0x14: AttrImm8,
	0x15: AttrImmP66,
	0x16: AttrNone, // PUSH SS (invalid in 64-bit mode)
	0x17: AttrNone, // POP SS (invalid in 64-bit mode)
	0x18: AttrModRM,
	0x19: AttrModRM,
	0x1A: AttrModRM,
	0x1B: AttrModRM,
	0x1C: AttrImm8,
	0x1D: AttrImmP66,
	0x1E: AttrNone, // PUSH DS (invalid in 64-bit mode)
	0x1F: AttrNone, // POP DS (invalid in 64-bit mode)

	0x20: AttrModRM,
	0x21: AttrModRM,
	0x22: AttrModRM,
	0x23: AttrModRM,
	0x24: AttrImm8,
	0x25: AttrImmP66,
	0x26: AttrNone, // ES segment override prefix
	0x27: AttrNone, // DAA (invalid in 64-bit mode)
	0x28: AttrModRM,
	0x29: AttrModRM,
	0x2A: AttrModRM,
	0x2B: AttrModRM,
	0x2C: AttrImm8,
	0x2D: AttrImmP66,
	0x2E: AttrNone, // CS segment override prefix
	0x2F: AttrNone, // DAS (invalid in 64-bit mode)

	0x30: AttrModRM,
	0x31: AttrModRM,
	0x32: AttrModRM,
	0x33: AttrModRM,
	0x34: AttrImm8,
	0x35: AttrImmP66,
	0x36: AttrNone, // SS segment override prefix
	0x37: AttrNone, // AAA (invalid in 64-bit mode)
	0x38: AttrModRM,
	0x39: AttrModRM,
	0x3A: AttrModRM,
	0x3B: AttrModRM,
	0x3C: AttrImm8,
	0x3D: AttrImmP66,
	0x3E: AttrNone, // DS segment override prefix
	0x3F: AttrNone, // AAS (invalid in 64-bit mode)

	// 0x40-0x4F: REX prefixes in 64-bit mode.
	0x40: AttrNone, 0x41: AttrNone, 0x42: AttrNone, 0x43: AttrNone,
	0x44: AttrNone, 0x45: AttrNone, 0x46: AttrNone, 0x47: AttrNone,
	0x48: AttrNone, 0x49: AttrNone, 0x4A: AttrNone, 0x4B: AttrNone,
	0x4C: AttrNone, 0x4D: AttrNone, 0x4E: AttrNone, 0x4F: AttrNone,

	// 0x50-0x5F: PUSH/POP register.
	0x50: AttrNone, 0x51: AttrNone, 0x52: AttrNone, 0x53: AttrNone,
	0x54: AttrNone, 0x55: AttrNone, 0x56: AttrNone, 0x57: AttrNone,
	0x58: AttrNone, 0x59: AttrNone, 0x5A: AttrNone, 0x5B: AttrNone,
	0x5C: AttrNone, 0x5D: AttrNone, 0x5E: AttrNone, 0x5F: AttrNone,

	0x60: AttrNone,                 // PUSHA/PUSHAD (invalid in 64-bit mode)
	0x61: AttrNone,                 // POPA/POPAD (invalid in 64-bit mode)
	0x62: AttrModRM,                // BOUND (invalid in 64-bit mode)
	0x63: AttrModRM,                // MOVSXD (64-bit) / ARPL (32-bit)
	0x64: AttrNone,                 // FS segment override prefix
	0x65: AttrNone,                 // GS segment override prefix
	0x66: AttrNone,                 // operand-size override prefix
	0x67: AttrNone,                 // address-size override prefix
	0x68: AttrImmP66,               // PUSH imm16/32
	0x69: AttrModRM | AttrImmP66,   // IMUL r, r/m, imm16/32
	0x6A: AttrImm8,                 // PUSH imm8
	0x6B: AttrModRM | AttrImm8,     // IMUL r, r/m, imm8
	0x6C: AttrNone,                 // INSB
	0x6D: AttrNone,                 // INSW/INSD
	0x6E: AttrNone,                 // OUTSB
	0x6F: AttrNone,                 // OUTSW/OUTSD

	// 0x70-0x7F: conditional jumps, rel8.
	0x70: AttrRel8, 0x71: AttrRel8, 0x72: AttrRel8, 0x73: AttrRel8,
	0x74: AttrRel8, 0x75: AttrRel8, 0x76: AttrRel8, 0x77: AttrRel8,
	0x78: AttrRel8, 0x79: AttrRel8, 0x7A: AttrRel8, 0x7B: AttrRel8,
	0x7C: AttrRel8, 0x7D: AttrRel8, 0x7E: AttrRel8, 0x7F: AttrRel8,

	0x80: AttrModRM | AttrGroup | AttrImm8,  // Group 1, r/m8, imm8
	0x81: AttrModRM | AttrGroup | AttrImmP66, // Group 1, r/m16/32, imm16/32
	0x82: AttrError,                         // invalid in 64-bit mode
	0x83: AttrModRM | AttrGroup | AttrImm8,  // Group 1, r/m16/32, imm8
	0x84: AttrModRM,                         // TEST r/m8, r8
	0x85: AttrModRM,                         // TEST r/m16/32, r16/32
	0x86: AttrModRM,                         // XCHG r/m8, r8
	0x87: AttrModRM,                         // XCHG r/m16/32, r16/32
	0x88: AttrModRM,                         // MOV r/m8, r8
	0x89: AttrModRM,                         // MOV r/m16/32, r16/32
	0x8A: AttrModRM,                         // MOV r8, r/m8
	0x8B: AttrModRM,                         // MOV r16/32, r/m16/32
	0x8C: AttrModRM,                         // MOV r/m16, Sreg
	0x8D: AttrModRM,                         // LEA r16/32, m
	0x8E: AttrModRM,                         // MOV Sreg, r/m16
	0x8F: AttrModRM | AttrGroup,             // Group 1A: POP r/m

	// 0x90-0x9F.
	0x90: AttrNone, 0x91: AttrNone, 0x92: AttrNone, 0x93: AttrNone,
	0x94: AttrNone, 0x95: AttrNone, 0x96: AttrNone, 0x97: AttrNone,
	0x98: AttrNone, // CBW/CWDE/CDQE
	0x99: AttrNone, // CWD/CDQ/CQO
	0x9A: AttrNone, // CALL far (invalid in 64-bit mode)
	0x9B: AttrNone, // FWAIT/WAIT
	0x9C: AttrNone, // PUSHF/PUSHFD/PUSHFQ
	0x9D: AttrNone, // POPF/POPFD/POPFQ
	0x9E: AttrNone, // SAHF
	0x9F: AttrNone, // LAHF

	0xA0: AttrImmP66, // MOV AL, moffs8
	0xA1: AttrImmP66, // MOV AX/EAX/RAX, moffs
	0xA2: AttrImmP66, // MOV moffs8, AL
	0xA3: AttrImmP66, // MOV moffs, AX/EAX/RAX
	0xA4: AttrNone,  // MOVSB
	0xA5: AttrNone,  // MOVSW/MOVSD/MOVSQ
	0xA6: AttrNone,  // CMPSB
	0xA7: AttrNone,  // CMPSW/CMPSD/CMPSQ
	0xA8: AttrImm8,  // TEST AL, imm8
	0xA9: AttrImmP66, // TEST AX/EAX/RAX, imm16/32
	0xAA: AttrNone,  // STOSB
	0xAB: AttrNone,  // STOSW/STOSD/STOSQ
	0xAC: AttrNone,  // LODSB
	0xAD: AttrNone,  // LODSW/LODSD/LODSQ
	0xAE: AttrNone,  // SCASB
	0xAF: AttrNone,  // SCASW/SCASD/SCASQ

	// 0xB0-0xB7: MOV r8, imm8.
	0xB0: AttrImm8, 0xB1: AttrImm8, 0xB2: AttrImm8, 0xB3: AttrImm8,
	0xB4: AttrImm8, 0xB5: AttrImm8, 0xB6: AttrImm8, 0xB7: AttrImm8,
	// 0xB8-0xBF: MOV r16/32/64, imm16/32/64.
	0xB8: AttrImmP66, 0xB9: AttrImmP66, 0xBA: AttrImmP66, 0xBB: AttrImmP66,
	0xBC: AttrImmP66, 0xBD: AttrImmP66, 0xBE: AttrImmP66, 0xBF: AttrImmP66,

	0xC0: AttrModRM | AttrGroup | AttrImm8, // Group 2, r/m8, imm8
	0xC1: AttrModRM | AttrGroup | AttrImm8, // Group 2, r/m16/32, imm8
	0xC2: AttrImm16,                        // RET imm16
	0xC3: AttrNone,                         // RET
	0xC4: AttrModRM,                        // LES / VEX 3-byte prefix
	0xC5: AttrModRM,                        // LDS / VEX 2-byte prefix
	0xC6: AttrModRM | AttrGroup | AttrImm8, // Group 11: MOV r/m8, imm8
	0xC7: AttrModRM | AttrGroup | AttrImmP66, // Group 11: MOV r/m16/32/64, imm16/32
	0xC8: AttrImm16 | AttrImm8,              // ENTER imm16, imm8
	0xC9: AttrNone,                          // LEAVE
	0xCA: AttrImm16,                         // RET FAR imm16
	0xCB: AttrNone,                          // RET FAR
	0xCC: AttrNone,                          // INT 3
	0xCD: AttrImm8,                          // INT imm8
	0xCE: AttrNone,                          // INTO (invalid in 64-bit mode)
	0xCF: AttrNone,                          // IRET/IRETD/IRETQ

	0xD0: AttrModRM | AttrGroup, // Group 2, r/m8, 1
	0xD1: AttrModRM | AttrGroup, // Group 2, r/m16/32, 1
	0xD2: AttrModRM | AttrGroup, // Group 2, r/m8, CL
	0xD3: AttrModRM | AttrGroup, // Group 2, r/m16/32, CL
	0xD4: AttrImm8,              // AAM imm8 (invalid in 64-bit mode)
	0xD5: AttrImm8,              // AAD imm8 (invalid in 64-bit mode)
	0xD6: AttrNone,              // reserved
	0xD7: AttrNone,              // XLAT/XLATB
	// 0xD8-0xDF: FPU escape; this entry makes the decoder read ModR/M, and
	// the attributes after it are then taken from the FPU tables (see
	// fpuMod01Attr/fpuMod3Attr).
	0xD8: AttrModRM, 0xD9: AttrModRM, 0xDA: AttrModRM, 0xDB: AttrModRM,
	0xDC: AttrModRM, 0xDD: AttrModRM, 0xDE: AttrModRM, 0xDF: AttrModRM,

	0xE0: AttrRel8,  // LOOPNE/LOOPNZ rel8
	0xE1: AttrRel8,  // LOOPE/LOOPZ rel8
	0xE2: AttrRel8,  // LOOP rel8
	0xE3: AttrRel8,  // JCXZ/JECXZ/JRCXZ rel8
	0xE4: AttrImm8,  // IN AL, imm8
	0xE5: AttrImm8,  // IN AX/EAX, imm8
	0xE6: AttrImm8,  // OUT imm8, AL
	0xE7: AttrImm8,  // OUT imm8, AX/EAX
	0xE8: AttrRel32, // CALL rel16/32
	0xE9: AttrRel32, // JMP rel16/32
	0xEA: AttrNone,  // JMP far (invalid in 64-bit mode)
	0xEB: AttrRel8,  // JMP rel8
	0xEC: AttrNone,  // IN AL, DX
	0xED: AttrNone,  // IN AX/EAX, DX
	0xEE: AttrNone,  // OUT DX, AL
	0xEF: AttrNone,  // OUT DX, AX/EAX

	0xF0: AttrNone,              // LOCK prefix
	0xF1: AttrNone,              // reserved (#UD)
	0xF2: AttrNone,              // REPNE/REPNZ prefix
	0xF3: AttrNone,              // REP/REPE/REPZ prefix
	0xF4: AttrNone,              // HLT
	0xF5: AttrNone,              // CMC
	0xF6: AttrModRM | AttrGroup, // Group 3, r/m8
	0xF7: AttrModRM | AttrGroup, // Group 3, r/m16/32/64
	0xF8: AttrNone,              // CLC
	0xF9: AttrNone,              // STC
	0xFA: AttrNone,              // CLI
	0xFB: AttrNone,              // STI
	0xFC: AttrNone,              // CLD
	0xFD: AttrNone,              // STD
	0xFE: AttrModRM | AttrGroup, // Group 4: INC/DEC r/m8
	0xFF: AttrModRM | AttrGroup, // Group 5
}
