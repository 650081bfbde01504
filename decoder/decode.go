package decoder

// Decode resolves the length and structural fields of a single x86/x86-64
// instruction starting at code[0]. It reads at most MaxInstructionLength
// bytes of code and never panics or blocks: anything that makes the
// encoding illegal or the buffer too short to satisfy is recorded as a
// flag on the returned Record rather than surfaced as an error.
//
// Decode keeps no state between calls and touches nothing outside code and
// the Record it builds, so it is safe to call concurrently from many
// goroutines over disjoint slices.
func Decode(code []byte) Record {
	var rec Record
	n := len(code)
	p := 0
	stop := false

	fail := func() {
		rec.Flags |= FlagError | FlagErrorLength
		stop = true
	}
	readByte := func() (uint8, bool) {
		if p >= n || p >= MaxInstructionLength {
			fail()
			return 0, false
		}
		b := code[p]
		p++
		return b, true
	}

	// Phase 1: legacy prefixes. Last occurrence wins within a category
	// (REP/REPNE share one, as do the six segment-override bytes); the
	// loop itself is bounded so a run of nothing but prefix bytes cannot
	// exceed the instruction's own length budget.
prefixLoop:
	for p < MaxInstructionLength && p < n {
		switch code[p] {
		case 0xF0:
			rec.PrefixLock = code[p]
			rec.Flags |= FlagPrefixLock
		case 0xF2:
			rec.PrefixRep = code[p]
			rec.Flags = rec.Flags&^FlagPrefixRep | FlagPrefixRepnz
		case 0xF3:
			rec.PrefixRep = code[p]
			rec.Flags = rec.Flags&^FlagPrefixRepnz | FlagPrefixRep
		case 0x26, 0x2E, 0x36, 0x3E, 0x64, 0x65:
			rec.PrefixSeg = code[p]
			rec.Flags |= FlagPrefixSeg
		case 0x66:
			rec.Prefix66 = code[p]
			rec.Flags |= FlagPrefixOpSize
		case 0x67:
			rec.Prefix67 = code[p]
			rec.Flags |= FlagPrefixAddrSize
		default:
			break prefixLoop
		}
		p++
	}

	// Phase 2: REX. A second consecutive REX byte is illegal; the byte it
	// would have introduced as an opcode is never read.
	if !stop {
		if b, ok := readByte(); ok {
			if b&0xF0 == 0x40 {
				rec.REX = b
				rec.RexW = b&0x08 != 0
				rec.RexR = b&0x04 != 0
				rec.RexX = b&0x02 != 0
				rec.RexB = b&0x01 != 0
				rec.Flags |= FlagPrefixREX
				if p < n && p < MaxInstructionLength && code[p]&0xF0 == 0x40 {
					p++
					rec.Flags |= FlagError | FlagErrorOpcode
					stop = true
				}
			} else {
				p-- // not REX; Phase 3 re-reads it as the opcode byte
			}
		}
	}

	// Phase 3: opcode, with the 0x0F two-byte escape and the A0-A3
	// moffs-MOV special case.
	is2byte := false
	op64 := false
	if !stop {
		if b, ok := readByte(); ok {
			rec.Opcode = b
			switch {
			case b == 0x0F:
				is2byte = true
				// Budget check before the read, not after: an instruction
				// that has already used all 15 bytes on prefixes/REX/opcode
				// stops here rather than reading one byte past the limit.
				if p >= MaxInstructionLength {
					fail()
				} else if b2, ok2 := readByte(); ok2 {
					rec.Opcode2 = b2
				}
			case b >= 0xA0 && b <= 0xA3:
				// moffs forms always move a full address-width value;
				// 0x66 does not shrink them the way it shrinks other
				// IMM_P66 immediates.
				op64 = true
				rec.Flags &^= FlagPrefixOpSize
			}
			if rec.RexW && b&0xF8 == 0xB8 {
				op64 = true
			}
		}
	}

	// Phase 4: attribute lookup.
	var attr Attr
	if !stop {
		if is2byte {
			attr = opcodeTable2[rec.Opcode2]
		} else {
			attr = opcodeTable1[rec.Opcode]
		}
		if attr == AttrError {
			rec.Flags |= FlagError | FlagErrorOpcode
			stop = true
		}
	}

	// Phase 5: ModR/M, group dispatch, FPU escape, SIB, and displacement
	// sizing. Group dispatch happens only once modrm.reg is known, which
	// means ModR/M must be parsed before a GROUP attribute is resolved.
	var modRaw, regRaw, rmRaw uint8
	var dispSize uint8
	if !stop && (attr.Has(AttrModRM) || attr.Has(AttrGroup)) {
		if p >= MaxInstructionLength {
			fail()
		} else if b, ok := readByte(); ok {
			rec.ModRM = b
			rec.Flags |= FlagModRM
			modRaw = b >> 6
			regRaw = (b >> 3) & 0x7
			rmRaw = b & 0x7
			rec.ModRMMod = modRaw
			rec.ModRMReg = regRaw
			if rec.RexR {
				rec.ModRMReg |= 0x8
			}
			rec.ModRMRM = rmRaw
			if rec.RexB {
				rec.ModRMRM |= 0x8
			}

			validityOpcode := rec.Opcode
			if is2byte {
				validityOpcode = rec.Opcode2
			}

			if attr.Has(AttrGroup) {
				ik := uint8(0)
				if is2byte {
					ik = 1
				}
				idx := groupIndex[opcodeKey{ik, validityOpcode}]
				if groupAttr[idx][regRaw] == AttrError {
					// An illegal reg-field slot is flagged, but the rest
					// of the instruction is still consumed so Length stays
					// accurate.
					rec.Flags |= FlagError | FlagErrorOpcode
				}
				// Group membership only disambiguates/validates which
				// reg-field slot this is; the immediate width and
				// ModR/M-ness already on attr came from the opcode
				// table and survive the dispatch unchanged.
				attr &^= AttrGroup
			}

			if !stop && !is2byte && rec.Opcode >= 0xD8 && rec.Opcode <= 0xDF {
				if modRaw == 3 {
					attr = fpuMod3Attr[rec.Opcode-0xD8][regRaw]
				} else {
					attr = fpuMod01Attr[regRaw]
				}
			}

			if !stop {
				if rec.Flags.Has(FlagPrefixLock) && !isLockValid(is2byte, validityOpcode, modRaw) {
					rec.Flags |= FlagError | FlagErrorLock
				}
				if requiresMemoryOperand(is2byte, validityOpcode) && modRaw == 3 {
					rec.Flags |= FlagError | FlagErrorOperand
				}
				if !isOperandValid(is2byte, validityOpcode, modRaw, rec.ModRMReg) {
					rec.Flags |= FlagError | FlagErrorOperand
				}
			}

			if !stop && modRaw != 3 && rmRaw == 4 {
				if p >= MaxInstructionLength {
					fail()
				} else if sib, ok := readByte(); ok {
					rec.SIB = sib
					rec.Flags |= FlagSIB
					sibIndex := (sib >> 3) & 0x7
					sibBase := sib & 0x7
					rec.SIBScale = sib >> 6
					rec.SIBIndex = sibIndex
					if rec.RexX {
						rec.SIBIndex |= 0x8
					}
					rec.SIBBase = sibBase
					if rec.RexB {
						rec.SIBBase |= 0x8
					}
					if sibBase == 5 && modRaw == 0 {
						dispSize = 4 // no base register; disp32 follows
					}
				}
			}

			if !stop {
				switch {
				case modRaw == 1:
					dispSize = 1
				case modRaw == 2:
					dispSize = 4
					if rec.Flags.Has(FlagPrefixAddrSize) {
						dispSize = 2
					}
				case modRaw == 0 && rmRaw == 5 && dispSize == 0:
					dispSize = 4 // RIP-relative (64-bit) / disp32 (32-bit)
					if rec.Flags.Has(FlagPrefixAddrSize) {
						dispSize = 2
					}
				}
			}
		}
	}

	// LOCK on an opcode with no ModR/M at all has no memory destination
	// to lock, so it is never valid (e.g. "F0 90").
	if !stop && rec.Flags.Has(FlagPrefixLock) && !rec.Flags.Has(FlagModRM) {
		rec.Flags |= FlagError | FlagErrorLock
	}

	if !stop && dispSize > 0 {
		if p+int(dispSize) > MaxInstructionLength {
			fail()
		} else {
			var v uint32
			for i := uint8(0); i < dispSize && !stop; i++ {
				if b, ok := readByte(); ok {
					v |= uint32(b) << (8 * i)
				}
			}
			if !stop {
				rec.Displacement = v
				rec.DisplacementSize = dispSize
				switch dispSize {
				case 1:
					rec.Flags |= FlagDisp8
				case 2:
					rec.Flags |= FlagDisp16
				case 4:
					rec.Flags |= FlagDisp32
				}
			}
		}
	}

	// Phase 6: immediate/relative operand. The branches are mutually
	// exclusive, matching the source's if/else-if chain, with one
	// correction: ENTER (0xC8) carries both IMM16 and IMM8 attributes,
	// and both fields are read here, 3 bytes total, instead of the
	// source's else-if chain silently dropping the imm8.
	readImm := func(size int) bool {
		var v uint64
		for i := 0; i < size; i++ {
			b, ok := readByte()
			if !ok {
				return false
			}
			v |= uint64(b) << (8 * i)
		}
		rec.Immediate |= v << (8 * rec.ImmediateSize)
		rec.ImmediateSize += uint8(size)
		switch size {
		case 1:
			rec.Flags |= FlagImm8
		case 2:
			rec.Flags |= FlagImm16
		case 4:
			rec.Flags |= FlagImm32
		case 8:
			rec.Flags |= FlagImm64
		}
		return true
	}

	if !stop {
		switch {
		case attr.Has(AttrImmP66):
			if attr.Has(AttrRel32) {
				size := 4
				if rec.Flags.Has(FlagPrefixOpSize) {
					size = 2
				}
				if readImm(size) {
					rec.Flags |= FlagRelative
				}
			} else {
				size := 4
				switch {
				case op64:
					size = 8
				case rec.Flags.Has(FlagPrefixOpSize):
					size = 2
				}
				readImm(size)
			}
		case attr.Has(AttrImm16):
			if readImm(2) && attr.Has(AttrImm8) {
				readImm(1)
			}
		case attr.Has(AttrImm8):
			readImm(1)
		case attr.Has(AttrRel32):
			if readImm(4) {
				rec.Flags |= FlagRelative
			}
		case attr.Has(AttrRel8):
			if readImm(1) {
				rec.Flags |= FlagRelative
			}
		}
	}

	// Phase 7: finalization. One exit: clamp, copy, return.
	length := p
	if length > MaxInstructionLength {
		rec.Flags |= FlagError | FlagErrorLength
		length = MaxInstructionLength
	}
	rec.Length = uint8(length)
	copy(rec.Bytes[:], code[:length])
	return rec
}
