// Package decoder implements a pure, synchronous x86/x86-64 instruction
// length-disassembler. Decode resolves what an instruction IS and HOW LONG
// it is from a raw byte buffer; it does not synthesize mnemonic text or
// operand names.
package decoder

// MaxInstructionLength is the longest byte sequence Decode will ever
// consume or report in Record.Length.
const MaxInstructionLength = 15

// MinBufferSize is the number of bytes Decode may read from its input.
// Callers whose buffer is shorter than this near the end of a stream must
// zero-pad before calling Decode; Decode does not validate this itself.
const MinBufferSize = MaxInstructionLength

// Attr is the opcode attribute bit-bag: it tells the decoder what follows
// an opcode byte (ModR/M? which immediate width? group dispatch?).
type Attr uint8

const (
	AttrNone  Attr = 0x00
	AttrModRM Attr = 0x01
	AttrImm8  Attr = 0x02
	AttrImm16 Attr = 0x04

	// AttrImmP66 marks a variable-width immediate whose size depends on
	// the 0x66 prefix, REX.W on B8-BF, and the A0-A3 moffs forms (see
	// decode.go's immediate phase).
	AttrImmP66 Attr = 0x10

	AttrRel8  Attr = 0x20
	AttrRel32 Attr = 0x40
	AttrGroup Attr = 0x80

	// AttrError has every bit set; it marks an illegal opcode.
	AttrError Attr = 0xFF
)

// Has reports whether attr carries every bit in mask.
func (a Attr) Has(mask Attr) bool { return a&mask == mask }

// Flags describes what a decoded instruction contains and what, if
// anything, went wrong while decoding it. Multiple bits may co-occur.
type Flags uint32

const (
	FlagModRM Flags = 1 << iota
	FlagSIB
	FlagImm8
	FlagImm16
	FlagImm32
	FlagImm64
	FlagDisp8
	FlagDisp16
	FlagDisp32
	FlagRelative

	FlagError
	FlagErrorOpcode
	FlagErrorLength
	FlagErrorLock
	FlagErrorOperand

	FlagPrefixRepnz
	FlagPrefixRep
	FlagPrefixOpSize
	FlagPrefixAddrSize
	FlagPrefixLock
	FlagPrefixSeg
	FlagPrefixREX
)

// Has reports whether every bit in mask is set in f.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }

// Any reports whether at least one bit of mask is set in f.
func (f Flags) Any(mask Flags) bool { return f&mask != 0 }

// Record is the flat result of decoding one instruction. It has no
// identity and no lifecycle beyond the Decode call; callers own storage.
type Record struct {
	Length uint8
	Bytes  [MaxInstructionLength]byte

	PrefixLock uint8
	PrefixRep  uint8
	PrefixSeg  uint8
	Prefix66   uint8
	Prefix67   uint8

	REX  uint8
	RexW bool
	RexR bool
	RexX bool
	RexB bool

	Opcode  uint8
	Opcode2 uint8

	ModRM    uint8
	ModRMMod uint8
	ModRMReg uint8
	ModRMRM  uint8

	SIB      uint8
	SIBScale uint8
	SIBIndex uint8
	SIBBase  uint8

	// DisplacementSize is 0, 1, 2, or 4. Displacement holds that many
	// low bytes of the raw, not sign-extended, displacement value.
	DisplacementSize uint8
	Displacement     uint32

	// ImmediateSize is 0, 1, 2, 4, or 8. Immediate holds that many low
	// bytes of the raw immediate value. For ENTER (both IMM16 and IMM8
	// attributes set) ImmediateSize reports the full 3 consumed bytes,
	// and Immediate packs both fields low-to-high in the order read: the
	// imm16 occupies bits 0-15, the imm8 bits 16-23.
	ImmediateSize uint8
	Immediate     uint64

	Flags Flags
}
