package decoder

import (
	"bytes"
	"testing"
)

func TestDecodeScenarios(t *testing.T) {
	cases := []struct {
		name string
		code []byte
		want Record
	}{
		{
			name: "NOP",
			code: []byte{0x90},
			want: Record{Length: 1, Opcode: 0x90},
		},
		{
			name: "MOV RAX, imm64",
			code: []byte{0x48, 0xB8, 0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF},
			want: Record{
				Length: 10, REX: 0x48, RexW: true, Opcode: 0xB8,
				ImmediateSize: 8, Immediate: 0xEFCDAB8967452301,
				Flags: FlagPrefixREX | FlagImm64,
			},
		},
		{
			name: "LOCK ADD r/m32, imm8 with SIB and disp32",
			code: []byte{0xF0, 0x83, 0x84, 0x01, 0x10, 0x20, 0x30, 0x40, 0x05},
			want: Record{
				Length: 9, PrefixLock: 0xF0, Opcode: 0x83,
				ModRM: 0x84, ModRMMod: 2, ModRMReg: 0, ModRMRM: 4,
				SIB: 0x01, SIBScale: 0, SIBIndex: 0, SIBBase: 1,
				DisplacementSize: 4, Displacement: 0x40302010,
				ImmediateSize: 1, Immediate: 0x05,
				Flags: FlagPrefixLock | FlagModRM | FlagSIB | FlagDisp32 | FlagImm8,
			},
		},
		{
			name: "LOCK on an opcode with no memory destination",
			code: []byte{0xF0, 0x90},
			want: Record{
				Length: 2, PrefixLock: 0xF0, Opcode: 0x90,
				Flags: FlagPrefixLock | FlagError | FlagErrorLock,
			},
		},
		{
			name: "MOVDQA xmm0, [rip+0x100]",
			code: []byte{0x66, 0x0F, 0x6F, 0x05, 0x00, 0x01, 0x00, 0x00},
			want: Record{
				Length: 8, Prefix66: 0x66, Opcode: 0x0F, Opcode2: 0x6F,
				ModRM: 0x05, ModRMMod: 0, ModRMReg: 0, ModRMRM: 5,
				DisplacementSize: 4, Displacement: 0x00000100,
				Flags: FlagPrefixOpSize | FlagModRM | FlagDisp32,
			},
		},
		{
			name: "JMP rel32",
			code: []byte{0xE9, 0x00, 0x01, 0x00, 0x00},
			want: Record{
				Length: 5, Opcode: 0xE9,
				ImmediateSize: 4, Immediate: 0x00000100,
				Flags: FlagRelative | FlagImm32,
			},
		},
		{
			name: "double REX is illegal",
			code: []byte{0x40, 0x40, 0x01},
			want: Record{
				Length: 2, REX: 0x40,
				Flags: FlagPrefixREX | FlagError | FlagErrorOpcode,
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Decode(c.code)
			if got.Length != c.want.Length {
				t.Errorf("Length = %d, want %d", got.Length, c.want.Length)
			}
			if got.Flags != c.want.Flags {
				t.Errorf("Flags = %#x, want %#x", got.Flags, c.want.Flags)
			}
			if got.Opcode != c.want.Opcode || got.Opcode2 != c.want.Opcode2 {
				t.Errorf("Opcode/Opcode2 = %#x/%#x, want %#x/%#x", got.Opcode, got.Opcode2, c.want.Opcode, c.want.Opcode2)
			}
			if got.REX != c.want.REX || got.RexW != c.want.RexW {
				t.Errorf("REX/RexW = %#x/%v, want %#x/%v", got.REX, got.RexW, c.want.REX, c.want.RexW)
			}
			if got.ModRM != c.want.ModRM || got.ModRMMod != c.want.ModRMMod ||
				got.ModRMReg != c.want.ModRMReg || got.ModRMRM != c.want.ModRMRM {
				t.Errorf("ModRM fields = %#x (mod=%d reg=%d rm=%d), want %#x (mod=%d reg=%d rm=%d)",
					got.ModRM, got.ModRMMod, got.ModRMReg, got.ModRMRM,
					c.want.ModRM, c.want.ModRMMod, c.want.ModRMReg, c.want.ModRMRM)
			}
			if got.SIB != c.want.SIB || got.SIBScale != c.want.SIBScale ||
				got.SIBIndex != c.want.SIBIndex || got.SIBBase != c.want.SIBBase {
				t.Errorf("SIB fields = %#x (scale=%d index=%d base=%d), want %#x (scale=%d index=%d base=%d)",
					got.SIB, got.SIBScale, got.SIBIndex, got.SIBBase,
					c.want.SIB, c.want.SIBScale, c.want.SIBIndex, c.want.SIBBase)
			}
			if got.DisplacementSize != c.want.DisplacementSize || got.Displacement != c.want.Displacement {
				t.Errorf("Displacement = size %d value %#x, want size %d value %#x",
					got.DisplacementSize, got.Displacement, c.want.DisplacementSize, c.want.Displacement)
			}
			if got.ImmediateSize != c.want.ImmediateSize || got.Immediate != c.want.Immediate {
				t.Errorf("Immediate = size %d value %#x, want size %d value %#x",
					got.ImmediateSize, got.Immediate, c.want.ImmediateSize, c.want.Immediate)
			}
			if !bytes.Equal(got.Bytes[:got.Length], c.code[:got.Length]) {
				t.Errorf("Bytes[:Length] = % x, want % x", got.Bytes[:got.Length], c.code[:got.Length])
			}
		})
	}
}

func TestDecodeOversizedStopsAtLengthBudget(t *testing.T) {
	code := []byte{
		0x26, 0x2E, 0x36, 0x3E, 0x64, 0x65, // segment overrides, last wins
		0x66, 0x67, 0xF0, 0xF2, // operand-size, address-size, lock, repnz
		0x48,       // REX.W
		0x81,       // Group 1: ADD r/m, imm16/32
		0x84, 0x01, // ModR/M + SIB
		0x10, 0x20, // disp16 (address-size prefix shrinks mod==2 disp)
		0xAB, 0xCD, // never reached: the disp16 read already exhausts the budget
	}

	got := Decode(code)

	// The displacement's own budget check fires at p=14 (14+2 > 15) before
	// any of its bytes are read, so decoding stops there rather than running
	// on through the trailing bytes and clamping only at the very end.
	const wantLength = 14

	if !got.Flags.Has(FlagError | FlagErrorLength) {
		t.Fatalf("Flags = %#x, want ERROR|ERROR_LENGTH set", got.Flags)
	}
	if got.Length != wantLength {
		t.Fatalf("Length = %d, want %d", got.Length, wantLength)
	}
	if !bytes.Equal(got.Bytes[:got.Length], code[:wantLength]) {
		t.Fatalf("Bytes[:Length] = % x, want % x", got.Bytes[:got.Length], code[:wantLength])
	}
	if got.DisplacementSize != 0 || got.Displacement != 0 {
		t.Fatalf("Displacement = size %d value %#x, want size 0 value 0 (budget check must fire before any displacement byte is read)", got.DisplacementSize, got.Displacement)
	}
	if got.ImmediateSize != 0 || got.Immediate != 0 {
		t.Fatalf("Immediate = size %d value %#x, want size 0 value 0 (stop propagates past the displacement check)", got.ImmediateSize, got.Immediate)
	}
	if got.Flags.Has(FlagDisp16 | FlagDisp32 | FlagImm16 | FlagImm32) {
		t.Fatalf("Flags = %#x, want no displacement/immediate presence flags set", got.Flags)
	}
}

func TestDecodeEnterReadsBothImmediates(t *testing.T) {
	// ENTER imm16, imm8: the source's else-if chain reads only the imm16
	// field because IMM16 is checked before IMM8; this port reads both.
	code := []byte{0xC8, 0x10, 0x00, 0x08}
	got := Decode(code)

	if got.Length != 4 {
		t.Fatalf("Length = %d, want 4", got.Length)
	}
	if got.ImmediateSize != 3 {
		t.Fatalf("ImmediateSize = %d, want 3 (imm16 + imm8)", got.ImmediateSize)
	}
	if !got.Flags.Has(FlagImm16 | FlagImm8) {
		t.Fatalf("Flags = %#x, want both FlagImm16 and FlagImm8 set", got.Flags)
	}
	if want := uint64(0x080010); got.Immediate != want {
		t.Fatalf("Immediate = %#x, want %#x (imm16 then imm8 packed low-to-high)", got.Immediate, want)
	}
}

func TestDecodeTruncatedInputSetsErrorLength(t *testing.T) {
	// A lone REX byte with nothing following it cannot produce an opcode.
	got := Decode([]byte{0x48})

	if !got.Flags.Has(FlagError | FlagErrorLength) {
		t.Fatalf("Flags = %#x, want ERROR|ERROR_LENGTH set", got.Flags)
	}
	if got.Length != 1 {
		t.Fatalf("Length = %d, want 1", got.Length)
	}
}

func TestDecodeIsDeterministic(t *testing.T) {
	code := []byte{0x48, 0x89, 0xC3} // MOV RBX, RAX
	a := Decode(code)
	b := Decode(code)
	if a != b {
		t.Fatalf("Decode is not deterministic: %+v != %+v", a, b)
	}
}

func TestDecodeNeverExceedsMaxLength(t *testing.T) {
	code := bytes.Repeat([]byte{0x66}, 64)
	got := Decode(code)
	if got.Length > MaxInstructionLength {
		t.Fatalf("Length = %d, exceeds MaxInstructionLength %d", got.Length, MaxInstructionLength)
	}
}

func TestDecodeDoesNotReadPastBufferEnd(t *testing.T) {
	// Must not panic even when the buffer is far shorter than what the
	// opcode's attributes would otherwise call for.
	for length := 0; length <= 4; length++ {
		code := []byte{0x0F, 0xBA, 0xFF, 0xFF}[:length]
		_ = Decode(code)
	}
}
