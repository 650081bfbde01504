package decoder

// fpuMod01Attr covers the D8-DF escape opcodes when modrm.mod != 3 (memory
// operand): every one of the eight reg-field slots takes a ModR/M operand.
var fpuMod01Attr = [8]Attr{
	AttrModRM, AttrModRM, AttrModRM, AttrModRM,
	AttrModRM, AttrModRM, AttrModRM, AttrModRM,
}

// fpuMod3Attr covers the D8-DF escape opcodes when modrm.mod == 3 (register
// operand): the classic x87 stack-register forms carry no further operand
// bytes beyond ModR/M itself, which the decoder has already consumed.
var fpuMod3Attr = [8][8]Attr{
	{AttrNone, AttrNone, AttrNone, AttrNone, AttrNone, AttrNone, AttrNone, AttrNone},
	{AttrNone, AttrNone, AttrNone, AttrNone, AttrNone, AttrNone, AttrNone, AttrNone},
	{AttrNone, AttrNone, AttrNone, AttrNone, AttrNone, AttrNone, AttrNone, AttrNone},
	{AttrNone, AttrNone, AttrNone, AttrNone, AttrNone, AttrNone, AttrNone, AttrNone},
	{AttrNone, AttrNone, AttrNone, AttrNone, AttrNone, AttrNone, AttrNone, AttrNone},
	{AttrNone, AttrNone, AttrNone, AttrNone, AttrNone, AttrNone, AttrNone, AttrNone},
	{AttrNone, AttrNone, AttrNone, AttrNone, AttrNone, AttrNone, AttrNone, AttrNone},
	{AttrNone, AttrNone, AttrNone, AttrNone, AttrNone, AttrNone, AttrNone, AttrNone},
}
