package decodetrace

import (
	"fmt"
	"strings"

	"github.com/keurnel/xdisasm/decoder"
)

// flagNames lists the error-taxonomy bits worth calling out in a scan
// entry's note, in a fixed, readable order.
var flagNames = []struct {
	bit  decoder.Flags
	name string
}{
	{decoder.FlagErrorOpcode, "bad-opcode"},
	{decoder.FlagErrorLength, "overlong"},
	{decoder.FlagErrorLock, "bad-lock"},
	{decoder.FlagErrorOperand, "bad-operand"},
}

// Scan walks code one decoded instruction at a time starting at offset 0,
// recording one entry per instruction into t: an error entry if Decode set
// any error flag, otherwise an info entry. It returns the number of
// instructions scanned. A zero-length instruction (which Decode never
// produces for non-empty input) would loop forever, so Scan always
// advances by at least one byte.
func Scan(t *Trace, code []byte) int {
	count := 0
	offset := int64(0)
	for int(offset) < len(code) {
		rec := decoder.Decode(code[offset:])
		note := describeFlags(rec.Flags)
		if rec.Flags.Has(decoder.FlagError) {
			t.Error(offset, fmt.Sprintf("opcode %#02x", rec.Opcode)).WithNote(note)
		} else {
			t.Info(offset, fmt.Sprintf("opcode %#02x, length %d", rec.Opcode, rec.Length)).WithNote(note)
		}
		count++
		advance := int64(rec.Length)
		if advance < 1 {
			advance = 1
		}
		offset += advance
	}
	return count
}

func describeFlags(f decoder.Flags) string {
	var names []string
	for _, fn := range flagNames {
		if f.Has(fn.bit) {
			names = append(names, fn.name)
		}
	}
	if len(names) == 0 {
		return ""
	}
	return strings.Join(names, ",")
}
