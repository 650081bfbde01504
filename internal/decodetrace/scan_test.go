package decodetrace

import "testing"

func TestScanWalksEachInstruction(t *testing.T) {
	// NOP, then JMP rel32, then NOP.
	code := []byte{0x90, 0xE9, 0x00, 0x01, 0x00, 0x00, 0x90}

	tr := New("buf")
	n := Scan(tr, code)

	if n != 3 {
		t.Fatalf("Scan returned %d instructions, want 3", n)
	}
	entries := tr.Entries()
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	wantOffsets := []int64{0, 1, 6}
	for i, e := range entries {
		if e.Location().Offset() != wantOffsets[i] {
			t.Errorf("entries[%d].Location().Offset() = %d, want %d", i, e.Location().Offset(), wantOffsets[i])
		}
	}
	if tr.HasErrors() {
		t.Fatal("HasErrors() = true for a clean instruction stream")
	}
}

func TestScanRecordsErrorsWithoutStopping(t *testing.T) {
	// Double REX (illegal), then NOP.
	code := []byte{0x40, 0x40, 0x90}

	tr := New("buf")
	n := Scan(tr, code)

	if n != 2 {
		t.Fatalf("Scan returned %d instructions, want 2", n)
	}
	if !tr.HasErrors() {
		t.Fatal("HasErrors() = false, want true after the double-REX instruction")
	}
}
