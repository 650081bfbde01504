package decodetrace

import "testing"

func TestTraceRecordsInInsertionOrder(t *testing.T) {
	tr := New("buf")
	tr.Info(0, "first")
	tr.Error(4, "second")
	tr.Warning(9, "third")

	entries := tr.Entries()
	if len(entries) != 3 {
		t.Fatalf("len(Entries()) = %d, want 3", len(entries))
	}
	want := []string{"first", "second", "third"}
	for i, e := range entries {
		if e.Message() != want[i] {
			t.Errorf("entries[%d].Message() = %q, want %q", i, e.Message(), want[i])
		}
	}
}

func TestTraceHasErrors(t *testing.T) {
	tr := New("buf")
	if tr.HasErrors() {
		t.Fatal("HasErrors() = true on empty trace")
	}
	tr.Warning(0, "not an error")
	if tr.HasErrors() {
		t.Fatal("HasErrors() = true after only a warning")
	}
	tr.Error(1, "boom")
	if !tr.HasErrors() {
		t.Fatal("HasErrors() = false after recording an error")
	}
}

func TestEntryWithNoteChains(t *testing.T) {
	tr := New("buf")
	e := tr.Error(2, "bad-opcode").WithNote("bad-opcode,bad-lock")
	if e.Note() != "bad-opcode,bad-lock" {
		t.Errorf("Note() = %q, want %q", e.Note(), "bad-opcode,bad-lock")
	}
}

func TestLocationString(t *testing.T) {
	loc := At("buf", 0x10)
	want := "buf+0x10"
	if got := loc.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
