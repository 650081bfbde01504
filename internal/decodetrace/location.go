package decodetrace

import "fmt"

// Location identifies a position in a decoded byte buffer. It is a value
// type — safe to copy and compare. Unlike a source-text location it has no
// line or column: the decoder operates on raw bytes, so position is a tag
// naming the buffer (a file path, a section name, "stdin") plus a byte
// offset into it.
type Location struct {
	tag    string // Name of the buffer the offset is within.
	offset int64  // 0-based byte offset from the start of the buffer.
}

// At creates a Location for the given buffer tag and byte offset.
func At(tag string, offset int64) Location {
	return Location{tag: tag, offset: offset}
}

// Tag returns the buffer name the offset is within.
func (l Location) Tag() string { return l.tag }

// Offset returns the 0-based byte offset into the buffer.
func (l Location) Offset() int64 { return l.offset }

// String returns a human-readable representation of the location, in the
// form "tag+0xOFFSET".
func (l Location) String() string {
	return fmt.Sprintf("%s+%#x", l.tag, l.offset)
}
