// Package decodetrace provides a passive, append-only data structure that
// accumulates diagnostic entries as a byte buffer is walked and decoded.
// Scan walks a buffer with decoder.Decode and records one entry per
// instruction here; the package prints nothing itself — a separate renderer
// (the xdisasm CLI) turns the entries into output.
package decodetrace
