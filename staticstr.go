package staticstr

import (
	"github.com/starudream/staticstr/arena"
)

// Convert copies every buffer into a fresh immutable string, pins the copy
// in the process-wide arena, and returns the pinned strings in input order.
//
// The result is unconditionally safe: the caller may mutate or drop the
// input buffers afterwards, and the returned strings stay valid until the
// process exits. Every call leaks the total byte length of its input — the
// arena never releases pinned strings. Buffers are treated as opaque bytes;
// non-UTF-8 content converts byte-for-byte.
//
// An empty or nil input yields an empty result.
func Convert(bufs [][]byte) []string {
	return arena.PinAll(bufs)
}
