//go:build staticstr_unsafe

package staticstr

import (
	"github.com/starudream/staticstr/internal/conv"
)

// UnsafeConvert returns strings aliasing the caller's buffers, in input
// order, without copying, pinning, or allocating backing storage.
//
// SAFETY: each returned string shares memory with the buffer it came from.
// It is valid only while that buffer is alive, unmodified, and reachable:
//   - Mutating a buffer changes the string under the runtime's feet. Go
//     assumes strings are immutable; maps, interning, and the race detector
//     all break when that assumption is violated.
//   - Releasing a buffer (letting it be garbage collected or reusing it)
//     while the string is still read produces undefined behavior.
//
// None of this is checked at runtime and none of it can be. Use Convert
// unless the input buffers provably outlive every read of the result.
//
// Zero-length buffers convert to "". An empty or nil input yields an empty
// result.
func UnsafeConvert(bufs [][]byte) []string {
	strs := make([]string, len(bufs))
	for i, b := range bufs {
		strs[i] = conv.BytesToString(b)
	}
	return strs
}
