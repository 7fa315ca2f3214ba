// Package staticstr converts slices of owned, mutable byte buffers into
// slices of immutable strings whose bytes stay valid for the remainder of
// the process.
//
// Convert is the default and only fully supported entry point. It copies
// every buffer and pins the copy in a process-wide arena, so the result is
// always safe to hold, at the cost of memory that is never reclaimed:
//
//	bufs := [][]byte{[]byte("hello"), []byte("world")}
//	strs := staticstr.Convert(bufs) // ["hello", "world"]
//
// UnsafeConvert produces the same result without copying or pinning by
// aliasing the caller's buffers. It is only compiled under the
// staticstr_unsafe build tag, and shifts the whole lifetime burden to the
// caller; see its documentation before enabling the tag.
package staticstr
