package conv

import (
	"unsafe"
)

// BytesToString returns a string sharing the backing array of b. The result
// must not outlive b, and b must not be modified while the result is in use.
func BytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	// https://github.com/golang/go/blob/go1.24.3/src/strings/builder.go#L41
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// StringToBytes returns a byte slice sharing the backing array of s. The
// result must not be modified.
func StringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	// https://github.com/golang/go/blob/go1.24.3/src/os/file.go#L300
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
