package conv

import (
	"bytes"
	"testing"
	"unsafe"
)

func TestBytesToString(t *testing.T) {
	b := []byte("hello")
	s := BytesToString(b)
	if s != "hello" {
		t.Fatalf("unexpected string: %q", s)
	}
	if unsafe.StringData(s) != unsafe.SliceData(b) {
		t.Fatal("string does not share backing array")
	}
}

func TestBytesToStringEmpty(t *testing.T) {
	if s := BytesToString(nil); s != "" {
		t.Fatalf("unexpected string: %q", s)
	}
	if s := BytesToString([]byte{}); s != "" {
		t.Fatalf("unexpected string: %q", s)
	}
}

func TestStringToBytes(t *testing.T) {
	s := "world"
	b := StringToBytes(s)
	if !bytes.Equal(b, []byte("world")) {
		t.Fatalf("unexpected bytes: %q", b)
	}
	if unsafe.SliceData(b) != unsafe.StringData(s) {
		t.Fatal("slice does not share backing array")
	}
}

func TestStringToBytesEmpty(t *testing.T) {
	if b := StringToBytes(""); b != nil {
		t.Fatalf("unexpected bytes: %v", b)
	}
}
