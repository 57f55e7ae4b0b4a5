package dwgmodel

import (
	"testing"
	"unicode/utf16"
)

func encodeUTF16LE(s string) []byte {
	units := utf16.Encode([]rune(s))
	b := make([]byte, 0, len(units)*2)
	for _, u := range units {
		b = append(b, byte(u), byte(u>>8))
	}
	return b
}

func TestDecodeUTF16RoundTrip(t *testing.T) {
	tc := TextTranscoder{}
	got, err := tc.DecodeUTF16(encodeUTF16LE("hello"))
	if err != nil {
		t.Fatalf("DecodeUTF16: %v", err)
	}
	if got != "hello" {
		t.Errorf("DecodeUTF16 = %q, want %q", got, "hello")
	}
}

func TestDecodeCodepageASCIISubset(t *testing.T) {
	tc := TextTranscoder{}
	got, err := tc.DecodeCodepage([]byte("abc123"), "ANSI_1252")
	if err != nil {
		t.Fatalf("DecodeCodepage: %v", err)
	}
	if got != "abc123" {
		t.Errorf("DecodeCodepage = %q, want %q", got, "abc123")
	}
}

func TestDecodeCodepageUnknownFallsBackToWindows1252(t *testing.T) {
	tc := TextTranscoder{}
	if _, err := tc.DecodeCodepage([]byte("abc"), "totally-unknown"); err != nil {
		t.Errorf("DecodeCodepage with unknown codepage should fall back, not error: %v", err)
	}
}
