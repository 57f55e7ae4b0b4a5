package dwgmodel

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Transcoder decodes the two string encodings a DWG document can carry
// (§6): UTF-16 wide text (R2007+) and a single-byte codepage (pre-R2007).
// Both decoders are driven through golang.org/x/text/transform rather
// than hand-rolled byte shuffling.
type Transcoder interface {
	DecodeUTF16(b []byte) (string, error)
	DecodeCodepage(b []byte, codepage string) (string, error)
}

// TextTranscoder is the default Transcoder, backed by
// golang.org/x/text's encoding package family.
type TextTranscoder struct{}

var _ Transcoder = TextTranscoder{}

func (TextTranscoder) DecodeUTF16(b []byte) (string, error) {
	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	return decodeWith(dec, b)
}

func (TextTranscoder) DecodeCodepage(b []byte, codepage string) (string, error) {
	enc, err := lookupCodepage(codepage)
	if err != nil {
		return "", err
	}
	return decodeWith(enc.NewDecoder(), b)
}

func decodeWith(dec transform.Transformer, b []byte) (string, error) {
	r := transform.NewReader(strings.NewReader(string(b)), dec)
	out, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("transcode: %w", err)
	}
	return string(out), nil
}

// lookupCodepage maps the DWG header's codepage name (e.g. "ANSI_1252")
// to an x/text encoding. Unrecognized names fall back to Windows-1252,
// the overwhelmingly common DWG codepage.
func lookupCodepage(name string) (encoding.Encoding, error) {
	switch strings.ToUpper(strings.TrimPrefix(strings.ToUpper(name), "ANSI_")) {
	case "1252", "ANSI_1252", "":
		return charmap.Windows1252, nil
	case "1250":
		return charmap.Windows1250, nil
	case "1251":
		return charmap.Windows1251, nil
	case "1253":
		return charmap.Windows1253, nil
	case "1254":
		return charmap.Windows1254, nil
	case "1255":
		return charmap.Windows1255, nil
	case "1256":
		return charmap.Windows1256, nil
	case "1257":
		return charmap.Windows1257, nil
	case "1258":
		return charmap.Windows1258, nil
	default:
		return charmap.Windows1252, nil
	}
}
