package css

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF32BE = []byte{0x00, 0x00, 0xFE, 0xFF}
	bomUTF32LE = []byte{0xFF, 0xFE, 0x00, 0x00}
)

// decodeError is the single hard failure of the pipeline (§4.1, §7): bytes
// that no candidate encoding can make sense of.
type decodeError struct {
	tried []string
}

func (e *decodeError) Error() string {
	return fmt.Sprintf("csstree: could not decode stylesheet bytes (tried: %v)", e.tried)
}

// Decode turns stylesheet bytes into text plus the name of the encoding
// that was actually used, following the precedence chain in §4.1: BOM,
// protocol hint, in-band @charset, linking hint, document hint, UTF-8,
// then ISO-8859-1 as an always-succeeding last resort.
//
// logger receives a Debug trace for the BOM and for each named candidate
// (protocol, @charset, linking, document) as it is accepted or rejected.
// A rejection trace does not carry its cause, and the UTF-8 and
// ISO-8859-1 fallbacks are not traced. csstree never logs in place of
// returning data, so these traces are purely diagnostic (§2 of the
// expanded design).
func Decode(data []byte, protocolEncoding, linkingEncoding, documentEncoding string, logger *zap.Logger) (string, string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var tried []string

	if name, text, ok := decodeBOM(data); ok {
		logger.Debug("encoding candidate accepted", zap.String("source", "bom"), zap.String("name", name))
		return text, name, nil
	}

	type candidate struct {
		source string
		name   string
	}
	candidates := []candidate{
		{"protocol", protocolEncoding},
	}
	if name, scanOK := sniffAtCharset(data); scanOK {
		candidates = append(candidates, candidate{"charset", name})
	}
	candidates = append(candidates,
		candidate{"linking", linkingEncoding},
		candidate{"document", documentEncoding},
	)

	for _, c := range candidates {
		if c.name == "" {
			continue
		}
		if text, ok := tryNamedEncoding(c.name, data); ok {
			logger.Debug("encoding candidate accepted", zap.String("source", c.source), zap.String("name", c.name))
			return text, c.name, nil
		}
		tried = append(tried, c.name)
		logger.Debug("encoding candidate rejected", zap.String("source", c.source), zap.String("name", c.name))
	}

	if utf8.Valid(data) {
		return string(data), "utf-8", nil
	}
	tried = append(tried, "utf-8")

	if text, err := charmap.ISO8859_1.NewDecoder().String(string(data)); err == nil {
		return text, "iso-8859-1", nil
	}
	tried = append(tried, "iso-8859-1")

	return "", "", &decodeError{tried: tried}
}

// decodeBOM recognizes the five BOM forms in §4.1 step 1 and strips the BOM
// from the returned text. UTF-32 has no support in golang.org/x/text (the
// WHATWG encoding standard it implements never defines UTF-32 as a web
// encoding), so its two variants are decoded by hand; UTF-8/UTF-16 go
// through golang.org/x/text/encoding/unicode.
func decodeBOM(data []byte) (name string, text string, ok bool) {
	switch {
	case bytes.HasPrefix(data, bomUTF32BE):
		if s, err := decodeUTF32(data[4:], binary.BigEndian); err == nil {
			return "utf-32-be", s, true
		}
	case bytes.HasPrefix(data, bomUTF32LE):
		if s, err := decodeUTF32(data[4:], binary.LittleEndian); err == nil {
			return "utf-32-le", s, true
		}
	case bytes.HasPrefix(data, bomUTF8):
		rest := data[3:]
		if utf8.Valid(rest) {
			return "utf-8", string(rest), true
		}
	case bytes.HasPrefix(data, bomUTF16BE):
		enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
		if s, err := enc.NewDecoder().String(string(data[2:])); err == nil {
			return "utf-16-be", s, true
		}
	case bytes.HasPrefix(data, bomUTF16LE):
		enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
		if s, err := enc.NewDecoder().String(string(data[2:])); err == nil {
			return "utf-16-le", s, true
		}
	}
	return "", "", false
}

func decodeUTF32(data []byte, order binary.ByteOrder) (string, error) {
	if len(data)%4 != 0 {
		return "", fmt.Errorf("csstree: utf-32 input not a multiple of 4 bytes")
	}
	var b bytes.Buffer
	b.Grow(len(data))
	for i := 0; i < len(data); i += 4 {
		cp := order.Uint32(data[i : i+4])
		if cp > utf8.MaxRune {
			return "", fmt.Errorf("csstree: utf-32 codepoint out of range: %#x", cp)
		}
		b.WriteRune(rune(cp))
	}
	return b.String(), nil
}

// atCharsetPrefix is the exact ASCII sequence that must open a stylesheet,
// with no leading whitespace and a straight double quote, for the in-band
// @charset sniff (§4.1 step 3) to apply at all.
const atCharsetPrefix = `@charset "`

// atCharsetScanWindow bounds how far the sniff scans for the closing quote,
// so a stylesheet that merely starts with the prefix but never closes the
// string can't force a full-document scan.
const atCharsetScanWindow = 1024

func sniffAtCharset(data []byte) (string, bool) {
	if !bytes.HasPrefix(data, []byte(atCharsetPrefix)) {
		return "", false
	}
	window := data[len(atCharsetPrefix):]
	if len(window) > atCharsetScanWindow {
		window = window[:atCharsetScanWindow]
	}
	end := bytes.IndexByte(window, '"')
	if end < 0 {
		return "", false
	}
	return string(window[:end]), true
}

// tryNamedEncoding resolves name through htmlindex (the WHATWG label table —
// tolerant of aliases and case, as §4.1 asks for) and decodes the whole
// body with it. A resolution or decode failure is not an error to the
// caller: it just means this candidate falls through to the next one.
func tryNamedEncoding(name string, data []byte) (string, bool) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return "", false
	}
	text, err := enc.NewDecoder().String(string(data))
	if err != nil {
		return "", false
	}
	return text, true
}
