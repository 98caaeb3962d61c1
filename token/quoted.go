package token

import (
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NeedsQuote reports whether v must be quoted to be read back as the same
// string, either as a key component or as a value.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	switch v {
	case "true", "false", "null":
		return true
	}
	if IsNumber([]byte(v)) {
		return true
	}
	if strings.Contains(v, "//") || strings.Contains(v, "${") {
		return true
	}
	for _, r := range v {
		if r == utf8.RuneError || r == '\n' || isSpace(r) || unicode.IsControl(r) {
			return true
		}
		if isDelim(r) {
			return true
		}
		switch r {
		case '"', '\'', '#', '.', '\\':
			return true
		}
	}
	return false
}

// Quote returns v as a double quoted string with JSON escapes.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// unescape appends the meaning of the escape sequence starting after a
// backslash at d[0] to dst. It returns the number of bytes consumed
// after the backslash.
func unescape(dst []byte, d []byte) ([]byte, int, error) {
	if len(d) == 0 {
		return dst, 0, ErrUnterminated
	}
	switch d[0] {
	case '"', '\'', '\\', '/':
		return append(dst, d[0]), 1, nil
	case 'b':
		return append(dst, '\b'), 1, nil
	case 'f':
		return append(dst, '\f'), 1, nil
	case 'n':
		return append(dst, '\n'), 1, nil
	case 'r':
		return append(dst, '\r'), 1, nil
	case 't':
		return append(dst, '\t'), 1, nil
	case 'u':
		if len(d) < 5 || !allHex(d[1:5]) {
			return dst, 0, ErrBadUnicode
		}
		u := []byte{0, 0}
		if _, err := hex.Decode(u, d[1:5]); err != nil {
			return dst, 0, ErrBadUnicode
		}
		return utf8.AppendRune(dst, rune(u[0])<<8|rune(u[1])), 5, nil
	case '\n':
		return dst, 0, ErrUnterminated
	default:
		// unknown escapes are kept verbatim
		return append(dst, '\\'), 0, nil
	}
}

func allHex(d []byte) bool {
	for _, c := range d {
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'f' {
			continue
		}
		if c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}
