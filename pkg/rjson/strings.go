package rjson

// JSON string escaping per RFC 8259: only the double quote, the backslash
// and the C0 control characters need escaping. Everything else, including
// multi-byte UTF-8 sequences, passes through verbatim.

var needsEscape [256]bool

func init() {
	for c := 0; c < 0x20; c++ {
		needsEscape[c] = true
	}
	needsEscape['"'] = true
	needsEscape['\\'] = true
}

const hexDigits = "0123456789abcdef"

// appendQuoted appends s as a quoted JSON string. A single linear scan
// finds the first byte needing an escape; the escape-free prefix (in the
// common case the whole string) is copied wholesale without per-character
// dispatch.
func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	i := 0
	for i < len(s) && !needsEscape[s[i]] {
		i++
	}
	dst = append(dst, s[:i]...)
	if i < len(s) {
		dst = appendEscaped(dst, s[i:])
	}
	return append(dst, '"')
}

// appendEscaped is the per-character path for string tails that contain at
// least one byte needing an escape.
func appendEscaped(dst []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !needsEscape[c] {
			dst = append(dst, c)
			continue
		}
		switch c {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		default:
			dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
		}
	}
	return dst
}
