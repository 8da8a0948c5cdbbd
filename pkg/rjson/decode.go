package rjson

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
	"unsafe"
)

// maxNestingDepth bounds container recursion so hostile input cannot grow
// the stack without limit. Exceeding it is a ParseError like any other.
const maxNestingDepth = 10000

// Decode parses JSON from data and returns the resulting Value tree, or a
// ParseError carrying the byte offset of the first violation. The parser
// is strict: trailing commas, bare identifiers, control characters inside
// strings and trailing garbage after the top-level value are all errors,
// and nothing partial is ever returned.
//
// String values that contain no escape sequence are borrowed, not copied:
// they alias data directly, so the caller must not mutate data while any
// string from the result is still in use. Strings that needed unescaping
// are always owned copies. Use DecodeString to get the same zero-copy
// behavior without the aliasing hazard.
func Decode(data []byte) (Value, error) {
	var s string
	if len(data) > 0 {
		s = unsafe.String(unsafe.SliceData(data), len(data))
	}
	return DecodeString(s)
}

// DecodeString parses JSON from s. Escape-free string values share s's
// backing memory via ordinary substring slicing, which is safe because Go
// strings are immutable.
func DecodeString(s string) (Value, error) {
	p := &parser{s: s}
	p.skipSpace()
	v, err := p.parseValue()
	if err != nil {
		return Value{}, err
	}
	p.skipSpace()
	if p.pos != len(p.s) {
		return Value{}, p.errAt(p.pos, "Trailing characters after JSON value")
	}
	return v, nil
}

// Valid reports whether data is syntactically valid JSON.
func Valid(data []byte) bool {
	_, err := Decode(data)
	return err == nil
}

type parser struct {
	s     string
	pos   int
	depth int
}

func (p *parser) errAt(off int, msg string) *ParseError {
	return &ParseError{Offset: off, Msg: msg}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.s) {
		switch p.s[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) parseValue() (Value, error) {
	if p.pos >= len(p.s) {
		return Value{}, p.errAt(p.pos, "Unexpected end of input")
	}
	switch c := p.s[p.pos]; {
	case c == '{':
		return p.parseObject()
	case c == '[':
		return p.parseArray()
	case c == '"':
		s, err := p.parseString()
		if err != nil {
			return Value{}, err
		}
		return StringValue(s), nil
	case c == 't':
		return p.parseLiteral("true", BoolValue(true))
	case c == 'f':
		return p.parseLiteral("false", BoolValue(false))
	case c == 'n':
		return p.parseLiteral("null", NullValue())
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	default:
		return Value{}, p.errAt(p.pos, fmt.Sprintf("Unexpected character %q", c))
	}
}

func (p *parser) parseLiteral(lit string, v Value) (Value, error) {
	if len(p.s)-p.pos < len(lit) || p.s[p.pos:p.pos+len(lit)] != lit {
		return Value{}, p.errAt(p.pos, "Invalid literal, expected '"+lit+"'")
	}
	p.pos += len(lit)
	return v, nil
}

// parseNumber scans one literal against the JSON number grammar, then
// hands it to the formatter's inverse: integer literals that fit int64
// become Int, everything else Float.
func (p *parser) parseNumber() (Value, error) {
	s := p.s
	start := p.pos
	i := start
	if s[i] == '-' {
		i++
	}
	switch {
	case i < len(s) && s[i] == '0':
		i++
		if i < len(s) && s[i] >= '0' && s[i] <= '9' {
			return Value{}, p.errAt(start, "Invalid number: leading zeros")
		}
	case i < len(s) && s[i] >= '1' && s[i] <= '9':
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
	default:
		return Value{}, p.errAt(start, "Invalid number")
	}
	isInt := true
	if i < len(s) && s[i] == '.' {
		isInt = false
		i++
		digits := 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			digits++
		}
		if digits == 0 {
			return Value{}, p.errAt(i, "Invalid number: expected digit after decimal point")
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		isInt = false
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		digits := 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			digits++
		}
		if digits == 0 {
			return Value{}, p.errAt(i, "Invalid number: expected digit in exponent")
		}
	}
	p.pos = i
	v, err := parseNumber(s[start:i], isInt)
	if err != nil {
		return Value{}, p.errAt(start, "Invalid float")
	}
	return v, nil
}

// parseString scans forward for the closing quote. A segment containing
// no escape sequence is returned as a slice of the input (zero-copy); the
// first backslash switches to the materializing path.
func (p *parser) parseString() (string, error) {
	s := p.s
	start := p.pos + 1
	for i := start; i < len(s); i++ {
		switch c := s[i]; {
		case c == '"':
			p.pos = i + 1
			return s[start:i], nil
		case c == '\\':
			return p.parseStringSlow(start, i)
		case c < 0x20:
			return "", p.errAt(i, "Invalid control character in string")
		}
	}
	return "", p.errAt(len(s), "Unterminated string")
}

// parseStringSlow unescapes into a fresh owned buffer. start is the first
// content byte, i the position of the first backslash.
func (p *parser) parseStringSlow(start, i int) (string, error) {
	s := p.s
	buf := make([]byte, 0, i-start+16)
	buf = append(buf, s[start:i]...)
	for i < len(s) {
		switch c := s[i]; {
		case c == '"':
			p.pos = i + 1
			return string(buf), nil
		case c == '\\':
			i++
			if i >= len(s) {
				return "", p.errAt(len(s), "Unterminated string")
			}
			switch s[i] {
			case '"':
				buf = append(buf, '"')
				i++
			case '\\':
				buf = append(buf, '\\')
				i++
			case '/':
				buf = append(buf, '/')
				i++
			case 'b':
				buf = append(buf, '\b')
				i++
			case 'f':
				buf = append(buf, '\f')
				i++
			case 'n':
				buf = append(buf, '\n')
				i++
			case 'r':
				buf = append(buf, '\r')
				i++
			case 't':
				buf = append(buf, '\t')
				i++
			case 'u':
				r, next, err := p.parseUnicodeEscape(i - 1)
				if err != nil {
					return "", err
				}
				buf = utf8.AppendRune(buf, r)
				i = next
			default:
				return "", p.errAt(i, "Invalid escape character")
			}
		case c < 0x20:
			return "", p.errAt(i, "Invalid control character in string")
		default:
			buf = append(buf, c)
			i++
		}
	}
	return "", p.errAt(len(s), "Unterminated string")
}

// parseUnicodeEscape decodes "\uXXXX" starting at the backslash position
// i, consuming a second escape for surrogate pairs. Returns the decoded
// rune and the position after the last consumed byte.
func (p *parser) parseUnicodeEscape(i int) (rune, int, error) {
	s := p.s
	if i+6 > len(s) {
		return 0, 0, p.errAt(i, "Invalid unicode escape")
	}
	hi, ok := parseHex4(s[i+2 : i+6])
	if !ok {
		return 0, 0, p.errAt(i, "Invalid unicode escape")
	}
	i += 6
	if !utf16.IsSurrogate(hi) {
		return hi, i, nil
	}
	if hi >= 0xDC00 {
		// low surrogate with no preceding high surrogate
		return 0, 0, p.errAt(i-6, "Invalid surrogate pair")
	}
	if i+6 > len(s) || s[i] != '\\' || s[i+1] != 'u' {
		return 0, 0, p.errAt(i, "Invalid surrogate pair")
	}
	lo, ok := parseHex4(s[i+2 : i+6])
	if !ok {
		return 0, 0, p.errAt(i, "Invalid unicode escape")
	}
	r := utf16.DecodeRune(hi, lo)
	if r == utf8.RuneError {
		return 0, 0, p.errAt(i-6, "Invalid surrogate pair")
	}
	return r, i + 6, nil
}

func parseHex4(s string) (rune, bool) {
	var r rune
	for k := 0; k < 4; k++ {
		c := s[k]
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			r |= rune(c-'A') + 10
		default:
			return 0, false
		}
	}
	return r, true
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > maxNestingDepth {
		return p.errAt(p.pos, "Nesting depth exceeded")
	}
	return nil
}

func (p *parser) parseArray() (Value, error) {
	if err := p.enter(); err != nil {
		return Value{}, err
	}
	defer func() { p.depth-- }()
	p.pos++ // '['
	elems := []Value{}
	p.skipSpace()
	if p.pos < len(p.s) && p.s[p.pos] == ']' {
		p.pos++
		return ArrayValue(elems...), nil
	}
	for {
		p.skipSpace()
		v, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, v)
		p.skipSpace()
		if p.pos >= len(p.s) {
			return Value{}, p.errAt(len(p.s), "Unterminated array")
		}
		switch p.s[p.pos] {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return ArrayValue(elems...), nil
		default:
			return Value{}, p.errAt(p.pos, "Expected ',' or ']' in array")
		}
	}
}

func (p *parser) parseObject() (Value, error) {
	if err := p.enter(); err != nil {
		return Value{}, err
	}
	defer func() { p.depth-- }()
	p.pos++ // '{'
	var acc objectAcc
	p.skipSpace()
	if p.pos < len(p.s) && p.s[p.pos] == '}' {
		p.pos++
		return ObjectValue(), nil
	}
	for {
		p.skipSpace()
		if p.pos >= len(p.s) {
			return Value{}, p.errAt(len(p.s), "Unterminated object")
		}
		if p.s[p.pos] != '"' {
			return Value{}, p.errAt(p.pos, "Expected object key as quoted string")
		}
		key, err := p.parseString()
		if err != nil {
			return Value{}, err
		}
		p.skipSpace()
		if p.pos >= len(p.s) || p.s[p.pos] != ':' {
			return Value{}, p.errAt(p.pos, "Expected ':' after object key")
		}
		p.pos++
		p.skipSpace()
		v, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		acc.put(key, v)
		p.skipSpace()
		if p.pos >= len(p.s) {
			return Value{}, p.errAt(len(p.s), "Unterminated object")
		}
		switch p.s[p.pos] {
		case ',':
			p.pos++
		case '}':
			p.pos++
			return ObjectValue(acc.members...), nil
		default:
			return Value{}, p.errAt(p.pos, "Expected ',' or '}' in object")
		}
	}
}

// objectAcc accumulates members with last-write-wins duplicate handling.
// Small objects use a linear scan; past the threshold a key index is
// built so large objects stay linear-time overall.
type objectAcc struct {
	members []Member
	index   map[string]int
}

const objectIndexThreshold = 16

func (o *objectAcc) put(key string, v Value) {
	if o.index == nil {
		for i := range o.members {
			if o.members[i].Key == key {
				o.members[i].Value = v
				return
			}
		}
		o.members = append(o.members, Member{Key: key, Value: v})
		if len(o.members) > objectIndexThreshold {
			o.index = make(map[string]int, 2*len(o.members))
			for i, m := range o.members {
				o.index[m.Key] = i
			}
		}
		return
	}
	if i, ok := o.index[key]; ok {
		o.members[i].Value = v
		return
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: v})
}
