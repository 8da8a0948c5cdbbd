package rjson

// Encode renders v as compact JSON text: "," and ":" separators, no
// surrounding whitespace, no trailing newline. On error no output is
// returned; the operation's buffer is discarded as a unit.
func Encode(v Value) (string, error) {
	buf := encodeBuffers.acquire(smallBufferCap)
	out, err := appendValue(buf.buf[:0], v)
	if err != nil {
		encodeBuffers.release(buf)
		return "", err
	}
	buf.buf = out
	s := buf.String()
	encodeBuffers.release(buf)
	return s, nil
}

// EncodeBytes renders v as the same bytes Encode would produce, skipping
// the text conversion: ownership of the returned buffer transfers to the
// caller, which may retain or mutate it freely. The bytes are valid UTF-8
// because the encoder writes nothing else.
func EncodeBytes(v Value) ([]byte, error) {
	buf := NewBuffer(minBufferCap)
	out, err := appendValue(buf.buf, v)
	if err != nil {
		return nil, err
	}
	buf.buf = out
	return buf.Bytes(), nil
}

// AppendEncode appends the compact JSON form of v to dst and returns the
// extended slice. On error dst is returned at its original length.
func AppendEncode(dst []byte, v Value) ([]byte, error) {
	out, err := appendValue(dst, v)
	if err != nil {
		return dst, err
	}
	return out, nil
}

func appendValue(dst []byte, v Value) ([]byte, error) {
	switch v.typ {
	case TypeNull:
		return append(dst, "null"...), nil
	case TypeBool:
		if v.b {
			return append(dst, "true"...), nil
		}
		return append(dst, "false"...), nil
	case TypeInt:
		return appendInt(dst, v.i), nil
	case TypeFloat:
		return appendFloat(dst, v.f)
	case TypeString:
		return appendQuoted(dst, v.s), nil
	case TypeArray:
		return appendArray(dst, v.a)
	case TypeObject:
		return appendObject(dst, v.o)
	default:
		return dst, errUnsupportedValue(v.typ)
	}
}

// appendArray classifies the array once up front; homogeneous scalar
// arrays take a tight per-type loop with no per-element variant dispatch.
// The two paths produce byte-identical output, the fast path only skips
// branching work.
func appendArray(dst []byte, elems []Value) ([]byte, error) {
	if t := classifyArray(elems); t != TypeInvalid {
		return appendArrayBulk(dst, elems, t)
	}
	return appendArrayGeneric(dst, elems)
}

// classifyArray returns the scalar variant shared by every element, or
// TypeInvalid when the array is empty, too small to matter, mixed, or
// contains nested containers.
func classifyArray(elems []Value) Type {
	if len(elems) < 2 {
		return TypeInvalid
	}
	t := elems[0].typ
	switch t {
	case TypeInt, TypeFloat, TypeString, TypeBool:
	default:
		return TypeInvalid
	}
	for _, e := range elems[1:] {
		if e.typ != t {
			return TypeInvalid
		}
	}
	return t
}

func appendArrayBulk(dst []byte, elems []Value, t Type) ([]byte, error) {
	dst = append(dst, '[')
	switch t {
	case TypeInt:
		for i := range elems {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendInt(dst, elems[i].i)
		}
	case TypeFloat:
		var err error
		for i := range elems {
			if i > 0 {
				dst = append(dst, ',')
			}
			if dst, err = appendFloat(dst, elems[i].f); err != nil {
				return dst, err
			}
		}
	case TypeString:
		for i := range elems {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendQuoted(dst, elems[i].s)
		}
	case TypeBool:
		for i := range elems {
			if i > 0 {
				dst = append(dst, ',')
			}
			if elems[i].b {
				dst = append(dst, "true"...)
			} else {
				dst = append(dst, "false"...)
			}
		}
	}
	return append(dst, ']'), nil
}

func appendArrayGeneric(dst []byte, elems []Value) ([]byte, error) {
	dst = append(dst, '[')
	var err error
	for i := range elems {
		if i > 0 {
			dst = append(dst, ',')
		}
		if dst, err = appendValue(dst, elems[i]); err != nil {
			return dst, err
		}
	}
	return append(dst, ']'), nil
}

func appendObject(dst []byte, members []Member) ([]byte, error) {
	dst = append(dst, '{')
	var err error
	for i := range members {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = appendQuoted(dst, members[i].Key)
		dst = append(dst, ':')
		if dst, err = appendValue(dst, members[i].Value); err != nil {
			return dst, err
		}
	}
	return append(dst, '}'), nil
}
