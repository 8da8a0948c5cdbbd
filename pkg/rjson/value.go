package rjson

// Type identifies the variant held by a Value.
type Type uint8

const (
	// TypeInvalid is the zero Value. It is not encodable; handing one to
	// the encoder yields a SerializationError.
	TypeInvalid Type = iota
	TypeNull
	TypeBool
	TypeInt
	TypeFloat
	TypeString
	TypeArray
	TypeObject
)

// String returns the variant name for diagnostics.
func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	default:
		return "invalid"
	}
}

// Value is the closed tagged union the codec operates on: null, bool,
// int64, float64, string, array, or object. The encoder never mutates a
// Value; the decoder returns freshly built trees.
//
// Object keys are always strings and member order is preserved, so encode
// output reflects insertion order with no implicit sorting.
type Value struct {
	typ Type
	b   bool
	i   int64
	f   float64
	s   string
	a   []Value
	o   []Member
}

// Member is one key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// NullValue returns the JSON null.
func NullValue() Value {
	return Value{typ: TypeNull}
}

// BoolValue returns a JSON boolean.
func BoolValue(b bool) Value {
	return Value{typ: TypeBool, b: b}
}

// IntValue returns a JSON number holding a 64-bit signed integer.
func IntValue(i int64) Value {
	return Value{typ: TypeInt, i: i}
}

// FloatValue returns a JSON number holding a 64-bit float. The value must
// be finite by the time it reaches the encoder; NaN and infinities are
// rejected there, not here.
func FloatValue(f float64) Value {
	return Value{typ: TypeFloat, f: f}
}

// StringValue returns a JSON string.
func StringValue(s string) Value {
	return Value{typ: TypeString, s: s}
}

// ArrayValue returns a JSON array over the given elements. The slice is
// used as-is, not copied.
func ArrayValue(elems ...Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{typ: TypeArray, a: elems}
}

// ObjectValue returns a JSON object over the given members. The slice is
// used as-is, not copied; the caller is responsible for key uniqueness.
func ObjectValue(members ...Member) Value {
	if members == nil {
		members = []Member{}
	}
	return Value{typ: TypeObject, o: members}
}

// Type reports which variant the Value holds.
func (v Value) Type() Type { return v.typ }

// IsNull reports whether the Value is the JSON null.
func (v Value) IsNull() bool { return v.typ == TypeNull }

// Bool returns the boolean payload. Valid only for TypeBool.
func (v Value) Bool() bool { return v.b }

// Int returns the integer payload. Valid only for TypeInt.
func (v Value) Int() int64 { return v.i }

// Float returns the float payload. Valid only for TypeFloat.
func (v Value) Float() float64 { return v.f }

// Str returns the string payload. Valid only for TypeString. When the
// Value came out of Decode via the zero-copy fast path the returned string
// aliases the decode input; see Decode for the lifetime contract.
func (v Value) Str() string { return v.s }

// Array returns the element slice. Valid only for TypeArray.
func (v Value) Array() []Value { return v.a }

// Object returns the member slice in insertion order. Valid only for
// TypeObject.
func (v Value) Object() []Member { return v.o }

// Len returns the element count for arrays, the member count for objects,
// and the byte length for strings; zero otherwise.
func (v Value) Len() int {
	switch v.typ {
	case TypeArray:
		return len(v.a)
	case TypeObject:
		return len(v.o)
	case TypeString:
		return len(v.s)
	default:
		return 0
	}
}

// Get looks up an object member by key. The second result is false when
// the Value is not an object or the key is absent.
func (v Value) Get(key string) (Value, bool) {
	if v.typ != TypeObject {
		return Value{}, false
	}
	for _, m := range v.o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Equal reports deep equality. Arrays compare element-wise in order;
// objects compare member-wise in insertion order, so two objects with the
// same pairs in different order are not equal.
func (v Value) Equal(w Value) bool {
	if v.typ != w.typ {
		return false
	}
	switch v.typ {
	case TypeNull, TypeInvalid:
		return true
	case TypeBool:
		return v.b == w.b
	case TypeInt:
		return v.i == w.i
	case TypeFloat:
		return v.f == w.f
	case TypeString:
		return v.s == w.s
	case TypeArray:
		if len(v.a) != len(w.a) {
			return false
		}
		for i := range v.a {
			if !v.a[i].Equal(w.a[i]) {
				return false
			}
		}
		return true
	case TypeObject:
		if len(v.o) != len(w.o) {
			return false
		}
		for i := range v.o {
			if v.o[i].Key != w.o[i].Key || !v.o[i].Value.Equal(w.o[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}
