package rjson

import (
	"math"
	"sort"
)

// Marshal converts a dynamic Go value to its Value form and encodes it as
// compact JSON bytes. The supported input types are the closed set below;
// anything else is rejected with a SerializationError rather than guessed
// at via reflection.
func Marshal(v any) ([]byte, error) {
	val, err := FromAny(v)
	if err != nil {
		return nil, err
	}
	return EncodeBytes(val)
}

// MarshalString is Marshal returning text.
func MarshalString(v any) (string, error) {
	val, err := FromAny(v)
	if err != nil {
		return "", err
	}
	return Encode(val)
}

// Unmarshal decodes JSON into the dynamic Go representation: nil, bool,
// int64, float64, string, []any and map[string]any.
func Unmarshal(data []byte) (any, error) {
	v, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return ToAny(v), nil
}

// FromAny maps a dynamic Go value onto the Value model. Conversions:
//
//   - nil                      -> null
//   - bool                     -> bool
//   - signed and unsigned ints -> int (uint64 above the int64 range is
//     rejected; the model has no wider integer)
//   - float32, float64         -> float
//   - string, []byte           -> string
//   - []any, []Value           -> array
//   - map[string]any           -> object, keys sorted (Go map iteration
//     order is undefined; sorting keeps output deterministic)
//   - []Member                 -> object in the given order
//   - Value                    -> itself
//
// Maps with non-string keys are rejected with the key error; every other
// type is rejected as unsupported. This conversion boundary is what keeps
// the codec core an exhaustive match over a closed set.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return NullValue(), nil
	case Value:
		return x, nil
	case bool:
		return BoolValue(x), nil
	case int:
		return IntValue(int64(x)), nil
	case int8:
		return IntValue(int64(x)), nil
	case int16:
		return IntValue(int64(x)), nil
	case int32:
		return IntValue(int64(x)), nil
	case int64:
		return IntValue(x), nil
	case uint:
		return uintValue(uint64(x))
	case uint8:
		return IntValue(int64(x)), nil
	case uint16:
		return IntValue(int64(x)), nil
	case uint32:
		return IntValue(int64(x)), nil
	case uint64:
		return uintValue(x)
	case float32:
		return FloatValue(float64(x)), nil
	case float64:
		return FloatValue(x), nil
	case string:
		return StringValue(x), nil
	case []byte:
		return StringValue(string(x)), nil
	case []any:
		elems := make([]Value, len(x))
		for i, e := range x {
			ev, err := FromAny(e)
			if err != nil {
				return Value{}, err
			}
			elems[i] = ev
		}
		return ArrayValue(elems...), nil
	case []Value:
		return ArrayValue(x...), nil
	case []Member:
		return ObjectValue(x...), nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		members := make([]Member, len(keys))
		for i, k := range keys {
			mv, err := FromAny(x[k])
			if err != nil {
				return Value{}, err
			}
			members[i] = Member{Key: k, Value: mv}
		}
		return ObjectValue(members...), nil
	case map[any]any:
		return Value{}, errNonStringKey()
	default:
		return Value{}, errUnsupported(v)
	}
}

func uintValue(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return Value{}, errUnsupported(u)
	}
	return IntValue(int64(u)), nil
}

// ToAny converts a Value tree to the dynamic Go representation. Object
// member order is lost in the resulting map; use Value.Object when order
// matters.
func ToAny(v Value) any {
	switch v.typ {
	case TypeNull:
		return nil
	case TypeBool:
		return v.b
	case TypeInt:
		return v.i
	case TypeFloat:
		return v.f
	case TypeString:
		return v.s
	case TypeArray:
		out := make([]any, len(v.a))
		for i, e := range v.a {
			out[i] = ToAny(e)
		}
		return out
	case TypeObject:
		out := make(map[string]any, len(v.o))
		for _, m := range v.o {
			out[m.Key] = ToAny(m.Value)
		}
		return out
	default:
		return nil
	}
}
