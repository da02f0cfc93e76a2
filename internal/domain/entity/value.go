package entity

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Value is a record field kept exactly as the client sent it. Clients send
// numbers and strings interchangeably, so fields are neither coerced nor
// retyped. A zero-length Value means the key was absent.
type Value []byte

// NullValue is the JSON null literal.
var NullValue = Value("null")

// StringValue wraps s as a JSON string.
func StringValue(s string) Value {
	data, _ := json.Marshal(s)

	return Value(data)
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	if len(v) == 0 {
		return []byte("null"), nil
	}

	return v, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	*v = append((*v)[:0:0], bytes.TrimSpace(data)...)

	return nil
}

// UnmarshalParam binds a single form value as a JSON string.
func (v *Value) UnmarshalParam(param string) error {
	*v = StringValue(param)

	return nil
}

// UnmarshalParams binds a repeated form key as an array of strings.
func (v *Value) UnmarshalParams(params []string) error {
	if len(params) == 1 {
		return v.UnmarshalParam(params[0])
	}

	data, err := json.Marshal(params)
	if err != nil {
		return err
	}
	*v = data

	return nil
}

// IsAbsent reports whether the key was missing.
func (v Value) IsAbsent() bool { return len(v) == 0 }

// Truthy applies the loose falsiness rules clients rely on: absent, null,
// false, 0 and the empty string are falsy. Empty arrays and objects are not.
func (v Value) Truthy() bool {
	switch v.kind() {
	case kindAbsent, kindNull:
		return false
	case kindBool:
		return string(v) == "true"
	case kindString:
		s, ok := v.decodeString()
		return ok && s != ""
	case kindNumber:
		f, err := strconv.ParseFloat(string(v), 64)
		return err == nil && f != 0
	default:
		return true
	}
}

// StrictEqual compares two values without type coercion. Strings, numbers,
// booleans and null compare by value; arrays and objects never compare equal.
func (v Value) StrictEqual(other Value) bool {
	k := v.kind()
	if k != other.kind() {
		return false
	}

	switch k {
	case kindAbsent, kindNull:
		return true
	case kindBool:
		return string(v) == string(other)
	case kindString:
		a, okA := v.decodeString()
		b, okB := other.decodeString()
		return okA && okB && a == b
	case kindNumber:
		a, errA := strconv.ParseFloat(string(v), 64)
		b, errB := strconv.ParseFloat(string(other), 64)
		return errA == nil && errB == nil && a == b
	default:
		return false
	}
}

// EqualString reports whether v is the JSON string s.
func (v Value) EqualString(s string) bool {
	decoded, ok := v.decodeString()

	return ok && decoded == s
}

// MatchesParam reports whether a path parameter names v: either v is the
// string param, or v is a number written exactly as param.
func (v Value) MatchesParam(param string) bool {
	if v.kind() == kindNumber {
		return string(v) == param
	}

	return v.EqualString(param)
}

// Text renders v for logs and token claims: strings are unquoted, anything
// else is its JSON literal.
func (v Value) Text() string {
	if s, ok := v.decodeString(); ok {
		return s
	}

	return string(v)
}

type valueKind int

const (
	kindAbsent valueKind = iota
	kindNull
	kindBool
	kindNumber
	kindString
	kindArray
	kindObject
)

func (v Value) kind() valueKind {
	if len(v) == 0 {
		return kindAbsent
	}

	switch v[0] {
	case 'n':
		return kindNull
	case 't', 'f':
		return kindBool
	case '"':
		return kindString
	case '[':
		return kindArray
	case '{':
		return kindObject
	default:
		return kindNumber
	}
}

func (v Value) decodeString() (string, bool) {
	if v.kind() != kindString {
		return "", false
	}

	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", false
	}

	return s, true
}
