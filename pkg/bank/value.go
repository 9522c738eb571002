package bank

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"strconv"
)

// ValueType identifies the JSON type held by a Value.
type ValueType int

const (
	// TypeAbsent means the key was not present in the document.
	TypeAbsent ValueType = iota
	// TypeNull is an explicit JSON null.
	TypeNull
	// TypeString is a JSON string.
	TypeString
	// TypeNumber is a JSON number, kept in its original text form.
	TypeNumber
	// TypeBool is a JSON boolean.
	TypeBool
	// TypeRaw is an array or object found where a scalar was expected.
	TypeRaw
)

// String returns the name of the value type.
func (t ValueType) String() string {
	switch t {
	case TypeAbsent:
		return "absent"
	case TypeNull:
		return "null"
	case TypeString:
		return "string"
	case TypeNumber:
		return "number"
	case TypeBool:
		return "bool"
	case TypeRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// Value is a loosely typed JSON scalar. The zero Value is absent.
type Value struct {
	typ  ValueType
	text string
	b    bool
}

// Null returns an explicit null value.
func Null() Value {
	return Value{typ: TypeNull}
}

// StringValue returns a string value.
func StringValue(s string) Value {
	return Value{typ: TypeString, text: s}
}

// IntValue returns a number value holding i.
func IntValue(i int64) Value {
	return Value{typ: TypeNumber, text: strconv.FormatInt(i, 10)}
}

// FloatValue returns a number value holding f.
func FloatValue(f float64) Value {
	return Value{typ: TypeNumber, text: strconv.FormatFloat(f, 'f', -1, 64)}
}

// BoolValue returns a boolean value.
func BoolValue(b bool) Value {
	return Value{typ: TypeBool, b: b}
}

// Type returns the JSON type of the value.
func (v Value) Type() ValueType {
	return v.typ
}

// Present reports whether the key appeared in the document, even as null.
func (v Value) Present() bool {
	return v.typ != TypeAbsent
}

// IsNull reports whether the value is absent or null.
func (v Value) IsNull() bool {
	return v.typ == TypeAbsent || v.typ == TypeNull
}

// Or returns v if the key was present, otherwise def.
func (v Value) Or(def Value) Value {
	if v.Present() {
		return v
	}
	return def
}

// Text returns the string held by a string value.
func (v Value) Text() (string, bool) {
	if v.typ != TypeString {
		return "", false
	}
	return v.text, true
}

// Is reports whether v is a string equal to s.
func (v Value) Is(s string) bool {
	return v.typ == TypeString && v.text == s
}

// Bool returns the boolean held by a bool value.
func (v Value) Bool() (bool, bool) {
	if v.typ != TypeBool {
		return false, false
	}
	return v.b, true
}

// IsTrue reports whether v is exactly the JSON literal true.
func (v Value) IsTrue() bool {
	return v.typ == TypeBool && v.b
}

// Float64 returns the number held by a number value.
func (v Value) Float64() (float64, bool) {
	if v.typ != TypeNumber {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.text, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// String renders the value as a table cell. Absent and null render as the
// empty string, numbers keep their JSON spelling.
func (v Value) String() string {
	switch v.typ {
	case TypeString, TypeNumber, TypeRaw:
		return v.text
	case TypeBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

// Interface returns the value as nil, string, int64, float64 or bool.
func (v Value) Interface() any {
	switch v.typ {
	case TypeString, TypeRaw:
		return v.text
	case TypeBool:
		return v.b
	case TypeNumber:
		if i, err := strconv.ParseInt(v.text, 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(v.text, 64); err == nil {
			return f
		}
		return v.text
	default:
		return nil
	}
}

// Value implements driver.Valuer so a Value can be bound as a SQL parameter.
func (v Value) Value() (driver.Value, error) {
	return v.Interface(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*v = Null()
		return nil
	}

	switch data[0] {
	case 'n':
		*v = Null()
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = StringValue(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = BoolValue(b)
	case '[', '{':
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return err
		}
		*v = Value{typ: TypeRaw, text: buf.String()}
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*v = Value{typ: TypeNumber, text: n.String()}
	}
	return nil
}

// MarshalJSON implements json.Marshaler. Absent values marshal as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.typ {
	case TypeString:
		return json.Marshal(v.text)
	case TypeNumber, TypeRaw:
		return []byte(v.text), nil
	case TypeBool:
		return json.Marshal(v.b)
	default:
		return []byte("null"), nil
	}
}
