package bank

import (
	"encoding/json"
	"testing"
)

func TestValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantType ValueType
		wantText string
	}{
		{name: "string", input: `"hello"`, wantType: TypeString, wantText: "hello"},
		{name: "integer", input: `42`, wantType: TypeNumber, wantText: "42"},
		{name: "float", input: `0.85`, wantType: TypeNumber, wantText: "0.85"},
		{name: "true", input: `true`, wantType: TypeBool, wantText: "true"},
		{name: "false", input: `false`, wantType: TypeBool, wantText: "false"},
		{name: "null", input: `null`, wantType: TypeNull, wantText: ""},
		{name: "array", input: `[1, 2]`, wantType: TypeRaw, wantText: "[1,2]"},
		{name: "object", input: `{"a": 1}`, wantType: TypeRaw, wantText: `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Value
			if err := json.Unmarshal([]byte(tt.input), &v); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if v.Type() != tt.wantType {
				t.Errorf("Type() = %v, want %v", v.Type(), tt.wantType)
			}
			if v.String() != tt.wantText {
				t.Errorf("String() = %q, want %q", v.String(), tt.wantText)
			}
		})
	}
}

func TestValue_AbsentVersusNull(t *testing.T) {
	var doc struct {
		A Value `json:"a"`
		B Value `json:"b"`
	}
	if err := json.Unmarshal([]byte(`{"a": null}`), &doc); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if !doc.A.Present() || doc.A.Type() != TypeNull {
		t.Errorf("a: Present() = %v, Type() = %v, want present null", doc.A.Present(), doc.A.Type())
	}
	if doc.B.Present() {
		t.Error("b: Present() = true, want false for missing key")
	}
	if got := doc.B.Or(IntValue(1)); got.String() != "1" {
		t.Errorf("Or() on absent = %q, want %q", got.String(), "1")
	}
	if got := doc.A.Or(IntValue(1)); got.Type() != TypeNull {
		t.Errorf("Or() on null = %v, want null", got.Type())
	}
}

func TestValue_IsTrue(t *testing.T) {
	tests := []struct {
		value Value
		want  bool
	}{
		{BoolValue(true), true},
		{BoolValue(false), false},
		{StringValue("true"), false},
		{IntValue(1), false},
		{Null(), false},
		{Value{}, false},
	}

	for _, tt := range tests {
		if got := tt.value.IsTrue(); got != tt.want {
			t.Errorf("IsTrue(%v %q) = %v, want %v", tt.value.Type(), tt.value.String(), got, tt.want)
		}
	}
}

func TestValue_Interface(t *testing.T) {
	if got := IntValue(3).Interface(); got != int64(3) {
		t.Errorf("IntValue(3).Interface() = %#v, want int64(3)", got)
	}
	if got := FloatValue(0.5).Interface(); got != 0.5 {
		t.Errorf("FloatValue(0.5).Interface() = %#v, want 0.5", got)
	}
	if got := BoolValue(true).Interface(); got != true {
		t.Errorf("BoolValue(true).Interface() = %#v, want true", got)
	}
	if got := Null().Interface(); got != nil {
		t.Errorf("Null().Interface() = %#v, want nil", got)
	}
	if got := StringValue("x").Interface(); got != "x" {
		t.Errorf("StringValue(x).Interface() = %#v, want x", got)
	}
}

func TestValue_MarshalJSON(t *testing.T) {
	values := map[string]Value{
		"s": StringValue(`say "hi"`),
		"n": FloatValue(1.25),
		"b": BoolValue(false),
		"z": Null(),
		"a": {},
	}
	data, err := json.Marshal(values)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"a":null,"b":false,"n":1.25,"s":"say \"hi\"","z":null}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}
