package html

import (
	"testing"
)

type stringer struct{}

func (stringer) String() string { return "str" }

func TestV(t *testing.T) {
	type point struct {
		X int `json:"x"`
	}
	tests := []struct {
		name string
		in   any
		want Value
	}{
		{"nil", nil, Null()},
		{"bool", true, Bool(true)},
		{"int", 3, Int(3)},
		{"uint8", uint8(7), Int(7)},
		{"float32", float32(1.5), Float(1.5)},
		{"string", "s", String("s")},
		{"strings", []string{"a", "b"}, Strings("a", "b")},
		{"any slice", []any{1, "x", nil}, List(Int(1), String("x"), Null())},
		{"map sorted", map[string]any{"b": 1, "a": 2}, Map(Attrs{{Key: "a", Value: Int(2)}, {Key: "b", Value: Int(1)}})},
		{"int map sorted", map[int]string{10: "x", 2: "y"}, Map(Attrs{{Key: "2", Value: String("y")}, {Key: "10", Value: String("x")}})},
		{"stringer", stringer{}, String("str")},
		{"attrs", NewAttrs("k", "v"), Map(NewAttrs("k", "v"))},
		{"value", Int(9), Int(9)},
		{"nil pointer", (*int)(nil), Null()},
		{"struct", point{X: 1}, Map(NewAttrs("x", 1))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := V(tt.in); !got.Equal(tt.want) {
				t.Errorf("V(%#v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Null(), ""},
		{Bool(true), "1"},
		{Bool(false), ""},
		{Int(-4), "-4"},
		{Float(0.25), "0.25"},
		{Float(2), "2"},
		{Strings("a"), `["a"]`},
		{Map(NewAttrs("b", 1, "a", true)), `{"b":1,"a":true}`},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.v.Kind(), got, tt.want)
		}
	}
}

func TestValue_Truthy(t *testing.T) {
	falsy := []Value{Null(), Bool(false), String(""), String("0"), Int(0), Float(0), List(), Map(nil)}
	for _, v := range falsy {
		if v.Truthy() {
			t.Errorf("%v should be falsy", v.Kind())
		}
	}
	truthy := []Value{Bool(true), String("false"), Int(-1), Float(0.1), Strings("a"), Map(NewAttrs("a", 1))}
	for _, v := range truthy {
		if !v.Truthy() {
			t.Errorf("%v should be truthy", v.Kind())
		}
	}
}

func TestValue_JSON(t *testing.T) {
	var v Value
	in := `{"z":1,"a":[true,null,"x",2.5],"":{"k":"v"}}`
	if err := v.UnmarshalJSON([]byte(in)); err != nil {
		t.Fatal(err)
	}
	if got := v.Map().Keys(); len(got) != 3 || got[0] != "z" || got[1] != "a" || got[2] != "" {
		t.Fatalf("keys = %v", got)
	}
	if items := v.Map().Value("a").List(); len(items) != 4 || !items[3].Equal(Float(2.5)) {
		t.Fatalf("a = %v", v.Map().Value("a"))
	}
	out, err := v.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != in {
		t.Errorf("MarshalJSON = %s, want %s", out, in)
	}

	var a Attrs
	if err := a.UnmarshalJSON([]byte(`[1]`)); err == nil {
		t.Error("Attrs from an array expected error")
	}
	if err := a.UnmarshalJSON([]byte(`{"id":"x"}`)); err != nil || !a.Equal(NewAttrs("id", "x")) {
		t.Errorf("Attrs = %v, %v", a, err)
	}
}

func TestAttrs(t *testing.T) {
	a := NewAttrs("id", "x", "class", "c")
	a.Set("id", String("y"))
	if got := a.Keys(); got[0] != "id" || a.Value("id").String() != "y" {
		t.Errorf("Set must keep position: %v", a)
	}
	a.SetDefault("id", String("z")).SetDefault("title", String("t"))
	if a.Value("id").String() != "y" || a.Value("title").String() != "t" {
		t.Errorf("SetDefault: %v", a)
	}
	if v, ok := a.Remove("class"); !ok || v.String() != "c" || a.Has("class") {
		t.Errorf("Remove: %v %v %v", v, ok, a)
	}
	if _, ok := a.Remove("class"); ok {
		t.Error("Remove of a missing key reported ok")
	}

	b := Attrs{}
	b.Append(String("a")).Append(String("b"))
	b.Set("k", String("c"))
	b.Append(String("d"))
	if got := b.Keys(); len(got) != 4 || got[0] != "0" || got[1] != "1" || got[3] != "2" {
		t.Errorf("Append keys = %v", got)
	}

	nested := NewAttrs("data", NewAttrs("a", 1))
	clone := nested.Clone()
	dm := clone.Value("data").Map()
	dm.Set("a", Int(2))
	if nested.Value("data").Map().Value("a").Int() != 1 {
		t.Error("Clone must be deep")
	}

	if got := NewAttrs("class", []string{"a"}, "hidden", false, "n", nil).String(); got != `{class: ["a"], hidden: false, n: null}` {
		t.Errorf("String() = %s", got)
	}
}

func TestPositional(t *testing.T) {
	tests := map[string]bool{
		"0": true, "12": true, "": false, "01": false, "-0": false, "-1": false, "a": false, "1a": false,
	}
	for key, want := range tests {
		if _, got := positional(key); got != want {
			t.Errorf("positional(%q) = %v, want %v", key, got, want)
		}
	}
}
