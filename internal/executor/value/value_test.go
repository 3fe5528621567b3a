package value_test

import (
	"encoding/json"
	"testing"

	"codelab/internal/executor/value"
)

func TestUnmarshalKeepsIntFloatDistinction(t *testing.T) {
	var tc value.TestCase
	if err := json.Unmarshal([]byte(`{"input": [1, 2.5, "x"], "expected": 3}`), &tc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	items := tc.Input.Items()
	if len(items) != 3 {
		t.Fatalf("items = %d, want 3", len(items))
	}
	if items[0].Kind() != value.KindInt || items[0].AsInt() != 1 {
		t.Errorf("items[0] = %v, want int 1", items[0])
	}
	if items[1].Kind() != value.KindFloat || items[1].AsFloat() != 2.5 {
		t.Errorf("items[1] = %v, want float 2.5", items[1])
	}
	if items[2].Kind() != value.KindString || items[2].AsString() != "x" {
		t.Errorf("items[2] = %v, want string x", items[2])
	}
	if tc.Expected.Kind() != value.KindInt {
		t.Errorf("expected kind = %v, want int", tc.Expected.Kind())
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	v := value.Map(map[string]value.Value{
		"nums": value.List(value.Int(2), value.Int(7)),
		"ok":   value.Bool(true),
	})
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back value.Value
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !value.Equal(v, back) {
		t.Errorf("round trip changed value: %s", data)
	}
}

func TestCanonical(t *testing.T) {
	cases := []struct {
		in   value.Value
		want string
	}{
		{value.Null(), "null"},
		{value.Bool(true), "true"},
		{value.Int(42), "42"},
		{value.Float(2.5), "2.5"},
		{value.Str("hello"), "hello"},
		{value.List(value.Int(0), value.Int(1)), "[0, 1]"},
		{value.Map(map[string]value.Value{"b": value.Int(2), "a": value.Int(1)}), "{a: 1, b: 2}"},
	}
	for _, c := range cases {
		if got := value.Canonical(c.in); got != c.want {
			t.Errorf("Canonical(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCanonicalEqualNumericTolerance(t *testing.T) {
	if !value.CanonicalEqual("2.0000000001", "2.0") {
		t.Error("2.0000000001 should match 2.0 within tolerance")
	}
	if value.CanonicalEqual("2.01", "2.0") {
		t.Error("2.01 should not match 2.0")
	}
	if !value.CanonicalEqual("[1, 2]", "[1,2]") {
		t.Error("whitespace differences should be ignored")
	}
}

func TestEqualWidensNumeric(t *testing.T) {
	if !value.Equal(value.Int(2), value.Float(2.0)) {
		t.Error("Int(2) should equal Float(2.0)")
	}
	if value.Equal(value.Int(2), value.Float(2.1)) {
		t.Error("Int(2) should not equal Float(2.1)")
	}
}

func TestEqualUnordered(t *testing.T) {
	a := value.List(value.Int(3), value.Int(1), value.Int(2))
	b := value.List(value.Int(1), value.Int(2), value.Int(3))
	if !value.EqualUnordered(a, b) {
		t.Error("permuted lists should match")
	}
	c := value.List(value.Int(1), value.Int(2), value.Int(4))
	if value.EqualUnordered(a, c) {
		t.Error("different elements should not match")
	}
}

func TestHomogeneousKind(t *testing.T) {
	if k, ok := value.List(value.Int(1), value.Int(2)).HomogeneousKind(); !ok || k != value.KindInt {
		t.Errorf("int list: got %v %v", k, ok)
	}
	if _, ok := value.List(value.Int(1), value.Str("a")).HomogeneousKind(); ok {
		t.Error("mixed list should not be homogeneous")
	}
	if _, ok := value.List().HomogeneousKind(); ok {
		t.Error("empty list should not be homogeneous")
	}
	if _, ok := value.List(value.List(value.Int(1))).HomogeneousKind(); ok {
		t.Error("nested list should not be homogeneous")
	}
}
