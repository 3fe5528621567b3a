package marshal_test

import (
	"reflect"
	"testing"

	"codelab/internal/executor/marshal"
	"codelab/internal/executor/value"
)

func TestJavaLiteral(t *testing.T) {
	cases := []struct {
		in   value.Value
		want string
	}{
		{value.Null(), "null"},
		{value.Bool(false), "false"},
		{value.Int(42), "42"},
		{value.Int(3000000000), "3000000000L"},
		{value.Float(2.0), "2.0"},
		{value.Float(2.5), "2.5"},
		{value.Str(`he said "hi"`), `"he said \"hi\""`},
		{value.List(value.Int(1), value.Int(2)), "new int[]{1, 2}"},
		{value.List(value.Str("a"), value.Str("b")), `new String[]{"a", "b"}`},
		{value.List(value.Float(1.5), value.Float(2.5)), "new double[]{1.5, 2.5}"},
		{value.List(value.Int(1), value.Str("a")), `new Object[]{1, "a"}`},
	}
	for _, c := range cases {
		if got := marshal.JavaLiteral(c.in); got != c.want {
			t.Errorf("JavaLiteral(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestJavaCallArgsSpreadsList(t *testing.T) {
	input := value.List(value.List(value.Int(1), value.Int(2), value.Int(3)), value.Int(2))
	got := marshal.JavaCallArgs(input)
	want := "new int[]{1, 2, 3}, 2"
	if got != want {
		t.Errorf("JavaCallArgs = %q, want %q", got, want)
	}

	if got := marshal.JavaCallArgs(value.Int(7)); got != "7" {
		t.Errorf("scalar input = %q, want 7", got)
	}
}

func TestCLiteral(t *testing.T) {
	if got := marshal.CLiteral(value.Null(), false); got != "NULL" {
		t.Errorf("C null = %q", got)
	}
	if got := marshal.CLiteral(value.Null(), true); got != "nullptr" {
		t.Errorf("C++ null = %q", got)
	}
	if got := marshal.CLiteral(value.Str("hi"), false); got != `"hi"` {
		t.Errorf("C string = %q", got)
	}
	if got := marshal.CLiteral(value.Str("hi"), true); got != `string("hi")` {
		t.Errorf("C++ string = %q", got)
	}
	if got := marshal.CLiteral(value.Float(2.0), true); got != "2.0" {
		t.Errorf("float = %q, want 2.0", got)
	}
}

func TestCCallArgsArrays(t *testing.T) {
	input := value.List(value.List(value.Int(2), value.Int(7)), value.Int(9))

	c := marshal.CCallArgs(input, 0, false)
	if want := []string{"arr_0_0", "arr_0_0_size", "9"}; !reflect.DeepEqual(c.Args, want) {
		t.Errorf("C args = %v, want %v", c.Args, want)
	}
	if want := []string{"int arr_0_0[] = {2, 7};", "int arr_0_0_size = 2;"}; !reflect.DeepEqual(c.Setup, want) {
		t.Errorf("C setup = %v, want %v", c.Setup, want)
	}

	cpp := marshal.CCallArgs(input, 1, true)
	if want := []string{"arr_1_0", "9"}; !reflect.DeepEqual(cpp.Args, want) {
		t.Errorf("C++ args = %v, want %v", cpp.Args, want)
	}
	if want := []string{"vector<int> arr_1_0 = {2, 7};"}; !reflect.DeepEqual(cpp.Setup, want) {
		t.Errorf("C++ setup = %v, want %v", cpp.Setup, want)
	}
}

func TestCCallArgsMixedListFallsBackToJSON(t *testing.T) {
	input := value.List(value.List(value.Int(1), value.Str("a")))
	got := marshal.CCallArgs(input, 0, false)
	if len(got.Setup) != 0 {
		t.Errorf("mixed list should not declare arrays, got %v", got.Setup)
	}
	if want := []string{`"[1,\"a\"]"`}; !reflect.DeepEqual(got.Args, want) {
		t.Errorf("mixed list args = %v, want %v", got.Args, want)
	}
}

func TestParseResultLines(t *testing.T) {
	stdout := "debug noise\nRESULT:1:PASS:[0, 1]:[0, 1]\nRESULT:2:FAIL:ratio 1:2:ratio 1:3\nRESULT:bad:PASS:x:y\nRESULT:3:ERROR:index out of range:_\n"
	lines := marshal.ParseResultLines(stdout)
	if len(lines) != 3 {
		t.Fatalf("parsed %d lines, want 3", len(lines))
	}
	if lines[0].TestNumber != 1 || lines[0].Status != "PASS" || lines[0].Actual != "[0, 1]" {
		t.Errorf("line 1 = %+v", lines[0])
	}
	// A colon inside actual bleeds the remainder into expected.
	if lines[1].Actual != "ratio 1" || lines[1].Expected != "2:ratio 1:3" {
		t.Errorf("line 2 = %+v", lines[1])
	}
	if lines[2].Status != "ERROR" || lines[2].Actual != "index out of range" {
		t.Errorf("line 3 = %+v", lines[2])
	}
}

func TestResultLinePassedRechecksNumerics(t *testing.T) {
	pass := marshal.ResultLine{Status: "PASS"}
	if !pass.Passed() {
		t.Error("PASS should pass")
	}
	close := marshal.ResultLine{Status: "FAIL", Actual: "2.0000000001", Expected: "2"}
	if !close.Passed() {
		t.Error("near-equal floats should pass the host recheck")
	}
	far := marshal.ResultLine{Status: "FAIL", Actual: "2.01", Expected: "2"}
	if far.Passed() {
		t.Error("2.01 vs 2 should fail")
	}
	errLine := marshal.ResultLine{Status: "ERROR", Actual: "boom"}
	if errLine.Passed() {
		t.Error("ERROR should never pass")
	}
}
