package marshal

import (
	"encoding/json"
	"strconv"
	"strings"

	"codelab/internal/executor/value"
)

const javaIntMax = 2147483647

// JavaLiteral renders a Value as a Java literal expression. Integers beyond
// 32-bit range get an L suffix; homogeneous primitive lists become native
// arrays so parameter types like int[] resolve to the right overload.
func JavaLiteral(v value.Value) string {
	switch v.Kind() {
	case value.KindNull:
		return "null"
	case value.KindBool:
		if v.AsBool() {
			return "true"
		}
		return "false"
	case value.KindInt:
		i := v.AsInt()
		if i > javaIntMax || i < -javaIntMax-1 {
			return strconv.FormatInt(i, 10) + "L"
		}
		return strconv.FormatInt(i, 10)
	case value.KindFloat:
		return javaFloat(v.AsFloat())
	case value.KindString:
		return `"` + escapeString(v.AsString()) + `"`
	case value.KindList:
		return javaArrayLiteral(v)
	default:
		// Maps have no natural Java literal; pass the JSON text through.
		raw, err := json.Marshal(v)
		if err != nil {
			return "null"
		}
		return `"` + escapeString(string(raw)) + `"`
	}
}

func javaArrayLiteral(v value.Value) string {
	items := v.Items()
	elemType := "Object"
	if kind, ok := v.HomogeneousKind(); ok {
		switch kind {
		case value.KindInt:
			elemType = "int"
		case value.KindString:
			elemType = "String"
		case value.KindFloat:
			elemType = "double"
		case value.KindBool:
			elemType = "boolean"
		}
	}
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = JavaLiteral(item)
	}
	return "new " + elemType + "[]{" + strings.Join(parts, ", ") + "}"
}

func javaFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// JavaCallArgs renders a test input as the argument list of a method call.
// A list input becomes one argument per element; anything else is the sole
// argument.
func JavaCallArgs(input value.Value) string {
	if input.Kind() != value.KindList {
		return JavaLiteral(input)
	}
	parts := make([]string, input.Len())
	for i, item := range input.Items() {
		parts[i] = JavaLiteral(item)
	}
	return strings.Join(parts, ", ")
}
