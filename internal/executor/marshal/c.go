package marshal

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"codelab/internal/executor/value"
)

// CLiteral renders a scalar Value as a C or C++ literal expression.
func CLiteral(v value.Value, cpp bool) string {
	switch v.Kind() {
	case value.KindNull:
		if cpp {
			return "nullptr"
		}
		return "NULL"
	case value.KindBool:
		if v.AsBool() {
			return "true"
		}
		return "false"
	case value.KindInt:
		return strconv.FormatInt(v.AsInt(), 10)
	case value.KindFloat:
		s := strconv.FormatFloat(v.AsFloat(), 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	case value.KindString:
		if cpp {
			return `string("` + escapeString(v.AsString()) + `")`
		}
		return `"` + escapeString(v.AsString()) + `"`
	default:
		// Containers reaching here had no native rendering; pass JSON text.
		raw, err := json.Marshal(v)
		if err != nil {
			return CLiteral(value.Null(), cpp)
		}
		return CLiteral(value.Str(string(raw)), cpp)
	}
}

// CallArgs holds the rendered argument list of one driver call plus the
// setup statements that must be hoisted before it (array declarations and,
// for C, their companion _size variables).
type CallArgs struct {
	Args  []string
	Setup []string
}

// CCallArgs builds the call arguments for a test input. List inputs spread
// into positional arguments; element lists of a homogeneous primitive type
// become native arrays (C arrays travel with an extra <name>_size
// argument). Mixed or nested lists fall back to their JSON text as a
// string, the documented conservative choice when the element type is
// ambiguous.
func CCallArgs(input value.Value, testIdx int, cpp bool) CallArgs {
	if input.Kind() != value.KindList {
		return CallArgs{Args: []string{CLiteral(input, cpp)}}
	}

	var out CallArgs
	for j, item := range input.Items() {
		if item.Kind() != value.KindList {
			out.Args = append(out.Args, CLiteral(item, cpp))
			continue
		}
		kind, ok := item.HomogeneousKind()
		if !ok {
			raw, err := json.Marshal(item)
			if err != nil {
				raw = []byte("null")
			}
			out.Args = append(out.Args, CLiteral(value.Str(string(raw)), cpp))
			continue
		}

		name := fmt.Sprintf("arr_%d_%d", testIdx, j)
		elems := make([]string, item.Len())
		for k, e := range item.Items() {
			elems[k] = CLiteral(e, cpp)
		}
		joined := strings.Join(elems, ", ")

		switch {
		case cpp:
			out.Setup = append(out.Setup, fmt.Sprintf("vector<%s> %s = {%s};", cppElemType(kind), name, joined))
			out.Args = append(out.Args, name)
		case kind == value.KindString:
			out.Setup = append(out.Setup,
				fmt.Sprintf("char* %s[] = {%s};", name, joined),
				fmt.Sprintf("int %s_size = %d;", name, item.Len()))
			out.Args = append(out.Args, name, name+"_size")
		default:
			out.Setup = append(out.Setup,
				fmt.Sprintf("%s %s[] = {%s};", cElemType(kind), name, joined),
				fmt.Sprintf("int %s_size = %d;", name, item.Len()))
			out.Args = append(out.Args, name, name+"_size")
		}
	}
	return out
}

func cppElemType(kind value.Kind) string {
	switch kind {
	case value.KindInt:
		return "int"
	case value.KindFloat:
		return "double"
	case value.KindBool:
		return "bool"
	case value.KindString:
		return "string"
	default:
		return "int"
	}
}

func cElemType(kind value.Kind) string {
	switch kind {
	case value.KindInt:
		return "int"
	case value.KindFloat:
		return "double"
	case value.KindBool:
		return "bool"
	default:
		return "int"
	}
}
