// Utility helpers backing the AQL compiler: scope variable naming and
// operand-literal serialization.
package query

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

const scopeSymbols = "abcdefghijklmnopqrstuvwxyz"

// scopeIdentifier derives the loop variable for a scope from its nesting
// depth: 0 -> "a", 1 -> "b", 25 -> "z", 26 -> "aa" and so on. The positional
// scheme supports unbounded depth, so variables never collide however long
// the join chain gets.
func scopeIdentifier(depth int) string {
	n := len(scopeSymbols)
	suffix := ""
	for depth > n-1 {
		suffix = string(scopeSymbols[depth%n]) + suffix
		depth = depth/n - 1
	}
	return string(scopeSymbols[depth]) + suffix
}

// serializeValue renders one operand as an AQL literal. This is the sole
// injection-safety boundary of the compiler: no operand value reaches the
// output without passing through here. Strings go through JSON encoding so
// quotes, backslashes and control characters are escaped; a Ref is emitted
// as a scope-qualified bare identifier; slices and arrays become bracketed
// list literals.
func serializeValue(scopeVar string, value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "null", nil
	case Ref:
		return scopeVar + "." + string(v), nil
	case string:
		return quoteString(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.FormatInt(int64(v), 10), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case json.Number:
		return v.String(), nil
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		list := make([]any, rv.Len())
		for i := range list {
			list[i] = rv.Index(i).Interface()
		}
		return serializeList(scopeVar, list)
	}
	return "", fmt.Errorf("%w: %T", ErrUnsupportedOperand, value)
}

// serializeList renders a bracketed, comma-separated list literal.
func serializeList(scopeVar string, values []any) (string, error) {
	out := "["
	for i, v := range values {
		literal, err := serializeValue(scopeVar, v)
		if err != nil {
			return "", err
		}
		if i > 0 {
			out += ", "
		}
		out += literal
	}
	return out + "]", nil
}

// quoteVertex produces a single-quoted document-id literal for a traversal
// start vertex, with backslashes and quotes escaped so the value cannot
// unbalance the statement.
func quoteVertex(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}

// quoteString produces a double-quoted, escaped AQL string literal.
func quoteString(s string) string {
	encoded, err := json.Marshal(s)
	if err != nil {
		// json.Marshal of a plain string cannot fail; keep the compiler total.
		return `""`
	}
	return string(encoded)
}
