package render

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// ObjectPlaceholder is the text produced for values that have no string
// conversion of their own (structs, maps, channels, ...).
const ObjectPlaceholder = "[object]"

// Escape converts v to text and escapes it for safe inclusion in HTML
// content and quoted attribute values.
//
// It is the only escaping routine in the package: attribute names,
// attribute values and text children all go through it.
func Escape(v any) string {
	return escapeHTML(stringify(v))
}

// escapeHTML replaces & < > " ' with their named entities in a single
// left-to-right pass. It works on bytes, so invalid UTF-8 passes through
// unchanged.
func escapeHTML(s string) string {
	if !strings.ContainsAny(s, `&<>"'`) {
		return s
	}

	var buf strings.Builder
	buf.Grow(len(s) + 16)

	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&apos;")
		default:
			buf.WriteByte(c)
		}
	}

	return buf.String()
}

// stringify converts an arbitrary value to its text form.
func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case SafeHTML:
		return string(x)
	case bool:
		if x {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return formatFloat(float64(x), 32)
	case float64:
		return formatFloat(x, 64)
	case []byte:
		return string(x)
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	}

	// Named scalar types (type Count int, type Label string, ...)
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return stringify(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(rv.Float(), 64)
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "null"
		}
		return stringify(rv.Elem().Interface())
	}

	return ObjectPlaceholder
}

// formatFloat uses the shortest representation that round-trips. Plain
// decimal notation is kept for magnitudes in [1e-6, 1e21); anything outside
// that range switches to exponent notation with an unpadded exponent
// (1e-7, 1e+21), the way JavaScript prints numbers.
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	case f == 0:
		return "0"
	}

	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}

	// strconv pads the exponent to two digits: 1e-07.
	out := strconv.FormatFloat(f, 'e', -1, bitSize)
	i := strings.IndexByte(out, 'e')
	if i < 0 || i+2 >= len(out) {
		return out
	}
	exp := strings.TrimLeft(out[i+2:], "0")
	if exp == "" {
		exp = "0"
	}
	return out[:i+2] + exp
}
