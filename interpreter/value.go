package interpreter

import (
	"fmt"
	"math"
	"strconv"
)

// IsTruthy: false and nil are falsy, everything else is truthy.
func IsTruthy(v Value) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	}
	return true
}

// IsEqual compares values of the same kind. Values of different kinds are
// never equal. Objects are equal if they are identical.
func IsEqual(a, b Value) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	case float64:
		y, ok := b.(float64)
		return ok && x == y
	case string:
		y, ok := b.(string)
		return ok && x == y
	}
	return a == b
}

// Stringify renders a value the way 'print' shows it.
func Stringify(v Value) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return formatNumber(x)
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprintf("%v", v)
}

// formatNumber prints integral numbers without a decimal point.
func formatNumber(n float64) string {
	switch {
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	case math.IsNaN(n):
		return "NaN"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
