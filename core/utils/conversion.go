package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToUint converts path params, flags and decoded JSON numbers to a positive id.
// It returns false for zero, negative, fractional or non-numeric input.
func ToUint(val any) (uint, bool) {
	switch v := val.(type) {
	case uint:
		return v, v > 0
	case int:
		if v <= 0 {
			return 0, false
		}
		return uint(v), true
	case int64:
		if v <= 0 {
			return 0, false
		}
		return uint(v), true
	case float64:
		if v <= 0 || v != float64(uint64(v)) {
			return 0, false
		}
		return uint(v), true
	case string:
		n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil || n == 0 {
			return 0, false
		}
		return uint(n), true
	case []byte:
		return ToUint(string(v))
	default:
		return ToUint(fmt.Sprintf("%v", v))
	}
}
