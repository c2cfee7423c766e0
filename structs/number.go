package structs

import (
	"fmt"
	"strconv"
	"strings"
)

// JSONNumber decodes a JSON number that clients may also send as a numeric
// string ("10" instead of 10). An empty string decodes to zero.
type JSONNumber float64

func (n *JSONNumber) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("invalid number: %s", s)
		}
		if strings.TrimSpace(unquoted) == "" {
			*n = 0
			return nil
		}
		s = unquoted
	}
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number: %s", s)
	}
	*n = JSONNumber(val)
	return nil
}

func (n JSONNumber) Float64() float64 {
	return float64(n)
}
