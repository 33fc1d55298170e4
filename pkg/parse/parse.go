// Package parse provides best-effort string-to-number conversions shared by
// the Next Era services. Every function swallows parse failures and reports
// "no value" instead of an error, for inputs like optional query parameters
// where absence and garbage are handled identically.
package parse

import "strconv"

// OptionalInt32 converts an optional string to an optional int32. A nil
// input or an unparsable value yields nil.
func OptionalInt32(s *string) *int32 {
	if s == nil {
		return nil
	}
	v, err := strconv.ParseInt(*s, 10, 32)
	if err != nil {
		return nil
	}
	out := int32(v)
	return &out
}

// Uint16 converts a string to a uint16, reporting success with the second
// return value.
func Uint16(s string) (uint16, bool) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(v), true
}
