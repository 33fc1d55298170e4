package timeutil

import (
	"strconv"
	"strings"
	"time"
)

// supportedOffsets is the complete, ordered universe of recognized fixed
// offsets, from UTC-12:00 to UTC+14:00 including the half- and
// quarter-hour zones. Process-wide immutable; not IANA tz data.
var supportedOffsets = []string{
	"UTC-12:00",
	"UTC-11:00",
	"UTC-10:00",
	"UTC-09:30",
	"UTC-09:00",
	"UTC-08:00",
	"UTC-07:00",
	"UTC-06:00",
	"UTC-05:00",
	"UTC-04:30",
	"UTC-04:00",
	"UTC-03:30",
	"UTC-03:00",
	"UTC-02:00",
	"UTC-01:00",
	"UTC+00:00",
	"UTC+01:00",
	"UTC+02:00",
	"UTC+03:00",
	"UTC+03:30",
	"UTC+04:00",
	"UTC+04:30",
	"UTC+05:00",
	"UTC+05:30",
	"UTC+05:45",
	"UTC+06:00",
	"UTC+06:30",
	"UTC+07:00",
	"UTC+08:00",
	"UTC+08:30",
	"UTC+08:45",
	"UTC+09:00",
	"UTC+09:30",
	"UTC+10:00",
	"UTC+10:30",
	"UTC+11:00",
	"UTC+11:30",
	"UTC+12:00",
	"UTC+12:45",
	"UTC+13:00",
	"UTC+14:00",
}

// ZeroOffset is the fallback offset returned by ValidateOffset for
// unrecognized input.
const ZeroOffset = "UTC+00:00"

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// NowLocal returns the current time in the process-local timezone.
func NowLocal() time.Time {
	return time.Now()
}

// SupportedOffsets returns the ordered list of recognized "UTC±HH:MM" offset
// strings. The returned slice is a copy; callers may not mutate the table.
func SupportedOffsets() []string {
	out := make([]string, len(supportedOffsets))
	copy(out, supportedOffsets)
	return out
}

// ValidateOffset returns offset unchanged when it appears in the supported
// table, and ZeroOffset otherwise.
func ValidateOffset(offset string) string {
	for _, supported := range supportedOffsets {
		if supported == offset {
			return offset
		}
	}
	return ZeroOffset
}

// ConvertOffset shifts t by a fixed "UTC±HH:MM" offset: '+' adds the offset,
// '-' subtracts it. Any malformed offset — wrong segment count, wrong length,
// sign not directly after "UTC", or non-numeric hour or minute — is a silent
// no-op returning t unchanged, never an error. Membership in the supported
// table is not required here; pass the offset through ValidateOffset first
// when that policy is wanted.
func ConvertOffset(t time.Time, offset string) time.Time {
	parts := strings.Split(offset, ":")
	if len(parts) != 2 {
		return t
	}
	// parts[0] is "UTC±HH": 3 letters, a sign, two digits.
	if len(parts[0]) != 6 {
		return t
	}

	sign := parts[0][3]
	if sign != '+' && sign != '-' {
		return t
	}

	hours, err := strconv.ParseInt(parts[0][4:6], 10, 64)
	if err != nil {
		return t
	}
	minutes, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return t
	}

	shift := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
	if sign == '-' {
		return t.Add(-shift)
	}
	return t.Add(shift)
}
