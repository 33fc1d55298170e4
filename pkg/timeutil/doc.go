// Package timeutil provides current-time helpers and fixed-offset timestamp
// conversion against a static table of supported "UTC±HH:MM" offsets.
//
// The table is not the IANA timezone database: it is the closed list of
// offsets the Next Era services recognize, loaded once as process-wide
// immutable data. Anything outside the table is treated as invalid.
//
// # Usage
//
//	now := timeutil.NowUTC()
//
//	offset := timeutil.ValidateOffset(userInput) // falls back to "UTC+00:00"
//	local := timeutil.ConvertOffset(now, offset)
//
// ConvertOffset is deliberately forgiving: a malformed offset string returns
// the input timestamp unchanged rather than an error, so display-path callers
// never have to branch on conversion failure.
package timeutil
