package quiz

import (
	"strconv"
	"strings"
)

// Arg is the optional argument that follows a command name.
type Arg struct {
	Raw     string
	Present bool
}

// NoArg is the argument of a command typed without one.
var NoArg = Arg{}

// ArgOf wraps a present argument.
func ArgOf(raw string) Arg {
	return Arg{Raw: raw, Present: true}
}

// ParseID validates an item identifier before any repository access.
//
// Leading whitespace and a sign are accepted and the longest run of leading
// digits is used, so "3.9" and "3abc" both yield 3. Negative ids are rejected.
func ParseID(arg Arg) (int64, error) {
	if !arg.Present {
		return 0, ErrMissingArgument
	}

	raw := strings.TrimSpace(arg.Raw)
	negative := false
	if raw != "" && (raw[0] == '+' || raw[0] == '-') {
		negative = raw[0] == '-'
		raw = raw[1:]
	}

	end := 0
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, ErrNotANumber
	}

	id, err := strconv.ParseInt(raw[:end], 10, 64)
	if err != nil {
		return 0, ErrNotANumber
	}
	if negative && id != 0 {
		return 0, ErrNotANumber
	}
	return id, nil
}
