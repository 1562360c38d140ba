package common

import "strings"

// WipeByteArray zeroes buf in place. Used for passwords read from the terminal.
func WipeByteArray(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}

// SplitTrim splits s on sep, trims every part and drops empty ones.
// The result is never nil.
func SplitTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Blank reports whether any of the values is empty after trimming.
func Blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
