package domain

import (
	"strconv"
	"strings"
)

// NextNumericID returns max(numeric ids)+1; non-numeric ids are ignored.
func NextNumericID(existing []string) string {
	next := 1
	for _, id := range existing {
		n, err := strconv.Atoi(strings.TrimSpace(id))
		if err != nil || n < 1 {
			continue
		}
		if n >= next {
			next = n + 1
		}
	}
	return strconv.Itoa(next)
}
