package util

import (
	"math"
	"strconv"
	"strings"

	"github.com/kbukum/conduit/errors"
)

var sizeUnits = []struct {
	suffix     string
	multiplier int64
}{
	{"GB", 1 << 30},
	{"MB", 1 << 20},
	{"KB", 1 << 10},
	{"B", 1},
}

// ParseSize parses a human-readable size such as "64KB", "1MB" or "4096"
// into bytes. Units are binary and case-insensitive. An empty string yields
// defaultBytes; anything unparsable, negative or beyond int64 is an
// INVALID_FORMAT error.
func ParseSize(s string, defaultBytes int64) (int64, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return defaultBytes, nil
	}

	multiplier := int64(1)
	for _, u := range sizeUnits {
		if strings.HasSuffix(s, u.suffix) {
			multiplier = u.multiplier
			s = strings.TrimSpace(strings.TrimSuffix(s, u.suffix))
			break
		}
	}

	val, err := strconv.ParseInt(s, 10, 64)
	if err != nil || val < 0 || val > math.MaxInt64/multiplier {
		return 0, errors.InvalidFormat("size", "<n>[KB|MB|GB]")
	}
	return val * multiplier, nil
}
