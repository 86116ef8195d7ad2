package util

import (
	"testing"

	"github.com/kbukum/conduit/errors"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"10MB", 10 << 20},
		{"512KB", 512 << 10},
		{"2GB", 2 << 30},
		{"1024", 1024},
		{"64B", 64},
		{"  10MB  ", 10 << 20},
		{"10 mb", 10 << 20},
		{"", 7},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseSize(tc.input, 7)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("ParseSize(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseSize_Invalid(t *testing.T) {
	for _, input := range []string{"invalid", "MB", "-1KB", "1.5MB", "8589934592GB", "17179869185GB", "9223372036854775808"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseSize(input, 0)
			if !errors.HasCode(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("ParseSize(%q): expected INVALID_FORMAT, got %v", input, err)
			}
		})
	}
}

func TestParseSize_Bounds(t *testing.T) {
	got, err := ParseSize("8589934591GB", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := int64(8589934591) << 30; got != want {
		t.Errorf("got %d, want %d", got, want)
	}
	if got, err := ParseSize("9223372036854775807", 0); err != nil || got != 9223372036854775807 {
		t.Errorf("got %d, %v, want MaxInt64", got, err)
	}
}
