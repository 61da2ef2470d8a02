package util

import (
	"testing"
	"time"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1500, "1.5K"},
		{100000, "100.0K"},
		{1500000, "1.5M"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.Local)
	if got := FormatDate(ts); got != "2026-03-14 09:26" {
		t.Errorf("FormatDate = %q", got)
	}
}
