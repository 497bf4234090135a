package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/egg-toss/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd", core.ColorBrown)
	s.DrawText(0, 1, "xyz", core.Color(200))

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "cd") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "xyz") {
		t.Errorf("unknown colors should still render text, line 1 = %q", lines[1])
	}
}

func TestFormatTicks(t *testing.T) {
	tests := []struct {
		ticks, rate int
		expected    string
	}{
		{0, 60, "0.0s"},
		{90, 60, "1.5s"},
		{600, 0, "10.0s"},
		{45, 30, "1.5s"},
	}

	for _, tc := range tests {
		if got := FormatTicks(tc.ticks, tc.rate); got != tc.expected {
			t.Errorf("FormatTicks(%d, %d) = %q, expected %q", tc.ticks, tc.rate, got, tc.expected)
		}
	}
}
