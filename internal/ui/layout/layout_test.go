package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{79, 24, true},
		{80, 23, true},
		{200, 60, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Giới thiệu", 20, "Giới thiệu"},
		{"Lý thuyết cốt lõi", 8, "Lý thuy…"},
		{"anything", 0, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Thiết kế & UX", "40%", 100)
	if !strings.Contains(h, AppName) {
		t.Error("header should contain app name")
	}
	if !strings.Contains(h, "Thiết kế & UX") {
		t.Error("header should contain title")
	}
	if !strings.Contains(h, "40%") {
		t.Error("header should contain status")
	}
	if w := lipgloss.Width(h); w != 100 {
		t.Errorf("header width = %d, want 100", w)
	}
}

func TestRenderHeader_LongTitleTruncated(t *testing.T) {
	title := strings.Repeat("x", 200)
	h := RenderHeader(title, "100%", 80)
	if w := lipgloss.Width(h); w != 80 {
		t.Errorf("header width = %d, want 80", w)
	}
	if !strings.Contains(h, "…") {
		t.Error("long title should be truncated with an ellipsis")
	}
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "→", Description: "Next"}, {Key: "q", Description: "Quit"}}, 80)
	for _, want := range []string{"Next", "Quit"} {
		if !strings.Contains(f, want) {
			t.Errorf("footer missing %q", want)
		}
	}
}

func TestRenderFrameHeight(t *testing.T) {
	header := RenderHeader("t", "", 80)
	footer := RenderFooter(nil, 80)
	frame := RenderFrame(header, strings.Repeat("line\n", 100), footer, 80, 24)
	if h := lipgloss.Height(frame); h != 24 {
		t.Errorf("frame height = %d, want 24", h)
	}
}
