package kinetic

import "testing"

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hero", "hero"},
		{"after scroll", "after_scroll"},
		{"a/b\\c", "a_b_c"},
		{"v1.2-final", "v1.2-final"},
		{"  ", "unlabeled"},
		{"", "unlabeled"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	s := NewScene(10, 10)
	s.Screenshot("one")
	s.Screenshot("two")
	if len(s.screenshotQueue) != 2 || s.screenshotQueue[1] != "two" {
		t.Errorf("queue = %v", s.screenshotQueue)
	}
}
