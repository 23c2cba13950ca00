package main

import (
	"strings"
	"testing"
)

func TestShortPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"two components", "/srv/www/docs/page.html", "docs/page.html"},
		{"shallow", "/page.html", "/page.html"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shortPath(tt.path); got != tt.want {
				t.Errorf("shortPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestShortPath_Truncates(t *testing.T) {
	long := "/" + strings.Repeat("d", 80) + "/" + strings.Repeat("f", 80) + ".html"
	got := shortPath(long)
	if len(got) > 60 {
		t.Errorf("len(shortPath) = %d, want <= 60", len(got))
	}
	if !strings.HasPrefix(got, "...") {
		t.Errorf("truncated path should start with ellipsis: %q", got)
	}
}
