package sysinfo

import "testing"

func TestGetMachine(t *testing.T) {
	m := GetMachine()
	if m.Hostname == "" {
		t.Error("expected a hostname")
	}
	if m.Platform == "" {
		t.Error("expected a platform")
	}
}

func TestMatchBrowser(t *testing.T) {
	tests := []struct {
		proc string
		want string
	}{
		{"chrome", "Chrome"},
		{"chrome.exe", "Chrome"},
		{"Chromium", "Chrome"},
		{"msedge.exe", "Edge"},
		{"firefox", "Firefox"},
		{"Safari", "Safari"},
		{"systemd", ""},
		{"chrome_crashpad_handler", ""},
	}
	for _, tt := range tests {
		if got := matchBrowser(tt.proc); got != tt.want {
			t.Errorf("matchBrowser(%q) = %q, want %q", tt.proc, got, tt.want)
		}
	}
}

func TestRunningBrowsersDoesNotFail(t *testing.T) {
	running := RunningBrowsers()
	if _, ok := running[""]; ok {
		t.Error("empty browser key must not be present")
	}
}
