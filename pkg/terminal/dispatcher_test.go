package terminal

import (
	"context"
	"errors"
	"testing"

	"github.com/alban/claunch/pkg/common"
	"github.com/alban/claunch/pkg/config"
)

// fakeLauncher is a scriptable Launcher that records launch attempts
type fakeLauncher struct {
	name      string
	available bool
	err       error
	launched  []string
}

func (f *fakeLauncher) Name() string    { return f.name }
func (f *fakeLauncher) Available() bool { return f.available }

func (f *fakeLauncher) Launch(ctx context.Context, scriptPath string) error {
	f.launched = append(f.launched, scriptPath)
	return f.err
}

func TestDispatchUsesFirstAvailable(t *testing.T) {
	first := &fakeLauncher{name: "first", available: true}
	second := &fakeLauncher{name: "second", available: true}

	d := NewDispatcher([]Launcher{first, second})
	if err := d.Dispatch(context.Background(), "/tmp/script.sh"); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	if len(first.launched) != 1 || first.launched[0] != "/tmp/script.sh" {
		t.Errorf("first launcher not used: %v", first.launched)
	}
	if len(second.launched) != 0 {
		t.Errorf("second launcher used despite the first succeeding")
	}
}

func TestDispatchSkipsUnavailable(t *testing.T) {
	missing := &fakeLauncher{name: "missing", available: false}
	present := &fakeLauncher{name: "present", available: true}

	d := NewDispatcher([]Launcher{missing, present})
	if err := d.Dispatch(context.Background(), "/tmp/script.sh"); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	if len(missing.launched) != 0 {
		t.Errorf("unavailable launcher must not be attempted")
	}
	if len(present.launched) != 1 {
		t.Errorf("available launcher not used")
	}
}

func TestDispatchFallsThroughOnFailure(t *testing.T) {
	failing := &fakeLauncher{name: "failing", available: true, err: errors.New("window refused")}
	fallback := &fakeLauncher{name: "fallback", available: true}

	d := NewDispatcher([]Launcher{failing, fallback})
	if err := d.Dispatch(context.Background(), "/tmp/script.sh"); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	if len(failing.launched) != 1 {
		t.Errorf("failing launcher should have been attempted")
	}
	if len(fallback.launched) != 1 {
		t.Errorf("fallback launcher not attempted after failure")
	}
}

func TestDispatchExhaustion(t *testing.T) {
	tests := []struct {
		name      string
		launchers []Launcher
	}{
		{
			name:      "empty chain",
			launchers: nil,
		},
		{
			name: "nothing available",
			launchers: []Launcher{
				&fakeLauncher{name: "a", available: false},
				&fakeLauncher{name: "b", available: false},
			},
		},
		{
			name: "everything fails",
			launchers: []Launcher{
				&fakeLauncher{name: "a", available: true, err: errors.New("boom")},
				&fakeLauncher{name: "b", available: true, err: errors.New("boom")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDispatcher(tt.launchers)
			err := d.Dispatch(context.Background(), "/tmp/script.sh")
			if err == nil {
				t.Fatal("exhausted chain must fail")
			}

			var le *common.LaunchError
			if !errors.As(err, &le) || le.Code != common.ExitNoTerminalAvailable {
				t.Errorf("expected NoTerminalAvailable exit code, got %v", err)
			}
		})
	}
}

func TestNewDispatcherForConfig(t *testing.T) {
	tests := []struct {
		name     string
		terminal string
		want     int
	}{
		{"ghostty preference pins CLI and bundle", config.TerminalGhostty, 2},
		{"iterm preference pins iTerm", config.TerminalITerm, 1},
		{"terminal preference pins Terminal.app", config.TerminalDefault, 1},
		{"no preference uses the full chain", "", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDispatcherForConfig(&config.Config{Terminal: tt.terminal})
			if len(d.launchers) != tt.want {
				t.Errorf("chain length = %d, expected %d", len(d.launchers), tt.want)
			}
		})
	}
}

func TestAppleScriptString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "/tmp/claunch-1.sh", `"/tmp/claunch-1.sh"`},
		{"embedded quote", `a"b`, `"a\"b"`},
		{"embedded backslash", `a\b`, `"a\\b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := appleScriptString(tt.in); got != tt.want {
				t.Errorf("appleScriptString(%q) = %q, expected %q", tt.in, got, tt.want)
			}
		})
	}
}
