package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alban/claunch/pkg/common"
	"github.com/alban/claunch/pkg/config"
	"github.com/alban/claunch/pkg/utils"
)

// fakePicker records invocations and returns a scripted result
type fakePicker struct {
	calls      int
	candidates []string
	result     string
	err        error
}

func (p *fakePicker) Pick(project string, candidates []string) (string, error) {
	p.calls++
	p.candidates = candidates
	if p.err != nil {
		return "", p.err
	}
	return p.result, nil
}

// newTestConfig returns an empty config bound to a temp file
func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestResolveMappedProject(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(utils.ClaudeProjectsEnv, filepath.Join(t.TempDir(), "missing"))

	cfg := newTestConfig(t)
	cfg.SetProjectMapping("myapp", dir)

	picker := &fakePicker{}
	r := NewResolver(cfg, picker)

	got, err := r.Resolve("myapp")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != dir {
		t.Errorf("Resolve = %q, expected %q", got, dir)
	}
	if picker.calls != 0 {
		t.Errorf("picker should not be consulted on a mapping hit")
	}
}

func TestResolveMappedDirectoryGone(t *testing.T) {
	t.Setenv(utils.ClaudeProjectsEnv, filepath.Join(t.TempDir(), "missing"))

	cfg := newTestConfig(t)
	cfg.SetProjectMapping("myapp", filepath.Join(t.TempDir(), "removed"))

	r := NewResolver(cfg, &fakePicker{})
	_, err := r.Resolve("myapp")

	var le *common.LaunchError
	if !errors.As(err, &le) || le.Code != common.ExitInvalidDirectory {
		t.Errorf("expected InvalidDirectory exit code, got %v", err)
	}
}

func TestResolveSingleMatchAutoSelects(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "myapp")
	if err := os.Mkdir(target, 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv(utils.ClaudeProjectsEnv, filepath.Join(t.TempDir(), "missing"))

	cfg := newTestConfig(t)
	cfg.ProjectsRoot = root

	picker := &fakePicker{}
	r := NewResolver(cfg, picker)

	got, err := r.Resolve("myapp")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != target {
		t.Errorf("Resolve = %q, expected %q", got, target)
	}
	if picker.calls != 0 {
		t.Errorf("single match must be selected silently")
	}

	// The mapping must be persisted so the next run skips discovery
	reloaded, err := config.Load(cfg.Path())
	if err != nil {
		t.Fatal(err)
	}
	if dir, ok := reloaded.ProjectDir("myapp"); !ok || dir != target {
		t.Errorf("mapping not persisted: %q, %v", dir, ok)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "myapp")
	if err := os.Mkdir(target, 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv(utils.ClaudeProjectsEnv, filepath.Join(t.TempDir(), "missing"))

	cfg := newTestConfig(t)
	cfg.ProjectsRoot = root
	r := NewResolver(cfg, &fakePicker{})

	first, err := r.Resolve("myapp")
	if err != nil {
		t.Fatal(err)
	}

	info1, err := os.Stat(cfg.Path())
	if err != nil {
		t.Fatal(err)
	}

	second, err := r.Resolve("myapp")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("resolution not stable: %q then %q", first, second)
	}

	// Second run hits the in-memory mapping and must not rewrite the file
	info2, err := os.Stat(cfg.Path())
	if err != nil {
		t.Fatal(err)
	}
	if !info1.ModTime().Equal(info2.ModTime()) || info1.Size() != info2.Size() {
		t.Errorf("config rewritten on a mapping hit")
	}
}

func TestResolveUnknownProject(t *testing.T) {
	t.Setenv(utils.ClaudeProjectsEnv, filepath.Join(t.TempDir(), "missing"))

	cfg := newTestConfig(t)
	cfg.ProjectsRoot = t.TempDir()

	r := NewResolver(cfg, &fakePicker{})
	_, err := r.Resolve("ghost")

	var le *common.LaunchError
	if !errors.As(err, &le) || le.Code != common.ExitProjectNotFound {
		t.Errorf("expected ProjectNotFound exit code, got %v", err)
	}
}

func TestResolveAmbiguousUsesPicker(t *testing.T) {
	// Two candidates: one from the projects root, one decoded from the
	// Claude projects directory.
	root := t.TempDir()
	fromRoot := filepath.Join(root, "myapp")

	other := t.TempDir()
	fromClaude := filepath.Join(other, "work", "myapp")
	mkdirs(t, fromRoot, fromClaude)

	claudeDir := t.TempDir()
	mkdirs(t, filepath.Join(claudeDir, encode(fromClaude)))
	t.Setenv(utils.ClaudeProjectsEnv, claudeDir)

	cfg := newTestConfig(t)
	cfg.ProjectsRoot = root

	picker := &fakePicker{result: fromClaude}
	r := NewResolver(cfg, picker)

	got, err := r.Resolve("myapp")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != fromClaude {
		t.Errorf("Resolve = %q, expected picker choice %q", got, fromClaude)
	}
	if picker.calls != 1 {
		t.Errorf("picker consulted %d times, expected 1", picker.calls)
	}
	if len(picker.candidates) != 2 {
		t.Errorf("picker offered %v, expected both candidates", picker.candidates)
	}

	// Persisted, so a second resolve skips the picker
	if _, err := r.Resolve("myapp"); err != nil {
		t.Fatal(err)
	}
	if picker.calls != 1 {
		t.Errorf("picker consulted again after persistence")
	}
}

func TestResolveSelectionCancelled(t *testing.T) {
	root := t.TempDir()
	other := t.TempDir()
	fromClaude := filepath.Join(other, "myapp")
	mkdirs(t, filepath.Join(root, "myapp"), fromClaude)

	claudeDir := t.TempDir()
	mkdirs(t, filepath.Join(claudeDir, encode(fromClaude)))
	t.Setenv(utils.ClaudeProjectsEnv, claudeDir)

	cfg := newTestConfig(t)
	cfg.ProjectsRoot = root

	r := NewResolver(cfg, &fakePicker{err: common.ErrCancelled})
	_, err := r.Resolve("myapp")
	if !errors.Is(err, common.ErrCancelled) {
		t.Fatalf("expected cancellation, got %v", err)
	}

	// No mapping may be persisted on cancellation
	if _, statErr := os.Stat(cfg.Path()); !os.IsNotExist(statErr) {
		t.Errorf("config file written despite cancellation")
	}
}
