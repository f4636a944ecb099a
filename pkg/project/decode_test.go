package project

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// encode mimics the Claude projects dirname encoding: every path separator
// becomes a dash, and a dot starting a component becomes a dash as well.
func encode(path string) string {
	encoded := strings.ReplaceAll(path, "/", "-")
	return strings.ReplaceAll(encoded, "-.", "--")
}

func mkdirs(t *testing.T, paths ...string) {
	t.Helper()
	for _, p := range paths {
		if err := os.MkdirAll(p, 0755); err != nil {
			t.Fatal(err)
		}
	}
}

func TestDecodePaths(t *testing.T) {
	root := t.TempDir()

	mkdirs(t,
		filepath.Join(root, "work", "lempire"),
		filepath.Join(root, "work", "my-app"),
		filepath.Join(root, "work", "my", "app"),
		filepath.Join(root, ".meteor"),
	)

	tests := []struct {
		name string
		arg  string
		want []string
	}{
		{
			name: "unambiguous path",
			arg:  encode(filepath.Join(root, "work", "lempire")),
			want: []string{filepath.Join(root, "work", "lempire")},
		},
		{
			name: "dash is ambiguous between separator and literal",
			arg:  encode(filepath.Join(root, "work", "my-app")),
			want: []string{
				filepath.Join(root, "work", "my-app"),
				filepath.Join(root, "work", "my", "app"),
			},
		},
		{
			name: "dot-prefixed component",
			arg:  encode(filepath.Join(root, ".meteor")),
			want: []string{filepath.Join(root, ".meteor")},
		},
		{
			name: "nonexistent path",
			arg:  encode(filepath.Join(root, "work", "nope")),
			want: nil,
		},
		{
			name: "empty name",
			arg:  "-",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodePaths(tt.arg)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DecodePaths(%q) = %v, expected %v", tt.arg, got, tt.want)
			}
		})
	}
}

func TestDecodePathsResultsAreSorted(t *testing.T) {
	root := t.TempDir()
	mkdirs(t,
		filepath.Join(root, "a-b", "c"),
		filepath.Join(root, "a", "b", "c"),
		filepath.Join(root, "a", "b-c"),
	)

	got := DecodePaths(encode(filepath.Join(root, "a", "b", "c")))
	// byte order: '-' sorts before '/'
	want := []string{
		filepath.Join(root, "a-b", "c"),
		filepath.Join(root, "a", "b-c"),
		filepath.Join(root, "a", "b", "c"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecodePaths = %v, expected %v", got, want)
	}
}
