// Package project resolves symbolic project names to working directories.
//
// Resolution first consults the persisted mapping in the configuration file,
// then falls back to filesystem auto-discovery: immediate subdirectories of
// the configured projects root, plus decoded entries of the Claude projects
// directory. Ambiguous discoveries are settled by a blocking user prompt.
package project

import (
	"os"
	"sort"
	"strings"
)

// DecodePaths decodes a Claude projects directory name into the existing
// filesystem paths it may encode.
//
// Claude encodes paths like /Users/alban/work/lempire as
// -Users-alban-work-lempire. The encoding is ambiguous when path components
// contain dashes (e.g. my-project), so every possible dash-to-slash split is
// tried and pruned against the live filesystem. A dash at the start of a
// component encodes a dot prefix ("--meteor" decodes to ".meteor").
//
// Returns the matching directories, sorted and de-duplicated.
func DecodePaths(name string) []string {
	// the leading dash encodes the root "/"
	name = strings.TrimPrefix(name, "-")
	if name == "" {
		return nil
	}

	var results []string
	decodeComponent("", name, &results)

	sort.Strings(results)
	return dedupe(results)
}

// decodeComponent extends prefix with the next path component taken from
// remainder, trying every dash as a potential separator.
func decodeComponent(prefix, remainder string, results *[]string) {
	// A leading dash (or two at the top level) marks a dot-prefixed
	// component.
	dot := ""
	if strings.HasPrefix(remainder, "-") {
		dot = "."
		remainder = strings.TrimPrefix(remainder[1:], "-")
		if remainder == "" {
			return
		}
	}

	for i := 0; i < len(remainder); i++ {
		if remainder[i] != '-' || i == 0 {
			continue
		}
		candidate := prefix + "/" + dot + remainder[:i]
		if isDir(candidate) {
			decodeComponent(candidate, remainder[i+1:], results)
		}
	}

	// No further separators: the whole remainder is the final component.
	candidate := prefix + "/" + dot + remainder
	if isDir(candidate) {
		*results = append(*results, candidate)
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func dedupe(sorted []string) []string {
	out := sorted[:0]
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}
	return out
}
