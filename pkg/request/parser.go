package request

import (
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alban/claunch/pkg/common"
)

const (
	// Scheme is the URL scheme literal registered for claunch
	Scheme = "claunch"

	// Host is the only accepted host literal
	Host = "open"

	// MaxPromptLen is the maximum decoded prompt length, in runes
	MaxPromptLen = 2000
)

// SupportedVersions is the set of accepted values for the optional "v"
// parameter.
var SupportedVersions = map[int]bool{1: true}

// Parse parses and validates a raw claunch:// URL string.
//
// Recognized query parameters are "prompt" (required), "dir" and "project"
// (optional, mutually exclusive) and "v" (optional protocol version).
// Duplicate query keys follow a first-occurrence-wins policy, matching
// url.Values.Get.
//
// Parse performs no side effects: it only inspects the filesystem to verify
// that an explicit "dir" exists.
//
// Returns:
//   - The validated LaunchRequest
//   - A LaunchError with the matching exit code on any validation failure
func Parse(raw string) (*LaunchRequest, error) {
	logger := common.GetLogger()

	u, err := url.Parse(raw)
	if err != nil {
		return nil, common.NewLaunchError(common.ExitInvalidURL, "invalid URL: %v", err)
	}

	if u.Scheme != Scheme {
		return nil, common.NewLaunchError(common.ExitInvalidURL, "unexpected scheme: %q (expected %q)", u.Scheme, Scheme)
	}
	if u.Host != Host {
		return nil, common.NewLaunchError(common.ExitInvalidURL, "unexpected host: %q (expected %q)", u.Host, Host)
	}

	// url.Values.Get returns the first value for a key, so repeated
	// parameters resolve first-wins.
	params, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return nil, common.NewLaunchError(common.ExitInvalidURL, "invalid query string: %v", err)
	}

	prompt := params.Get("prompt")
	if strings.TrimSpace(prompt) == "" {
		return nil, common.NewLaunchError(common.ExitMissingPrompt, "missing or empty 'prompt' parameter")
	}
	if n := utf8.RuneCountInString(prompt); n > MaxPromptLen {
		return nil, common.NewLaunchError(common.ExitPromptTooLong, "prompt too long: %d characters (maximum %d)", n, MaxPromptLen)
	}

	version := 0
	if v := params.Get("v"); strings.TrimSpace(v) != "" {
		version, err = strconv.Atoi(v)
		if err != nil {
			return nil, common.NewLaunchError(common.ExitInvalidURL, "invalid 'v' parameter: %q (expected integer)", v)
		}
		if !SupportedVersions[version] {
			return nil, common.NewLaunchError(common.ExitInvalidURL, "unsupported version: %d", version)
		}
	}

	dir := params.Get("dir")
	project := strings.TrimSpace(params.Get("project"))

	if dir != "" && project != "" {
		return nil, common.NewLaunchError(common.ExitConflictingParams, "'dir' and 'project' parameters are mutually exclusive")
	}

	if dir != "" {
		if !filepath.IsAbs(dir) {
			return nil, common.NewLaunchError(common.ExitInvalidDirectory, "directory is not an absolute path: %s", dir)
		}
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			return nil, common.NewLaunchError(common.ExitInvalidDirectory, "directory does not exist: %s", dir)
		}
	}

	logger.Debug("Parsed launch request: prompt=%d chars, dir=%q, project=%q, v=%d",
		utf8.RuneCountInString(prompt), dir, project, version)

	return &LaunchRequest{
		Prompt:  prompt,
		Dir:     dir,
		Project: project,
		Version: version,
	}, nil
}
