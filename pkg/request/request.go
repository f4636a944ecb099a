// Package request provides parsing and validation of claunch:// URLs.
//
// It turns the raw URL string delivered by the OS URL-scheme handler into a
// validated LaunchRequest, failing fast on anything malformed before any
// user-facing prompt or filesystem side effect happens.
package request

// LaunchRequest is the validated, decoded form of a claunch:// URL.
//
// At most one of Dir and Project is set. The struct is created by Parse and
// must not be mutated afterwards; the resolver and the command builder only
// read from it.
type LaunchRequest struct {
	// Prompt is the fully percent/plus-decoded prompt text, non-empty and at
	// most MaxPromptLen runes.
	Prompt string

	// Dir is the absolute working directory from the "dir" parameter, or
	// empty when none was supplied.
	Dir string

	// Project is the symbolic project name from the "project" parameter, or
	// empty when none was supplied.
	Project string

	// Version is the protocol version from the "v" parameter, or 0 when the
	// parameter was absent.
	Version int
}
