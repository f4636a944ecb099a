package common

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// ProcessTemplate processes a template with the given arguments.
// It uses Go's text/template engine (html/template would escape shell
// quoting) to substitute variables in the template.
//
// Parameters:
//   - text: The template to process
//   - args: Map of variable names to their values
//
// Returns:
//   - The processed template string with substituted variables
//   - An error if template processing fails
func ProcessTemplate(text string, args map[string]interface{}) (string, error) {
	tmpl, err := template.New("command").
		Option("missingkey=zero").
		Funcs(sprig.FuncMap()).
		Parse(text)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, args); err != nil {
		return "", err
	}

	// fix https://github.com/golang/go/issues/24963
	res := buf.String()
	res = strings.ReplaceAll(res, "<no value>", "")

	return res, nil
}
