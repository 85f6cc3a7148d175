// Package render converts backend chat messages into HTML that host UIs can
// embed directly. The copilot backend writes chat_message in markdown; this
// package renders it and strips anything a malicious or confused backend
// could smuggle into the page.
package render

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)

	// UGC policy: formatting, links and code stay, scripts and event
	// handlers do not
	policy = bluemonday.UGCPolicy()
)

// ChatMessage renders a markdown chat message to sanitized HTML
func ChatMessage(source string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return policy.Sanitize(buf.String()), nil
}
