package api

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// MarkdownRenderer converts model output to HTML. Raw HTML embedded in the
// Markdown is omitted, not passed through.
type MarkdownRenderer struct {
	md goldmark.Markdown
}

// NewMarkdownRenderer creates a renderer with GitHub-flavoured extensions.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Render converts src to HTML that is safe to embed in a page.
func (m *MarkdownRenderer) Render(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	// goldmark escapes text and drops raw HTML unless html.WithUnsafe is set.
	return template.HTML(buf.String()), nil //nolint:gosec
}
