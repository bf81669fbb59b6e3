package handler

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer    = bluemonday.UGCPolicy()
	strictPolicy = bluemonday.StrictPolicy()
)

// renderMarkdown converts author supplied markdown into sanitized HTML.
func renderMarkdown(content string) (template.HTML, error) {
	if content == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return "", err
	}

	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes())), nil
}
