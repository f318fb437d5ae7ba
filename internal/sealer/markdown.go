package sealer

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM, extension.Typographer),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
)

// frontMatter holds the metadata keys the sealer understands.
type frontMatter struct {
	Title string `yaml:"title" toml:"title" json:"title"`
}

// renderMarkdown converts a Markdown source, with optional front matter,
// into a standalone HTML document. The returned title comes from the front
// matter and is empty if none was set.
func renderMarkdown(src []byte) (doc []byte, title string, err error) {
	var meta frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(src), &meta)
	if err != nil {
		return nil, "", fmt.Errorf("parse front matter: %w", err)
	}

	var rendered bytes.Buffer
	if err := markdown.Convert(body, &rendered); err != nil {
		return nil, "", fmt.Errorf("convert markdown: %w", err)
	}

	title = strings.TrimSpace(meta.Title)

	var out bytes.Buffer
	err = documentTemplate.Execute(&out, struct {
		Title string
		Body  template.HTML
	}{Title: title, Body: template.HTML(rendered.String())})
	if err != nil {
		return nil, "", fmt.Errorf("render document: %w", err)
	}

	return out.Bytes(), title, nil
}
