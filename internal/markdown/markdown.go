// Package markdown renders page bodies with goldmark and generates the
// table-of-contents markup consumed by the outline parser.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithAttribute(),
		),
	)
}

// Render converts a markdown body (frontmatter already removed) to HTML.
// Headings carry the same ids TableOfContents links to.
func Render(body []byte) (string, error) {
	var buf bytes.Buffer
	if err := newMarkdown().Convert(body, &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// Heading is a heading found in a markdown body.
type Heading struct {
	Level int
	ID    string
	Text  string
}

// Headings parses body and returns its headings in document order.
func Headings(body []byte) []Heading {
	root := newMarkdown().Parser().Parse(text.NewReader(body), parser.WithContext(parser.NewContext()))

	var out []Heading
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		h, ok := n.(*gmast.Heading)
		if !ok {
			return gmast.WalkContinue, nil
		}
		id, _ := h.AttributeString("id")
		heading := Heading{Level: h.Level, Text: inlineText(h, body)}
		switch v := id.(type) {
		case []byte:
			heading.ID = string(v)
		case string:
			heading.ID = v
		}
		out = append(out, heading)
		return gmast.WalkSkipChildren, nil
	})
	return out
}

// WordCount counts whitespace separated words in the plain text of body.
func WordCount(body []byte) int {
	root := newMarkdown().Parser().Parse(text.NewReader(body))
	words := 0
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *gmast.Text:
			words += len(bytes.Fields(v.Segment.Value(body)))
		case *gmast.FencedCodeBlock, *gmast.CodeBlock:
			lines := v.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				words += len(bytes.Fields(seg.Value(body)))
			}
			return gmast.WalkSkipChildren, nil
		}
		return gmast.WalkContinue, nil
	})
	return words
}

func inlineText(n gmast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = gmast.Walk(n, func(c gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch v := c.(type) {
		case *gmast.Text:
			buf.Write(v.Segment.Value(source))
			if v.SoftLineBreak() || v.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *gmast.String:
			buf.Write(v.Value)
		}
		return gmast.WalkContinue, nil
	})
	return buf.String()
}
