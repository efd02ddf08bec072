package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docnav/internal/outline"
)

const guide = `# Guide

Intro text here.

## Install

### From source

### Binary

## Usage

#### Deep detail
`

func TestRender_AddsHeadingIDs(t *testing.T) {
	out, err := Render([]byte("## Install Steps\n\nSome *text*.\n"))
	require.NoError(t, err)
	assert.Contains(t, out, `<h2 id="install-steps">Install Steps</h2>`)
	assert.Contains(t, out, "<em>text</em>")
}

func TestRender_GFMTable(t *testing.T) {
	out, err := Render([]byte("| a | b |\n|---|---|\n| 1 | 2 |\n"))
	require.NoError(t, err)
	assert.Contains(t, out, "<table>")
}

func TestHeadings(t *testing.T) {
	hs := Headings([]byte(guide))
	require.Len(t, hs, 6)
	assert.Equal(t, Heading{Level: 1, ID: "guide", Text: "Guide"}, hs[0])
	assert.Equal(t, Heading{Level: 3, ID: "from-source", Text: "From source"}, hs[2])
}

func TestTableOfContents_Markup(t *testing.T) {
	got := TableOfContents([]byte(guide), "/en/docs/guide", 2, 3)
	want := `<ul>` +
		`<li><p><a href="/en/docs/guide/#install">Install</a></p>` +
		`<ul><li><a href="/en/docs/guide/#from-source">From source</a></li>` +
		`<li><a href="/en/docs/guide/#binary">Binary</a></li></ul></li>` +
		`<li><p><a href="/en/docs/guide/#usage">Usage</a></p></li>` +
		`</ul>`
	assert.Equal(t, want, got)
}

func TestTableOfContents_FeedsOutlineParser(t *testing.T) {
	nodes := outline.Parse(TableOfContents([]byte(guide), "/en/docs/guide", 2, 3))
	require.Len(t, nodes, 2)

	assert.Equal(t, "#install", nodes[0].Href)
	assert.Equal(t, outline.Expanded, nodes[0].State)
	require.Equal(t, 2, nodes[0].Children.Len())
	assert.Equal(t, "#from-source", nodes[0].Children.Nodes()[0].Href)

	// A sibling in a loose list is its own top-level entry.
	assert.Equal(t, "#usage", nodes[1].Href)
	assert.True(t, nodes[1].Children.Allowed())
	assert.Zero(t, nodes[1].Children.Len())
}

func TestTableOfContents_NoHeadingsInRange(t *testing.T) {
	assert.Empty(t, TableOfContents([]byte("# Only title\n\ntext\n"), "/en/docs/a", 2, 3))
}

func TestTableOfContents_EscapesTitle(t *testing.T) {
	got := TableOfContents([]byte("## A & B\n"), "", 2, 3)
	assert.Equal(t, `<ul><li><a href="#a--b">A &amp; B</a></li></ul>`, got)
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 5, WordCount([]byte("# Title\n\nOne two *three* four.\n")))
	assert.Equal(t, 0, WordCount(nil))
}
