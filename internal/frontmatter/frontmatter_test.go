package frontmatter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit_NoFrontmatter_ReturnsBodyOnly(t *testing.T) {
	input := []byte("# Title\n\nHello\n")

	fm, body, had, err := Split(input)
	require.NoError(t, err)
	require.False(t, had)
	require.Empty(t, fm)
	require.Equal(t, input, body)
}

func TestSplit_YAMLFrontmatter(t *testing.T) {
	fm, body, had, err := Split([]byte("---\ntitle: Intro\n---\n# Intro\n"))
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, "title: Intro\n", string(fm))
	require.Equal(t, "# Intro\n", string(body))
}

func TestSplit_CRLF(t *testing.T) {
	fm, body, had, err := Split([]byte("---\r\ntitle: Intro\r\n---\r\nBody\r\n"))
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, "title: Intro\r\n", string(fm))
	require.Equal(t, "Body\r\n", string(body))
}

func TestSplit_EmptyBlock(t *testing.T) {
	fm, body, had, err := Split([]byte("---\n---\nBody\n"))
	require.NoError(t, err)
	require.True(t, had)
	require.Empty(t, fm)
	require.Equal(t, "Body\n", string(body))
}

func TestSplit_ClosingAtEOF(t *testing.T) {
	fm, body, had, err := Split([]byte("---\ntitle: x\n---"))
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, "title: x\n", string(fm))
	require.Empty(t, body)
}

func TestSplit_MissingClosingDelimiter(t *testing.T) {
	_, _, had, err := Split([]byte("---\ntitle: x\n# Title\n"))
	require.Error(t, err)
	require.False(t, had)
	require.True(t, errors.Is(err, ErrMissingClosingDelimiter))
}

func TestParse_DecodesMeta(t *testing.T) {
	meta, fm, body, err := Parse([]byte("---\ntitle: Getting Started\norder: 3\n---\ntext\n"))
	require.NoError(t, err)
	require.Equal(t, Meta{Title: "Getting Started", Order: 3}, meta)
	require.Equal(t, "title: Getting Started\norder: 3\n", string(fm))
	require.Equal(t, "text\n", string(body))
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode([]byte("title: [unclosed"))
	require.Error(t, err)
}

func TestDecode_Empty(t *testing.T) {
	meta, err := Decode(nil)
	require.NoError(t, err)
	require.Equal(t, Meta{}, meta)
}
