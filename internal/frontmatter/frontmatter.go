// Package frontmatter splits YAML frontmatter from a markdown document and
// decodes the fields the navigation layer reads.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates the document opened a frontmatter block
// with "---" but never closed it.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

// Meta holds the frontmatter fields used for navigation.
type Meta struct {
	Title       string `yaml:"title"`
	Order       int    `yaml:"order"`
	Draft       bool   `yaml:"draft"`
	Fingerprint string `yaml:"fingerprint,omitempty"`
}

// Split separates `---` delimited YAML frontmatter from the markdown body.
// Both LF and CRLF line endings are accepted. Without a leading delimiter, had
// is false and body is the whole input.
func Split(content []byte) (fm []byte, body []byte, had bool, err error) {
	nl := lineEnding(content)
	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, nil
	}

	rest := content[len(open):]
	if bytes.HasPrefix(rest, open) {
		return []byte{}, rest[len(open):], true, nil
	}

	closing := []byte(nl + "---" + nl)
	idx := bytes.Index(rest, closing)
	if idx < 0 {
		// A closing delimiter on the last line has no trailing newline.
		if bytes.HasSuffix(rest, []byte(nl+"---")) {
			return rest[:len(rest)-len("---")], []byte{}, true, nil
		}
		return nil, nil, false, ErrMissingClosingDelimiter
	}
	return rest[:idx+len(nl)], rest[idx+len(closing):], true, nil
}

// Decode parses raw frontmatter (without delimiters) into Meta.
func Decode(fm []byte) (Meta, error) {
	var meta Meta
	if len(bytes.TrimSpace(fm)) == 0 {
		return meta, nil
	}
	if err := yaml.Unmarshal(fm, &meta); err != nil {
		return Meta{}, fmt.Errorf("decode frontmatter: %w", err)
	}
	return meta, nil
}

// Parse splits and decodes a document in one step.
func Parse(content []byte) (Meta, []byte, []byte, error) {
	fm, body, _, err := Split(content)
	if err != nil {
		return Meta{}, nil, nil, err
	}
	meta, err := Decode(fm)
	if err != nil {
		return Meta{}, nil, nil, err
	}
	return meta, fm, body, nil
}

func lineEnding(content []byte) string {
	if i := bytes.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}
