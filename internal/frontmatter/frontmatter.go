// Package frontmatter splits and rebuilds YAML frontmatter in Markdown documents.
package frontmatter

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates the document started with a YAML
// frontmatter delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

// Document is a Markdown file split into frontmatter fields and body.
type Document struct {
	Fields  map[string]any
	Body    []byte
	HadYAML bool
	Newline string
}

// Parse splits content into frontmatter and body. Content without a leading
// `---` line has empty Fields and the whole input as Body.
func Parse(content []byte) (Document, error) {
	raw, body, had, nl, err := Split(content)
	if err != nil {
		return Document{}, err
	}
	fields, err := ParseYAML(raw)
	if err != nil {
		return Document{}, err
	}
	return Document{Fields: fields, Body: body, HadYAML: had, Newline: nl}, nil
}

// String returns the string field key, if present.
func (d Document) String(key string) (string, bool) {
	s, ok := d.Fields[key].(string)
	return s, ok && s != ""
}

// Bytes reassembles the document. Fields are serialized with sorted keys.
func (d Document) Bytes() ([]byte, error) {
	if len(d.Fields) == 0 && !d.HadYAML {
		return d.Body, nil
	}
	fm, err := SerializeYAML(d.Fields, d.Newline)
	if err != nil {
		return nil, err
	}
	return Join(fm, d.Body, d.Newline), nil
}

// Split separates YAML frontmatter (`---` delimited) from the Markdown body.
func Split(content []byte) (frontmatter []byte, body []byte, had bool, newline string, err error) {
	newline = detectNewline(content)
	open := []byte("---" + newline)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, newline, nil
	}

	start := len(open)
	if bytes.HasPrefix(content[start:], open) {
		return []byte{}, content[start+len(open):], true, newline, nil
	}

	closeSeq := []byte(newline + "---" + newline)
	idx := bytes.Index(content[start:], closeSeq)
	if idx < 0 {
		return nil, nil, false, newline, ErrMissingClosingDelimiter
	}
	end := start + idx + len(newline)
	return content[start:end], content[start+idx+len(closeSeq):], true, newline, nil
}

// Join emits frontmatter between `---` delimiters followed by body.
func Join(frontmatter []byte, body []byte, newline string) []byte {
	if newline == "" {
		newline = "\n"
	}
	delim := []byte("---" + newline)
	out := make([]byte, 0, 2*len(delim)+len(frontmatter)+len(body))
	out = append(out, delim...)
	out = append(out, frontmatter...)
	out = append(out, delim...)
	return append(out, body...)
}

// ParseYAML parses raw YAML frontmatter (without --- delimiters) into a map.
func ParseYAML(frontmatter []byte) (map[string]any, error) {
	fields := map[string]any{}
	if len(bytes.TrimSpace(frontmatter)) == 0 {
		return fields, nil
	}
	if err := yaml.Unmarshal(frontmatter, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

func detectNewline(content []byte) string {
	if i := bytes.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}
