package content

import (
	"bytes"
	"errors"
	"regexp"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates the document started with a header
// delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("header start delimiter found but closing delimiter is missing")

var headerLine = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*:(\s|$)`)

// SplitHeader separates the metadata header block from the document body.
//
// Two forms are recognized:
//   - a `---` fenced leading block,
//   - bare `key: value` lines terminated by a blank line.
//
// If neither form is present, had is false and body is the full input.
func SplitHeader(content []byte) (header []byte, body []byte, had bool, err error) {
	if bytes.HasPrefix(content, []byte("---\n")) || bytes.HasPrefix(content, []byte("---\r\n")) {
		return splitFenced(content)
	}
	return splitBare(content)
}

func splitFenced(content []byte) (header []byte, body []byte, had bool, err error) {
	nl := detectNewline(content)
	open := []byte("---" + nl)

	headerStart := len(open)
	closeLine := []byte("---" + nl)
	if bytes.HasPrefix(content[headerStart:], closeLine) {
		bodyStart := headerStart + len(closeLine)
		return []byte{}, content[bodyStart:], true, nil
	}

	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(content[headerStart:], closeSeq)
	if idx < 0 {
		// A closing fence at EOF without trailing newline also counts.
		tail := []byte(nl + "---")
		if bytes.HasSuffix(content, tail) {
			return content[headerStart : len(content)-len("---")], []byte{}, true, nil
		}
		return nil, nil, false, ErrMissingClosingDelimiter
	}

	headerEnd := headerStart + idx + len(nl)
	bodyStart := headerStart + idx + len(closeSeq)
	return content[headerStart:headerEnd], content[bodyStart:], true, nil
}

func splitBare(content []byte) (header []byte, body []byte, had bool, err error) {
	nl := detectNewline(content)
	lines := bytes.Split(content, []byte(nl))

	end := -1
	for i, line := range lines {
		trimmed := bytes.TrimRight(line, "\r")
		if len(trimmed) == 0 {
			if i == 0 {
				return nil, content, false, nil
			}
			end = i
			break
		}
		if !headerLine.Match(trimmed) {
			return nil, content, false, nil
		}
	}
	if end < 0 {
		// Every line is a key: value pair and there is no body.
		if len(lines) > 0 && headerLine.Match(bytes.TrimRight(lines[0], "\r")) {
			return content, []byte{}, true, nil
		}
		return nil, content, false, nil
	}

	header = bytes.Join(lines[:end], []byte(nl))
	header = append(header, []byte(nl)...)
	body = bytes.Join(lines[end+1:], []byte(nl))
	return header, body, true, nil
}

// ParseHeader parses a raw header block (key: value lines) into a map.
func ParseHeader(header []byte) (map[string]any, error) {
	if len(header) == 0 {
		return map[string]any{}, nil
	}

	var fields map[string]any
	if err := yaml.Unmarshal(header, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

func detectNewline(content []byte) string {
	for i := 0; i+1 < len(content); i++ {
		if content[i] == '\r' && content[i+1] == '\n' {
			return "\r\n"
		}
		if content[i] == '\n' {
			return "\n"
		}
	}
	return "\n"
}
