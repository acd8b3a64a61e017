// Package frontmatter splits a Markdown file into its YAML front matter and body.
package frontmatter

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Meta holds the front matter keys the library understands. Unknown keys are ignored.
type Meta struct {
	Title string `yaml:"title"`
}

// Note is a parsed Markdown file.
type Note struct {
	Meta Meta
	Body string
	// HasFrontMatter is false when the file did not open with a --- block.
	HasFrontMatter bool
}

// Parse splits data into front matter and body. A file is considered to have
// front matter only when its first line is "---" and a later line is "---" or
// "..."; anything else is returned whole as the body.
func Parse(data []byte) (*Note, error) {
	data = bytes.TrimPrefix(data, []byte("\ufeff"))

	header, body, ok := split(data)
	if !ok {
		return &Note{Body: string(data)}, nil
	}

	var meta Meta
	if err := yaml.Unmarshal(header, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	return &Note{
		Meta:           meta,
		Body:           strings.TrimLeft(string(body), "\r\n"),
		HasFrontMatter: true,
	}, nil
}

func split(data []byte) (header, body []byte, ok bool) {
	line, pos := nextLine(data, 0)
	if !isFence(line, false) {
		return nil, nil, false
	}
	start := pos
	for pos < len(data) {
		lineStart := pos
		line, pos = nextLine(data, pos)
		if isFence(line, true) {
			return data[start:lineStart], data[pos:], true
		}
	}
	return nil, nil, false
}

func nextLine(data []byte, from int) ([]byte, int) {
	i := bytes.IndexByte(data[from:], '\n')
	if i < 0 {
		return data[from:], len(data)
	}
	return data[from : from+i], from + i + 1
}

func isFence(line []byte, closing bool) bool {
	l := string(bytes.TrimRight(line, "\r"))
	return l == "---" || (closing && l == "...")
}

// Title picks a document title: the front matter title, else the first
// level-one heading of the body, else fallback.
func (n *Note) Title(fallback string) string {
	if t := strings.TrimSpace(n.Meta.Title); t != "" {
		return t
	}
	sc := bufio.NewScanner(strings.NewReader(n.Body))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "# ") {
			if t := strings.TrimSpace(strings.TrimPrefix(line, "# ")); t != "" {
				return t
			}
		}
	}
	return fallback
}
