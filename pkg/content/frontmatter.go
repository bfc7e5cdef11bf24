package content

import (
	"bytes"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// frontmatter is the metadata block at the top of a page file.
type frontmatter struct {
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Date        time.Time `yaml:"date"`
	Draft       bool      `yaml:"draft"`
}

var fmDelimiter = []byte("---")

// splitFrontmatter separates the YAML frontmatter block from the markdown
// body. Files without an opening delimiter are all body.
func splitFrontmatter(raw []byte) (frontmatter, []byte, error) {
	var meta frontmatter

	if !bytes.HasPrefix(raw, fmDelimiter) {
		return meta, raw, nil
	}

	rest := bytes.TrimPrefix(raw, fmDelimiter)
	rest = bytes.TrimLeft(rest, "\r\n")

	end := bytes.Index(rest, fmDelimiter)
	if end == -1 {
		return meta, nil, fmt.Errorf("%w: unterminated frontmatter", ErrMalformedPage)
	}

	block := rest[:end]
	body := rest[end+len(fmDelimiter):]
	body = bytes.TrimLeft(body, "\r\n")

	if len(bytes.TrimSpace(block)) > 0 {
		if err := yaml.Unmarshal(block, &meta); err != nil {
			return meta, nil, fmt.Errorf("%w: %v", ErrMalformedPage, err)
		}
	}

	return meta, body, nil
}
