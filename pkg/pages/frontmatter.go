package pages

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Meta is the YAML front matter of a page.
type Meta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Order       int    `yaml:"order"`
	Nav         bool   `yaml:"nav"`
}

// Source is a page file split into front matter and markdown body.
type Source struct {
	Meta Meta
	Body []byte
}

// ParseSource splits content into front matter and body.
// Content without a leading "---" has empty metadata.
func ParseSource(content []byte) (*Source, error) {
	delimiter := []byte("---")

	if !bytes.HasPrefix(content, delimiter) {
		return &Source{Body: content}, nil
	}

	afterFirst := bytes.TrimPrefix(content, delimiter)
	afterFirst = bytes.TrimLeft(afterFirst, "\n\r")

	if len(afterFirst) == 0 {
		return nil, fmt.Errorf("%w: no content after opening delimiter", ErrInvalidFrontmatter)
	}

	endIdx := bytes.Index(afterFirst, delimiter)
	if endIdx == -1 {
		return nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	front := afterFirst[:endIdx]
	bodyStart := endIdx + len(delimiter)
	// Skip one line break after the closing delimiter
	if bodyStart < len(afterFirst) {
		if afterFirst[bodyStart] == '\r' && bodyStart+1 < len(afterFirst) && afterFirst[bodyStart+1] == '\n' {
			bodyStart += 2
		} else if afterFirst[bodyStart] == '\n' {
			bodyStart++
		}
	}

	src := &Source{Body: afterFirst[bodyStart:]}
	if len(bytes.TrimSpace(front)) > 0 {
		if err := yaml.Unmarshal(front, &src.Meta); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}
	return src, nil
}
