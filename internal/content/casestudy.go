package content

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrNoCaseStudy is returned when a project has no markdown case study.
var ErrNoCaseStudy = errors.New("no case study")

// CaseStudy is a project page written as markdown, with optional front
// matter in YAML (---) or TOML (+++).
type CaseStudy struct {
	Title   string  `yaml:"title" toml:"title"`
	Summary string  `yaml:"summary" toml:"summary"`
	Hero    *Figure `yaml:"hero" toml:"hero"`
	Body    string  `yaml:"-" toml:"-"`
}

// ReadCaseStudy loads <dir>/<slug>.md.
func ReadCaseStudy(dir, slug string) (*CaseStudy, error) {
	path := filepath.Join(dir, slug+".md")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: %w", slug, ErrNoCaseStudy)
	}
	if err != nil {
		return nil, fmt.Errorf("reading case study %s: %w", path, err)
	}

	cs, err := ParseCaseStudy(data)
	if err != nil {
		return nil, fmt.Errorf("parsing case study %s: %w", path, err)
	}
	return cs, nil
}

// ParseCaseStudy splits front matter from the markdown body.
func ParseCaseStudy(data []byte) (*CaseStudy, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	cs := &CaseStudy{}

	for _, fm := range []struct {
		delim     string
		unmarshal func([]byte, interface{}) error
	}{
		{"---", yaml.Unmarshal},
		{"+++", toml.Unmarshal},
	} {
		meta, body, ok := splitFrontMatter(data, fm.delim)
		if !ok {
			continue
		}
		if err := fm.unmarshal(meta, cs); err != nil {
			return nil, fmt.Errorf("front matter: %w", err)
		}
		cs.Body = string(body)
		return cs, nil
	}

	cs.Body = string(data)
	return cs, nil
}

// splitFrontMatter returns the lines between an opening delimiter on the
// first line and the next line consisting only of the delimiter.
func splitFrontMatter(data []byte, delim string) (meta, body []byte, ok bool) {
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	lines := bytes.SplitAfter(data, []byte("\n"))
	if len(lines) == 0 || string(bytes.TrimRight(lines[0], "\n")) != delim {
		return nil, nil, false
	}
	for i := 1; i < len(lines); i++ {
		if string(bytes.TrimRight(lines[i], "\n")) == delim {
			return bytes.Join(lines[1:i], nil), bytes.Join(lines[i+1:], nil), true
		}
	}
	return nil, nil, false
}
