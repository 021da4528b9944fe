package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nkuebler/portfolio/internal/gallery"
)

func TestDefault(t *testing.T) {
	s := Default()
	if len(s.Projects) != 3 {
		t.Errorf("projects = %d, want 3", len(s.Projects))
	}
	if len(s.Concepts) != 12 {
		t.Errorf("concepts = %d, want 12", len(s.Concepts))
	}
	if err := s.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
	if s.Concepts[0].Media != gallery.MediaVideo {
		t.Errorf("first concept should be a video")
	}
	if p, ok := s.Project("watershield"); !ok || p.Href() != "work/watershield.html" {
		t.Errorf("Project(watershield) = %+v, %v", p, ok)
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yml")
	data := `
title: Studio K
projects:
  - slug: lamp
    title: Lamp
    subtitle: Desk lamp
    image: /work/lamp.png
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Title != "Studio K" {
		t.Errorf("title = %q", s.Title)
	}
	if len(s.Projects) != 1 || s.Projects[0].Slug != "lamp" {
		t.Errorf("projects = %+v", s.Projects)
	}
	if len(s.Concepts) != 12 {
		t.Errorf("concepts should keep defaults, got %d", len(s.Concepts))
	}
	if s.Contact.Email != "nkuebler@stanford.edu" {
		t.Errorf("contact should keep defaults, got %+v", s.Contact)
	}
}

func TestLoadMissingAndInvalid(t *testing.T) {
	dir := t.TempDir()

	s, err := Load(filepath.Join(dir, "missing.yml"))
	if err != nil || len(s.Projects) != 3 {
		t.Errorf("missing file: %v, %v", s, err)
	}

	bad := filepath.Join(dir, "bad.yml")
	os.WriteFile(bad, []byte("title: [unterminated"), 0644)
	if _, err := Load(bad); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Site)
	}{
		{"empty title", func(s *Site) { s.Title = "" }},
		{"bad slug", func(s *Site) { s.Projects[0].Slug = "Ring Allets" }},
		{"duplicate slug", func(s *Site) { s.Projects[1].Slug = s.Projects[0].Slug }},
		{"project without title", func(s *Site) { s.Projects[2].Title = " " }},
		{"unknown media", func(s *Site) { s.Concepts[3].Media = "gif" }},
		{"missing media src", func(s *Site) { s.Concepts[0].MediaSrc = "" }},
		{"bad fit", func(s *Site) { s.Concepts[0].Fit = "stretch" }},
		{"nav without href", func(s *Site) { s.Nav[0].Href = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(s)
			if err := s.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	s := Default()
	s.ApplyOverrides("  ", "Someone")
	if s.Title != "Nick Kuebler" || s.Owner != "Someone" {
		t.Errorf("title=%q owner=%q", s.Title, s.Owner)
	}
}

func TestParseCaseStudy(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantTitle   string
		wantHero    string
		wantBodyHas string
	}{
		{
			name:        "yaml front matter",
			input:       "---\ntitle: Ringallets\nsummary: Rings tool\nhero:\n  src: /work/r.png\n---\n## Problem\nRings are unstable.\n",
			wantTitle:   "Ringallets",
			wantHero:    "/work/r.png",
			wantBodyHas: "## Problem",
		},
		{
			name:        "toml front matter",
			input:       "+++\ntitle = \"WaterShield\"\n[hero]\nsrc = \"/work/w.png\"\n+++\nBody text\n",
			wantTitle:   "WaterShield",
			wantHero:    "/work/w.png",
			wantBodyHas: "Body text",
		},
		{
			name:        "crlf line endings",
			input:       "---\r\ntitle: Lamp\r\n---\r\nHello\r\n",
			wantTitle:   "Lamp",
			wantBodyHas: "Hello",
		},
		{
			name:        "no front matter",
			input:       "# Just markdown\n\n---\n\nwith a rule",
			wantBodyHas: "with a rule",
		},
		{
			name:        "unterminated front matter is body",
			input:       "---\ntitle: x\n",
			wantBodyHas: "title: x",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs, err := ParseCaseStudy([]byte(tt.input))
			if err != nil {
				t.Fatalf("ParseCaseStudy: %v", err)
			}
			if cs.Title != tt.wantTitle {
				t.Errorf("title = %q, want %q", cs.Title, tt.wantTitle)
			}
			if tt.wantHero != "" && (cs.Hero == nil || cs.Hero.Src != tt.wantHero) {
				t.Errorf("hero = %+v, want %q", cs.Hero, tt.wantHero)
			}
			if !strings.Contains(cs.Body, tt.wantBodyHas) {
				t.Errorf("body %q missing %q", cs.Body, tt.wantBodyHas)
			}
			if tt.wantTitle != "" && strings.Contains(cs.Body, "title") {
				t.Errorf("front matter leaked into body: %q", cs.Body)
			}
		})
	}
}

func TestParseCaseStudyBadFrontMatter(t *testing.T) {
	if _, err := ParseCaseStudy([]byte("+++\ntitle = \n+++\nbody")); err == nil {
		t.Error("expected TOML error")
	}
}

func TestReadCaseStudy(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "lamp.md"), []byte("---\ntitle: Lamp\n---\nText"), 0644)

	cs, err := ReadCaseStudy(dir, "lamp")
	if err != nil {
		t.Fatalf("ReadCaseStudy: %v", err)
	}
	if cs.Title != "Lamp" || cs.Body != "Text" {
		t.Errorf("got %+v", cs)
	}

	_, err = ReadCaseStudy(dir, "missing")
	if !errors.Is(err, ErrNoCaseStudy) {
		t.Errorf("expected ErrNoCaseStudy, got %v", err)
	}
}
