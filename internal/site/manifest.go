package site

import (
	"encoding/json"
	"os"

	"github.com/nkuebler/portfolio/internal/content"
	"github.com/nkuebler/portfolio/internal/gallery"
)

// Manifest is the machine-readable index of the site written to
// gallery.json and served from /api/gallery.
type Manifest struct {
	Title    string            `json:"title"`
	Projects []ManifestProject `json:"projects"`
	Concepts []gallery.Entry   `json:"concepts"`
}

// ManifestProject summarises one case study.
type ManifestProject struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Href     string `json:"href"`
	Image    string `json:"image"`
	Summary  string `json:"summary"`
}

// BuildManifest collects the projects and gallery entries of a site.
func BuildManifest(s *content.Site) Manifest {
	m := Manifest{
		Title:    s.Title,
		Projects: make([]ManifestProject, 0, len(s.Projects)),
		Concepts: make([]gallery.Entry, 0, len(s.Concepts)),
	}
	for _, p := range s.Projects {
		m.Projects = append(m.Projects, ManifestProject{
			Slug:     p.Slug,
			Title:    p.Title,
			Subtitle: p.Subtitle,
			Href:     p.Href(),
			Image:    p.Image,
			Summary:  p.Summary,
		})
	}
	m.Concepts = append(m.Concepts, s.Concepts...)
	return m
}

// WriteManifest writes the manifest as JSON to the given path.
func WriteManifest(m Manifest, outputPath string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
