// Package content is the site's data: identity, navigation, the projects on
// the home carousel with their case studies, the concepts gallery and the
// about, contact and resume pages.
package content

import "github.com/nkuebler/portfolio/internal/gallery"

// Site is everything the generator renders.
type Site struct {
	Title    string          `yaml:"title" json:"title"`
	Owner    string          `yaml:"owner" json:"owner"`
	Tagline  string          `yaml:"tagline" json:"tagline"`
	Nav      []NavItem       `yaml:"nav" json:"nav"`
	Projects []Project       `yaml:"projects" json:"projects"`
	Concepts []gallery.Entry `yaml:"concepts" json:"concepts"`
	About    About           `yaml:"about" json:"about"`
	Contact  Contact         `yaml:"contact" json:"contact"`
	Resume   Resume          `yaml:"resume" json:"resume"`
}

// NavItem is a top-right navigation link.
type NavItem struct {
	Label string `yaml:"label" json:"label"`
	Href  string `yaml:"href" json:"href"`
}

// Project is one carousel item and its case study page.
type Project struct {
	Slug     string    `yaml:"slug" json:"slug"`
	Title    string    `yaml:"title" json:"title"`
	Subtitle string    `yaml:"subtitle" json:"subtitle"`
	Image    string    `yaml:"image" json:"image"`
	Summary  string    `yaml:"summary" json:"summary"`
	Hero     *Figure   `yaml:"hero,omitempty" json:"hero,omitempty"`
	Sections []Section `yaml:"sections" json:"sections"`
}

// Href is the project's page relative to the site root.
func (p Project) Href() string { return "work/" + p.Slug + ".html" }

// Section is a headed block of a case study. Body is markdown.
type Section struct {
	Heading string   `yaml:"heading" json:"heading"`
	Body    string   `yaml:"body" json:"body"`
	Figures []Figure `yaml:"figures,omitempty" json:"figures,omitempty"`
	Video   string   `yaml:"video,omitempty" json:"video,omitempty"`
}

// Figure is a captioned image.
type Figure struct {
	Src     string `yaml:"src" json:"src" toml:"src"`
	Alt     string `yaml:"alt" json:"alt" toml:"alt"`
	Caption string `yaml:"caption,omitempty" json:"caption,omitempty" toml:"caption"`
}

// About is the about page.
type About struct {
	Photo      string   `yaml:"photo" json:"photo"`
	PhotoAlt   string   `yaml:"photo_alt" json:"photo_alt"`
	Paragraphs []string `yaml:"paragraphs" json:"paragraphs"`
	Footnote   string   `yaml:"footnote" json:"footnote"`
}

// Contact is the contact page.
type Contact struct {
	Email  string `yaml:"email" json:"email"`
	Social []Link `yaml:"social" json:"social"`
}

// Link is an external link.
type Link struct {
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
}

// Resume is the resume page. PDF is optional.
type Resume struct {
	Heading string `yaml:"heading" json:"heading"`
	PDF     string `yaml:"pdf,omitempty" json:"pdf,omitempty"`
}
