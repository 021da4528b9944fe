// Package gallery implements the concepts gallery: a grid of preview tiles
// that expand into a lightbox through a shared-element transition.
//
// The package is pure state and geometry. A renderer measures the page
// (tile and grid boxes, viewport, media sizes), feeds events in, and applies
// State back to the document.
package gallery

// MediaKind is what opens in the lightbox.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// Valid reports whether k is a known kind.
func (k MediaKind) Valid() bool {
	return k == MediaImage || k == MediaVideo
}

// ThumbFit is how the preview image fills its 4:3 tile.
type ThumbFit string

const (
	FitCover   ThumbFit = "cover"
	FitContain ThumbFit = "contain"
)

// Entry is one concept in the gallery.
type Entry struct {
	Title    string    `json:"title" yaml:"title" toml:"title"`
	Subtitle string    `json:"subtitle" yaml:"subtitle" toml:"subtitle"`
	Thumb    string    `json:"thumb,omitempty" yaml:"thumb,omitempty" toml:"thumb"`
	Media    MediaKind `json:"media" yaml:"media" toml:"media"`
	MediaSrc string    `json:"media_src" yaml:"media_src" toml:"media_src"`
	Fit      ThumbFit  `json:"fit,omitempty" yaml:"fit,omitempty" toml:"fit"`
}

// HasThumb reports whether the tile shows a preview image.
func (e Entry) HasThumb() bool { return e.Thumb != "" }

// IsVideo reports whether the lightbox plays a video.
func (e Entry) IsVideo() bool { return e.Media == MediaVideo && e.MediaSrc != "" }

// ThumbFit returns the configured fit, defaulting to cover.
func (e Entry) ThumbFit() ThumbFit {
	if e.Fit == FitContain {
		return FitContain
	}
	return FitCover
}
