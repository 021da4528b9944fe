package walker

import (
	"path/filepath"
	"strings"
)

// MediaKind is the broad class of a published asset.
type MediaKind string

const (
	KindImage    MediaKind = "image"
	KindVideo    MediaKind = "video"
	KindDocument MediaKind = "document"
	KindFont     MediaKind = "font"
	KindOther    MediaKind = "other"
)

// extensionToKind maps file extensions to media kinds.
var extensionToKind = map[string]MediaKind{
	".png":  KindImage,
	".jpg":  KindImage,
	".jpeg": KindImage,
	".gif":  KindImage,
	".webp": KindImage,
	".avif": KindImage,
	".svg":  KindImage,
	".ico":  KindImage,

	".mp4":  KindVideo,
	".webm": KindVideo,
	".mov":  KindVideo,
	".m4v":  KindVideo,

	".pdf": KindDocument,

	".woff":  KindFont,
	".woff2": KindFont,
	".ttf":   KindFont,
	".otf":   KindFont,
}

// DetectKind returns the media kind for a file name based on its extension.
func DetectKind(filename string) MediaKind {
	ext := strings.ToLower(filepath.Ext(filename))
	if kind, ok := extensionToKind[ext]; ok {
		return kind
	}
	return KindOther
}

// Summary totals a set of assets by kind.
type Summary struct {
	Files int
	Bytes int64
	Kinds map[MediaKind]int
}

// Summarize counts files and bytes per media kind.
func Summarize(files []FileInfo) Summary {
	s := Summary{Kinds: make(map[MediaKind]int)}
	for _, f := range files {
		s.Files++
		s.Bytes += f.Size
		s.Kinds[f.Kind]++
	}
	return s
}
