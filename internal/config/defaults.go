package config

import (
	"time"

	"github.com/nkuebler/portfolio/internal/chrome"
	"github.com/nkuebler/portfolio/internal/marquee"
)

// DefaultConfigFile is the config file looked up in the working directory.
const DefaultConfigFile = "portfolio.yml"

// DefaultExcludes are glob patterns never copied from public_dir.
var DefaultExcludes = []string{
	"**/.DS_Store",
	"**/Thumbs.db",
	"**/*.psd",
	"**/*.ai",
	"**/.*",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	m := marquee.DefaultOptions()
	in := chrome.DefaultIntroTiming()
	return &Config{
		Site: SiteConfig{
			Title: "Nick Kuebler",
			Owner: "Nick Kuebler",
		},
		ContentFile: "content.yml",
		ContentDir:  "content",
		PublicDir:   "public",
		OutputDir:   "dist",
		Assets: AssetsConfig{
			Include: []string{"**"},
			Exclude: DefaultExcludes,
		},
		Server: ServerConfig{
			Port:       8080,
			LiveReload: true,
		},
		Client: ClientConfig{
			Wasm: "portfolio.wasm",
		},
		Marquee: MarqueeConfig{
			BaseSpeed:       m.BaseSpeed,
			HoverMultiplier: m.HoverMultiplier,
			DragThreshold:   m.DragThreshold,
		},
		Intro: IntroConfig{
			DurationMS: int(in.Duration / time.Millisecond),
			FadeMS:     int(in.FadeAt / time.Millisecond),
		},
		LogLevel: "info",
	}
}

// MarqueeOptions converts the marquee section for the carousel engine.
func (c *Config) MarqueeOptions() marquee.Options {
	return marquee.Options{
		BaseSpeed:       c.Marquee.BaseSpeed,
		HoverMultiplier: c.Marquee.HoverMultiplier,
		DragThreshold:   c.Marquee.DragThreshold,
	}
}

// IntroTiming converts the intro section for the intro sequence.
func (c *Config) IntroTiming() chrome.IntroTiming {
	return chrome.IntroTiming{
		FadeAt:   time.Duration(c.Intro.FadeMS) * time.Millisecond,
		Duration: time.Duration(c.Intro.DurationMS) * time.Millisecond,
	}
}
