package config

// Config is the top-level portfolio configuration, corresponding to
// portfolio.yml.
type Config struct {
	Site        SiteConfig    `yaml:"site" koanf:"site"`
	ContentFile string        `yaml:"content_file" koanf:"content_file"`
	ContentDir  string        `yaml:"content_dir" koanf:"content_dir"`
	PublicDir   string        `yaml:"public_dir" koanf:"public_dir"`
	OutputDir   string        `yaml:"output_dir" koanf:"output_dir"`
	Assets      AssetsConfig  `yaml:"assets" koanf:"assets"`
	Server      ServerConfig  `yaml:"server" koanf:"server"`
	Client      ClientConfig  `yaml:"client" koanf:"client"`
	Marquee     MarqueeConfig `yaml:"marquee" koanf:"marquee"`
	Intro       IntroConfig   `yaml:"intro" koanf:"intro"`
	LogLevel    string        `yaml:"log_level" koanf:"log_level"`
}

// SiteConfig overrides the identity fields of the content.
type SiteConfig struct {
	Title string `yaml:"title" koanf:"title"`
	Owner string `yaml:"owner" koanf:"owner"`
}

// AssetsConfig selects which files under public_dir are published.
type AssetsConfig struct {
	Include []string `yaml:"include" koanf:"include"`
	Exclude []string `yaml:"exclude" koanf:"exclude"`
}

// ServerConfig holds settings for `portfolio serve`.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	LiveReload      bool `yaml:"live_reload" koanf:"live_reload"`
	Open            bool `yaml:"open" koanf:"open"`
}

// ClientConfig points at the optional browser client build.
type ClientConfig struct {
	Wasm     string `yaml:"wasm" koanf:"wasm"`
	WasmExec string `yaml:"wasm_exec" koanf:"wasm_exec"`
}

// MarqueeConfig tunes the home page carousel.
type MarqueeConfig struct {
	BaseSpeed       float64 `yaml:"base_speed" koanf:"base_speed"`
	HoverMultiplier float64 `yaml:"hover_multiplier" koanf:"hover_multiplier"`
	DragThreshold   float64 `yaml:"drag_threshold" koanf:"drag_threshold"`
}

// IntroConfig times the intro overlay, in milliseconds.
type IntroConfig struct {
	DurationMS int `yaml:"duration_ms" koanf:"duration_ms"`
	FadeMS     int `yaml:"fade_ms" koanf:"fade_ms"`
}
