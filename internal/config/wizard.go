package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// detectPublicDir returns the first conventional asset directory that
// exists in the working directory.
func detectPublicDir() string {
	for _, dir := range []string{"public", "static", "assets"} {
		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			return dir
		}
	}
	return "public"
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to portfolio! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Site title.
	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.Site.Title,
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("title cannot be empty")
			}
			return nil
		},
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}
	cfg.Site.Title = strings.TrimSpace(title)

	// 2. Owner.
	ownerPrompt := promptui.Prompt{
		Label:   "Owner name",
		Default: cfg.Site.Title,
	}
	owner, err := ownerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("owner: %w", err)
	}
	cfg.Site.Owner = strings.TrimSpace(owner)

	// 3. Asset directory.
	publicPrompt := promptui.Prompt{
		Label:   "Directory with images and videos",
		Default: detectPublicDir(),
	}
	publicDir, err := publicPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("public dir: %w", err)
	}
	cfg.PublicDir = publicDir

	// 4. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the generated site",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = outputDir

	// 5. Extra exclude patterns.
	excludePrompt := promptui.Prompt{
		Label:   "Extra exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	if excludeStr != "" {
		cfg.Assets.Exclude = append(append([]string{}, DefaultExcludes...), splitAndTrim(excludeStr)...)
	}

	// 6. Server port.
	portPrompt := promptui.Prompt{
		Label:   "Port for portfolio serve",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 7. Live reload.
	reloadPrompt := promptui.Select{
		Label: "Reload the browser when content changes?",
		Items: []string{"yes", "no"},
	}
	reloadIdx, _, err := reloadPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("live reload selection: %w", err)
	}
	cfg.Server.LiveReload = reloadIdx == 0

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
