package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to path
// and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to onissues! Let's configure your project.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Dataset.
	dataPrompt := promptui.Prompt{
		Label:   "Topic dataset file",
		Default: cfg.DataFile,
	}
	dataFile, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data file: %w", err)
	}

	// 2. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the generated site",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 3. Preview port.
	portPrompt := promptui.Prompt{
		Label:    "Preview server port",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	// 4. Scraped articles.
	articlesPrompt := promptui.Prompt{
		Label:   "Directory holding scraped articles",
		Default: cfg.Extract.ArticlesDir,
	}
	articlesDir, err := articlesPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("articles dir: %w", err)
	}

	includePrompt := promptui.Prompt{
		Label:   "Article include patterns (comma-separated globs)",
		Default: joinComma(DefaultArticleIncludes),
	}
	includeStr, err := includePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("include patterns: %w", err)
	}

	// 5. Side filled by extraction.
	sidePrompt := promptui.Select{
		Label: "Column filled by `onissues extract`",
		Items: []string{"source", "friends"},
	}
	_, side, err := sidePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("side selection: %w", err)
	}

	cfg.DataFile = dataFile
	cfg.OutputDir = outputDir
	cfg.Server.Port = port
	cfg.Extract.ArticlesDir = articlesDir
	cfg.Extract.Include = splitAndTrim(includeStr)
	cfg.Extract.Side = side

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(input string) error {
	p, err := strconv.Atoi(input)
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if p <= 0 || p > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}

func joinComma(items []string) string {
	out := ""
	for i, s := range items {
		if i > 0 {
			out += ", "
		}
		out += s
	}
	return out
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			token := trimSpace(s[start:i])
			if token != "" {
				result = append(result, token)
			}
			start = i + 1
		}
	}
	return result
}

func trimSpace(s string) string {
	i, j := 0, len(s)
	for i < j && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	for j > i && (s[j-1] == ' ' || s[j-1] == '\t') {
		j--
	}
	return s[i:j]
}
