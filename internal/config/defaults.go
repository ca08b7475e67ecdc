package config

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = ".onissues.yml"

// DefaultArticleIncludes are the article files extraction reads by default.
var DefaultArticleIncludes = []string{
	"**/*.html",
	"**/*.htm",
	"**/*.md",
	"**/*.txt",
}

// DefaultArticleExcludes are glob patterns skipped during extraction by default.
var DefaultArticleExcludes = []string{
	".git/**",
	"site/**",
	"**/*.min.js",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DataFile:  "topics.yaml",
		OutputDir: "site",
		Server: ServerConfig{
			Port: 8080,
		},
		Extract: ExtractConfig{
			ArticlesDir: "articles",
			Include:     append([]string(nil), DefaultArticleIncludes...),
			Exclude:     append([]string(nil), DefaultArticleExcludes...),
			Side:        "source",
			MinLength:   20,
			Cache:       ".onissues/cache.db",
		},
		Log: LogConfig{
			Level:  "info",
			Format: LogConsole,
		},
	}
}
