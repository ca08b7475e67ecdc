package config

// LogFormat selects the zap encoder.
type LogFormat string

const (
	LogConsole LogFormat = "console"
	LogJSON    LogFormat = "json"
)

// Config is the top-level onissues configuration, corresponding to .onissues.yml.
type Config struct {
	DataFile  string        `yaml:"data_file" koanf:"data_file"`
	OutputDir string        `yaml:"output_dir" koanf:"output_dir"`
	Server    ServerConfig  `yaml:"server" koanf:"server"`
	Extract   ExtractConfig `yaml:"extract" koanf:"extract"`
	Log       LogConfig     `yaml:"log" koanf:"log"`
}

// ServerConfig holds preview server settings.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Watch           bool `yaml:"watch" koanf:"watch"`
}

// ExtractConfig controls how quotes are pulled out of scraped articles.
type ExtractConfig struct {
	ArticlesDir string   `yaml:"articles_dir" koanf:"articles_dir"`
	Include     []string `yaml:"include" koanf:"include"`
	Exclude     []string `yaml:"exclude" koanf:"exclude"`
	Side        string   `yaml:"side" koanf:"side"`
	MinLength   int      `yaml:"min_length" koanf:"min_length"`
	MaxQuotes   int      `yaml:"max_quotes" koanf:"max_quotes"` // per topic, 0 = unlimited
	Cache       string   `yaml:"cache" koanf:"cache"`           // parsed-article cache, "" disables
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string    `yaml:"level" koanf:"level"`
	Format LogFormat `yaml:"format" koanf:"format"`
}
