package walker

import (
	"path/filepath"
	"strings"
)

// Format is the markup an article file is written in.
type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
	FormatUnknown  Format = "unknown"
)

// extensionToFormat maps file extensions to article formats.
var extensionToFormat = map[string]Format{
	".html":     FormatHTML,
	".htm":      FormatHTML,
	".xhtml":    FormatHTML,
	".md":       FormatMarkdown,
	".markdown": FormatMarkdown,
	".txt":      FormatText,
	".text":     FormatText,
}

// DetectFormat returns the article format for a filename based on its
// extension. Returns FormatUnknown for unrecognized files.
func DetectFormat(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if f, ok := extensionToFormat[ext]; ok {
		return f
	}
	return FormatUnknown
}
