package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ziadkadry99/on-the-issues/internal/router"
	"github.com/ziadkadry99/on-the-issues/internal/topic"
	"github.com/ziadkadry99/on-the-issues/internal/view"
)

// SiteGenerator renders the topic dataset into a static site.
type SiteGenerator struct {
	Store     *topic.Store
	OutputDir string
	BuildID   string
	Logger    *zap.Logger
}

// NewSiteGenerator creates a SiteGenerator with a fresh build id.
func NewSiteGenerator(store *topic.Store, outputDir string) *SiteGenerator {
	return &SiteGenerator{
		Store:     store,
		OutputDir: outputDir,
		BuildID:   uuid.NewString()[:8],
		Logger:    zap.NewNop(),
	}
}

// IndexEntry is one topic in topics.json.
type IndexEntry struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Href   string      `json:"href"`
	Detail view.Detail `json:"detail"`
}

// Generate writes index.html, one pre-rendered page per topic, the assets and
// topics.json. Returns the number of topic pages written.
func (g *SiteGenerator) Generate() (int, error) {
	if g.Store == nil {
		return 0, fmt.Errorf("no topic store")
	}
	logger := g.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	topicsDir := filepath.Join(g.OutputDir, "topics")
	if err := os.MkdirAll(topicsDir, 0o755); err != nil {
		return 0, err
	}

	// Write static assets.
	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "script.js"), []byte(jsContent), 0o644); err != nil {
		return 0, err
	}

	// The single page: every topic pre-rendered, selection driven by the fragment.
	index, err := view.BuildPage(g.Store, router.Selection{}, view.Options{
		Static:  true,
		BuildID: g.BuildID,
	})
	if err != nil {
		return 0, err
	}
	if err := writePage(filepath.Join(g.OutputDir, "index.html"), index); err != nil {
		return 0, fmt.Errorf("rendering index: %w", err)
	}

	// Pre-rendered pages work without scripts and give each topic a shareable path.
	var entries []IndexEntry
	for _, rec := range g.Store.Records() {
		id := rec.ID()
		sel := router.Resolve(g.Store, id)
		page, err := view.BuildPage(g.Store, sel, view.Options{
			AssetPrefix: "../",
			BuildID:     g.BuildID,
		})
		if err != nil {
			return 0, err
		}
		for i := range page.Nav {
			page.Nav[i].Href = page.Nav[i].ID + ".html"
		}
		if err := writePage(filepath.Join(topicsDir, id+".html"), page); err != nil {
			return 0, fmt.Errorf("rendering %s: %w", rec.Name, err)
		}
		entries = append(entries, IndexEntry{
			ID:     id,
			Name:   rec.Name,
			Href:   "index.html#" + id,
			Detail: view.BuildDetail(g.Store, rec),
		})
		logger.Debug("rendered topic", zap.String("id", id))
	}

	if err := WriteTopicIndex(entries, filepath.Join(g.OutputDir, "topics.json")); err != nil {
		return 0, fmt.Errorf("writing topic index: %w", err)
	}

	logger.Info("site generated",
		zap.String("output", g.OutputDir),
		zap.Int("topics", len(entries)),
		zap.String("build", g.BuildID),
	)
	return len(entries), nil
}

func writePage(path string, page *view.Page) error {
	var buf bytes.Buffer
	if err := view.Render(&buf, page); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// WriteTopicIndex writes the topic index as JSON to the given path.
func WriteTopicIndex(entries []IndexEntry, outputPath string) error {
	if entries == nil {
		entries = []IndexEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
