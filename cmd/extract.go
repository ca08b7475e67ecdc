package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/on-the-issues/internal/db"
	"github.com/ziadkadry99/on-the-issues/internal/extract"
	"github.com/ziadkadry99/on-the-issues/internal/progress"
	"github.com/ziadkadry99/on-the-issues/internal/topic"
	"github.com/ziadkadry99/on-the-issues/internal/walker"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Pull quotes for each topic out of scraped articles",
	Long: `Walks the articles directory, splits every HTML, Markdown and text file
into sentences, and keeps the sentences that mention a topic keyword and none
of its excluded keywords. Without --write the quotes are only reported.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("articles", "", "articles directory (defaults to extract.articles_dir)")
	extractCmd.Flags().String("side", "", "side whose keywords are matched and whose responses are filled (friends or source)")
	extractCmd.Flags().Bool("write", false, "write the quotes into the dataset file")
	extractCmd.Flags().Bool("merge", false, "with --write, append to existing responses instead of replacing them")
	extractCmd.Flags().Bool("json", false, "print the result as JSON")
	extractCmd.Flags().Bool("no-cache", false, "parse every article even if it is cached")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	ds, err := topic.Load(cfg.DataFile)
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}

	articlesDir, _ := cmd.Flags().GetString("articles")
	if articlesDir == "" {
		articlesDir = cfg.Extract.ArticlesDir
	}
	sideFlag, _ := cmd.Flags().GetString("side")
	if sideFlag == "" {
		sideFlag = cfg.Extract.Side
	}
	side := topic.Side(sideFlag)
	if side != topic.SideFriends && side != topic.SideSource {
		return fmt.Errorf("invalid side %q: must be friends or source", sideFlag)
	}

	files, err := walker.Walk(walker.WalkerConfig{
		RootDir: articlesDir,
		Include: cfg.Extract.Include,
		Exclude: cfg.Extract.Exclude,
	})
	if err != nil {
		return fmt.Errorf("scanning articles: %w", err)
	}
	logger.Info("articles discovered", zap.String("dir", articlesDir), zap.Int("files", len(files)))
	if len(files) == 0 {
		fmt.Printf("No articles found in %s\n", articlesDir)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ex := extract.New(extract.Options{
		Side:      side,
		MinLength: cfg.Extract.MinLength,
		MaxQuotes: cfg.Extract.MaxQuotes,
	}, progress.NewReporter("Scanning articles"), logger)

	noCache, _ := cmd.Flags().GetBool("no-cache")
	if cfg.Extract.Cache != "" && !noCache {
		database, err := db.Open(cfg.Extract.Cache)
		if err != nil {
			return fmt.Errorf("opening article cache: %w", err)
		}
		defer database.Close()
		ex.WithCache(extract.NewCache(database))
	}

	res, err := ex.Run(ctx, files, ds)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}
	} else {
		printExtractResult(res)
	}

	write, _ := cmd.Flags().GetBool("write")
	if !write {
		return nil
	}
	merge, _ := cmd.Flags().GetBool("merge")
	changed := extract.Apply(ds, res, side, merge)
	if err := topic.Save(ds, cfg.DataFile); err != nil {
		return err
	}
	fmt.Printf("Updated %s: %d new response(s)\n", cfg.DataFile, changed)
	return nil
}

func printExtractResult(res *extract.Result) {
	fmt.Printf("Scanned %d article(s)", res.Files)
	if res.Cached > 0 {
		fmt.Printf(" (%d cached)", res.Cached)
	}
	if res.Failed > 0 {
		fmt.Printf(", %d unreadable", res.Failed)
	}
	fmt.Printf("; %d quote(s)\n\n", res.Total())
	for _, t := range res.Topics {
		if t.Skipped {
			fmt.Printf("%s: no keywords, skipped\n", t.Name)
			continue
		}
		fmt.Printf("%s: %d quote(s)", t.Name, len(t.Quotes))
		if t.Excluded > 0 {
			fmt.Printf(" (%d excluded)", t.Excluded)
		}
		fmt.Println()
		for _, q := range t.Quotes {
			fmt.Printf("  - %s [%s]\n", q.Text, q.Source)
		}
	}
}
