package main

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"arctraders-backend/lib/scrapers/wiki"
	"arctraders-backend/lib/serviceutil"
	"arctraders-backend/lib/telemetry"

	"github.com/spf13/cobra"
)

var sourceUrl string
var outputPath string

var rootCmd = &cobra.Command{
	Use:   "catalog-scraper",
	Short: "Scrapes the wiki's blueprints table into the item catalog JSON.",
	Run: func(cmd *cobra.Command, args []string) {
		client, err := wiki.NewClient(sourceUrl)
		if err != nil {
			serviceutil.Fatal("invalid source url", err)
		}

		rows, err := client.FetchBlueprints(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to fetch blueprints", err)
		}
		entries := wiki.BuildCatalog(rows)

		contents, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			serviceutil.Fatal("failed to marshal catalog", err)
		}
		err = os.MkdirAll(filepath.Dir(outputPath), 0755)
		if err != nil {
			serviceutil.Fatal("failed to create output directory", err)
		}
		err = os.WriteFile(outputPath, contents, 0644)
		if err != nil {
			serviceutil.Fatal("failed to write catalog", err)
		}

		slog.Info("catalog written",
			"rows", len(rows),
			"entries", len(entries),
			"output", outputPath,
		)
	},
}

func main() {
	telemetry.InitSlog(true)

	rootCmd.Flags().StringVar(&sourceUrl, "url", wiki.DefaultUrl, "source page to scrape")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "data/catalog.json", "output JSON path")

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
