package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"arctraders-backend/lib/catalog"
	"arctraders-backend/lib/configutil"
	configsqlite "arctraders-backend/lib/configutil/sqlite"
	"arctraders-backend/services/trades"
	tradesdb "arctraders-backend/services/trades/db"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var configPath string
var userID string
var userName string

var rootCmd = &cobra.Command{
	Use:   "arc-cli",
	Short: "Posts, accepts, and completes item trades against the community ledger.",
}

func Execute() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.json5", "path to the config file")
	rootCmd.PersistentFlags().StringVar(&userID, "user", "", "your member id")
	rootCmd.PersistentFlags().StringVar(&userName, "name", "", "your display name")

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

type config struct {
	Database configsqlite.Struct `json:"database"`
	Catalog  string              `json:"catalog"`
	Trades   trades.Options      `json:"trades"`
}

func openService() *trades.Service {
	cfg, err := configutil.ReadConfig[config](configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to read config:", err)
		os.Exit(1)
	}

	db, err := cfg.Database.OpenDB(tradesdb.Schema)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to open database:", err)
		os.Exit(1)
	}

	store, err := catalog.Load(cfg.Catalog)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load catalog:", err)
		os.Exit(1)
	}

	return trades.NewService(db, store, cfg.Trades)
}

func requireUser() {
	if userID == "" {
		fmt.Fprintln(os.Stderr, "specify who you are with --user (and optionally --name)")
		os.Exit(1)
	}
	if userName == "" {
		userName = userID
	}
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.ANSIC)
}

func renderOffers(offers []trades.Offer) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Id", "Status", "Item", "Offerer", "Accepter", "Created", "Completed"})
	for _, o := range offers {
		t.AppendRow(table.Row{
			o.ID,
			o.Status,
			o.Item,
			o.OffererName,
			o.AccepterName,
			o.CreatedAt.Format(time.ANSIC),
			formatTime(o.CompletedAt),
		})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

// fail prints a resolution failure in a readable way, surfacing the
// candidate list when the query was ambiguous.
func fail(err error) {
	var ambiguous *trades.AmbiguousMatch
	if errors.As(err, &ambiguous) {
		fmt.Fprintln(os.Stderr, "your query is ambiguous between:")
		for _, c := range ambiguous.Candidates {
			if c.Offer != nil {
				fmt.Fprintf(os.Stderr, "  %s from %s (%s)\n", c.Name, c.Offer.OffererName, c.Offer.ID)
				continue
			}
			fmt.Fprintf(os.Stderr, "  %s\n", c.Name)
		}
		os.Exit(1)
	}

	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
