// Command metaguide prints the day's college football slate ranked by interest.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/preston-bernstein/cfb-meta-service/internal/analysis"
	"github.com/preston-bernstein/cfb-meta-service/internal/app/games"
	"github.com/preston-bernstein/cfb-meta-service/internal/config"
	"github.com/preston-bernstein/cfb-meta-service/internal/logging"
	"github.com/preston-bernstein/cfb-meta-service/internal/providers"
	"github.com/preston-bernstein/cfb-meta-service/internal/providers/espn"
	"github.com/preston-bernstein/cfb-meta-service/internal/providers/fixture"
)

const (
	title      = "College Football Meta Guide"
	emptySlate = "No games matched the filters."
)

type options struct {
	date         string
	scoreboard   string
	top          int
	onlyLive     bool
	includeNotes bool
	showAll      bool
	asJSON       bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	logger := logging.NewLogger(logging.Config{Level: "warn", Output: stderr})

	svc := games.NewService(buildProvider(cfg, opts), logger, nil)
	ranking, err := svc.Rank(ctx, games.Query{
		Date:         opts.date,
		OnlyLive:     opts.onlyLive,
		Featured:     !opts.showAll,
		Limit:        opts.top,
		IncludeNotes: opts.includeNotes,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if opts.asJSON {
		return writeJSON(stdout, stderr, ranking.Games)
	}
	writeTable(stdout, ranking.Games)
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("metaguide", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.date, "date", "", "slate date (YYYYMMDD or YYYY-MM-DD); defaults to today")
	fs.StringVar(&opts.scoreboard, "scoreboard", "", "read a saved scoreboard JSON file instead of fetching")
	fs.IntVar(&opts.top, "top", 10, "number of games to show")
	fs.BoolVar(&opts.onlyLive, "only-live", false, "only games in progress")
	fs.BoolVar(&opts.includeNotes, "include-notes", false, "append event notes to each summary")
	fs.BoolVar(&opts.showAll, "show-all", false, "include games that are neither live nor ranked")
	fs.BoolVar(&opts.asJSON, "json", false, "print export records as JSON")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.top < 0 {
		fmt.Fprintln(stderr, "--top must not be negative")
		return options{}, fmt.Errorf("invalid top %d", opts.top)
	}
	return opts, nil
}

func buildProvider(cfg config.Config, opts options) providers.ScoreboardProvider {
	if opts.scoreboard != "" {
		return fixture.FromFile(opts.scoreboard)
	}
	return espn.NewClient(espn.Config{
		BaseURL: cfg.ESPN.BaseURL,
		Timeout: cfg.ESPN.Timeout,
	})
}

func writeTable(w io.Writer, rows []analysis.Summary) {
	if len(rows) == 0 {
		fmt.Fprintln(w, emptySlate)
		return
	}
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", 32))
	for _, row := range rows {
		fmt.Fprintf(w, "[%5.2f] %s\n", row.Interest, row.Summary)
	}
}

func writeJSON(stdout, stderr io.Writer, rows []analysis.Summary) int {
	if rows == nil {
		rows = []analysis.Summary{}
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
