package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/rs/zerolog"

	"github.com/maxviazov/pagination/internal/config"
	"github.com/maxviazov/pagination/internal/logger"
	"github.com/maxviazov/pagination/pkg/pagination"
)

// maxTotal bounds the synthetic result set, which is materialized in memory.
const maxTotal = 1_000_000

func main() {
	if err := run(os.Args[1:], nil); err != nil {
		log.Fatalf("❌ pagecalc failed: %v", err)
	}
}

// run wires config, logger and a page over a synthetic result set of -total items.
// out replaces the configured log output when non-nil.
func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("pagecalc", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to YAML config (optional)")
	page := fs.Int("page", 0, "zero-based page index")
	size := fs.Int("size", 0, "page size; 0 uses the configured default")
	total := fs.Int("total", 0, "number of elements in the whole result set")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *total < 0 || *total > maxTotal {
		return fmt.Errorf("total must be between 0 and %d, got %d", maxTotal, *total)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("config loading failed: %w", err)
	}

	cfg.Logger.Out = out
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}
	l := appLogger.With().Str("component", "pagecalc").Logger()

	req, err := pagination.NormalizeRequest(*page, *size, cfg.Pagination.Defaults())
	if err != nil {
		l.Error().Err(err).Int("page", *page).Int("size", *size).Msg("invalid page request")
		return err
	}

	p, err := pagination.Of(sequence(*total), req)
	if err != nil {
		return err
	}
	labels, err := pagination.Map(p, label)
	if err != nil {
		return err
	}

	logPage(l, labels)
	return nil
}

func logPage(l zerolog.Logger, p pagination.Page[string]) {
	l.Info().
		Int("current_page", p.CurrentPage()).
		Int("page_size", p.PageSize()).
		Int64("total_elements", p.TotalElementsCount()).
		Int("page_count", p.PageCount()).
		Bool("has_previous", p.HasPrevious()).
		Bool("has_next", p.HasNext()).
		Strs("content", p.Content()).
		Msg("page computed")

	if p.CurrentPage() >= p.PageCount() {
		l.Warn().Int("current_page", p.CurrentPage()).Int("page_count", p.PageCount()).Msg("page index is past the last page")
	}
}

func sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func label(i int) string { return fmt.Sprintf("item-%d", i) }
