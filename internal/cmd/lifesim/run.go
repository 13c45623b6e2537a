// Package lifesim implements the lifesim command: single runs with a full
// log, or seeded batches aggregated into one summary.
package lifesim

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"lifesim/internal/config"
	"lifesim/internal/history"
	"lifesim/internal/history/sqlite"
	"lifesim/internal/sim"
	"lifesim/internal/util"
)

// Run executes the lifesim command.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	logger := log.New(errOut, "", 0)

	// Without a database, runs are kept in memory for this process only.
	var store history.Store = history.NewMemoryStore()
	if cfg.HistoryDB != "" {
		s, err := sqlite.Open(cfg.HistoryDB)
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		defer s.Close()
		store = s
	}
	if cfg.ShowHistory > 0 {
		if cfg.HistoryDB == "" {
			return errors.New("show-history needs a history database")
		}
		return showHistory(ctx, store, cfg.ShowHistory, out)
	}

	if strings.TrimSpace(cfg.Content) == "" {
		return errors.New("content directory is required")
	}
	if cfg.MaxYears <= 0 {
		return fmt.Errorf("max-years must be positive, got %d", cfg.MaxYears)
	}
	b, err := config.LoadAll(cfg.Content)
	if err != nil {
		return err
	}
	for _, w := range sim.Lint(b) {
		logger.Printf("content: %s", w)
	}

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = util.NewSeed(); err != nil {
			return err
		}
	}

	if cfg.Runs <= 1 {
		return runSingle(ctx, b, cfg, seed, store, out, logger)
	}

	sum, err := runBatch(ctx, b, cfg, seed)
	if err != nil {
		return err
	}
	if err := writeJSON(cfg.Out, sum); err != nil {
		return err
	}
	fmt.Fprintf(out, "Batch %d done -> %s\n", cfg.Runs, filepath.Base(cfg.Out))
	return nil
}

func runSingle(ctx context.Context, b *config.Bundle, cfg Config, seed int64, store history.Store, out io.Writer, logger *log.Logger) error {
	var onYear func(sim.YearResult)
	if cfg.Verbose {
		onYear = func(y sim.YearResult) {
			for _, e := range y.Entries {
				logger.Printf("age %3d  %-6s %s", e.Age, e.Type, e.Title)
			}
		}
	}
	res, err := simulate(ctx, b, seed, cfg.TalentIDs(), cfg.MaxYears, onYear)
	if err != nil {
		return err
	}
	if !res.Finished {
		logger.Printf("run stopped after %d years without ending", cfg.MaxYears)
	}
	rec := history.NewRecord(res.Summary, res.Age, seed, time.Now())
	if err := store.Add(ctx, rec); err != nil {
		return fmt.Errorf("record history: %w", err)
	}
	res.RecordID = rec.ID
	if cfg.HistoryDB != "" {
		logger.Printf("history: saved %s", rec.ID)
	}
	if err := writeJSON(cfg.Out, res); err != nil {
		return err
	}
	fmt.Fprintf(out, "Single run finished. Ending=%s, Age=%d, Seed=%d -> %s\n",
		res.Summary.Ending.ID, res.Age, seed, cfg.Out)
	return nil
}

func showHistory(ctx context.Context, store history.Store, limit int, out io.Writer) error {
	recs, err := store.List(ctx, limit)
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}
	for _, r := range recs {
		fmt.Fprintf(out, "%s  %s  age %d  %s\n", r.CreatedAt.Format(time.RFC3339), r.ID, r.Age, r.EndingID)
	}
	return nil
}

func marshalPretty(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

func writeJSON(path string, v any) error {
	data, err := marshalPretty(v)
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
