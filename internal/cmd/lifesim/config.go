package lifesim

import (
	"flag"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds lifesim command configuration.
type Config struct {
	Content     string `env:"LIFESIM_CONTENT"     envDefault:"assets"`
	Seed        int64  `env:"LIFESIM_SEED"`
	Runs        int    `env:"LIFESIM_RUNS"        envDefault:"1"`
	Workers     int    `env:"LIFESIM_WORKERS"     envDefault:"8"`
	Out         string `env:"LIFESIM_OUT"         envDefault:"out.json"`
	Talents     string `env:"LIFESIM_TALENTS"`
	HistoryDB   string `env:"LIFESIM_HISTORY_DB"`
	ShowHistory int    `env:"LIFESIM_SHOW_HISTORY"`
	MaxYears    int    `env:"LIFESIM_MAX_YEARS"   envDefault:"200"`
	Verbose     bool   `env:"LIFESIM_VERBOSE"`
}

// ParseConfig reads the environment, then lets flags override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Content, "content", cfg.Content, "content bundle directory")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one)")
	fs.IntVar(&cfg.Runs, "n", cfg.Runs, "number of simulations")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "batch worker count")
	fs.StringVar(&cfg.Out, "out", cfg.Out, "output file (single) or summary file (batch)")
	fs.StringVar(&cfg.Talents, "talents", cfg.Talents, "comma separated talent ids (empty drafts them)")
	fs.StringVar(&cfg.HistoryDB, "history", cfg.HistoryDB, "sqlite file for run history (empty keeps it in memory)")
	fs.IntVar(&cfg.ShowHistory, "show-history", cfg.ShowHistory, "print the latest N history records and exit")
	fs.IntVar(&cfg.MaxYears, "max-years", cfg.MaxYears, "stop a run after this many years")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log every simulated year")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// TalentIDs splits the talents flag.
func (c Config) TalentIDs() []string {
	var ids []string
	for _, id := range strings.Split(c.Talents, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
