package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/viper"
)

// FileName is the benchmark metadata file, resolved relative to the
// working directory.
const FileName = "config.json"

// ErrBenchNotFound covers every way a bench lookup can fail: the config
// file is missing or malformed, or the bench name has no entry.
var ErrBenchNotFound = errors.New("bench config not found")

// Bench names the two dataset columns for one bench function.
type Bench struct {
	Parameter string `mapstructure:"parameter"`
	Output    string `mapstructure:"output"`
}

// Config is the typed form of config.json.
type Config struct {
	Benches map[string]Bench `mapstructure:"benches"`
}

// BenchNames returns the configured bench function names, sorted.
func (c *Config) BenchNames() []string {
	names := make([]string, 0, len(c.Benches))
	for name := range c.Benches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load parses config.json from the working directory. A fresh viper
// instance is used so repeated loads never see stale state.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(FileName)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrBenchNotFound, FileName, err)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrBenchNotFound, FileName, err)
	}
	return &cfg, nil
}

// LoadBench resolves the column config for a single bench function.
// config.json is re-read on every call; lookups happen at most once per
// sampling run, so caching is not worth the staleness risk.
func LoadBench(name string) (Bench, error) {
	cfg, err := Load()
	if err != nil {
		return Bench{}, err
	}
	b, ok := cfg.Benches[name]
	if !ok {
		return Bench{}, fmt.Errorf("%w: no entry for %q in %s", ErrBenchNotFound, name, FileName)
	}
	if b.Parameter == "" || b.Output == "" {
		return Bench{}, fmt.Errorf("%w: entry %q must name both parameter and output columns", ErrBenchNotFound, name)
	}
	return b, nil
}

// Settings are the harness-level knobs. They come from viper defaults,
// overridable through PERFTOOL_* environment variables.
type Settings struct {
	BuildCommand []string // release build invocation, run inside the checkout
	BenchCommand []string // bench invocation prefix; fn name and parameter are appended
	DataDir      string   // root of the per-bench CSV datasets
	BuildDir     string   // root of the commit symlinks
	WorktreesDir string   // where checkout worktrees are materialized
	HistoryFile  string   // SQLite run-history database
}

// SetDefaults registers the harness defaults on the global viper
// instance. Safe to call more than once.
func SetDefaults() {
	viper.SetDefault("build_command", []string{"cargo", "build", "--release"})
	viper.SetDefault("bench_command", []string{"cargo", "run", "--release", "bench"})
	viper.SetDefault("data_dir", "data")
	viper.SetDefault("build_dir", "build")
	viper.SetDefault("worktrees_dir", filepath.Join(".perftool", "worktrees"))
	viper.SetDefault("history_file", filepath.Join(".perftool", "history.db"))
}

// LoadSettings snapshots the current harness settings.
func LoadSettings() Settings {
	SetDefaults()
	return Settings{
		BuildCommand: viper.GetStringSlice("build_command"),
		BenchCommand: viper.GetStringSlice("bench_command"),
		DataDir:      viper.GetString("data_dir"),
		BuildDir:     viper.GetString("build_dir"),
		WorktreesDir: viper.GetString("worktrees_dir"),
		HistoryFile:  viper.GetString("history_file"),
	}
}
