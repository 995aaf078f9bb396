package cmd

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/clinicaortiz/clinica/internal/app"
	"github.com/clinicaortiz/clinica/internal/avatar"
	"github.com/clinicaortiz/clinica/internal/bank"
	"github.com/clinicaortiz/clinica/internal/config"
	"github.com/clinicaortiz/clinica/internal/logging"
	"github.com/clinicaortiz/clinica/internal/prefs"
	"github.com/clinicaortiz/clinica/internal/store"
)

// env holds what every command that touches saved data needs.
type env struct {
	cfg   *config.Config
	log   *zap.Logger
	store *store.Store
	prefs *prefs.Prefs
}

// loadConfig parses the environment and applies the persistent flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	flags := cmd.Flags()
	if p, _ := flags.GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if p, _ := flags.GetString("bank"); p != "" {
		cfg.BankPath = p
	}
	if s, _ := flags.GetUint64("seed"); s != 0 {
		cfg.Seed = s
	}
	if l, _ := flags.GetString("log-level"); l != "" {
		cfg.LogLevel = l
	}
	return cfg, nil
}

// resolveDBPath returns the database path from config, or the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// resolveLogFile returns the log file from config, or clinica.log in the data dir.
func resolveLogFile(cfg *config.Config) (string, error) {
	if cfg.LogFile != "" {
		return cfg.LogFile, store.EnsureDir(cfg.LogFile)
	}
	dir, err := store.DataDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "clinica.log")
	return p, store.EnsureDir(p)
}

// openEnv loads config, starts the logger and opens the store.
// Callers must Close the result.
func openEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logFile, err := resolveLogFile(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve log file: %w", err)
	}
	log, err := logging.New(logFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	log.Debug("store opened", zap.String("path", dbPath))

	return &env{
		cfg:   cfg,
		log:   log,
		store: st,
		prefs: prefs.New(st.KV(), log),
	}, nil
}

func (e *env) Close() error {
	_ = e.log.Sync()
	return e.store.Close()
}

// levels loads the question bank once and returns a builder that samples
// fresh cases for every game.
func (e *env) levels() (func() []bank.PlayLevel, error) {
	raw, err := bank.Load(e.cfg.BankPath)
	if err != nil {
		return nil, fmt.Errorf("load bank: %w", err)
	}
	sampler := bank.NewSampler(e.cfg.Sampler, e.cfg.CasesPerLevel, e.cfg.Seed)

	st := bank.Describe(raw)
	e.log.Info("bank loaded",
		zap.String("shape", st.Shape),
		zap.Int("levels", st.Levels),
		zap.Int("questions", st.Questions),
		zap.String("sampler", e.cfg.Sampler))

	return func() []bank.PlayLevel {
		return bank.Build(raw, sampler)
	}, nil
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, start app.Start) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	levels, err := e.levels()
	if err != nil {
		return err
	}

	opts := app.Options{
		Prefs:   e.prefs,
		Runs:    e.store.RunRepo(),
		Levels:  levels,
		Catalog: avatar.NewFetcher(e.cfg.AvatarSchemaURL, e.cfg.AvatarTimeout, e.log),
		Logger:  e.log,
		Start:   start,
	}
	if e.cfg.Seed != 0 {
		opts.Rand = rand.New(rand.NewPCG(e.cfg.Seed, e.cfg.Seed))
	}

	return app.Run(opts)
}
