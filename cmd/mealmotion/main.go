package main

import (
	"context"
	"github.com/myrjola/mealmotion/internal/envstruct"
	"github.com/myrjola/mealmotion/internal/errors"
	"github.com/myrjola/mealmotion/internal/logging"
	"github.com/myrjola/mealmotion/internal/meal"
	"github.com/myrjola/mealmotion/internal/planner"
	"github.com/myrjola/mealmotion/internal/profile"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"
)

type config struct {
	// Profile is the path to the profile YAML document. A positional argument overrides it.
	Profile string `env:"MEALMOTION_PROFILE" envDefault:"profile.yaml"`
	// OutDir is the directory the export files are written to. It is created when missing.
	OutDir string `env:"MEALMOTION_OUT_DIR" envDefault:"."`
	// Formats is a comma separated list of csv, shopping, xlsx and html.
	Formats string `env:"MEALMOTION_FORMATS" envDefault:"csv,shopping"`
	// Seed makes generation reproducible. Zero picks a random seed per run.
	Seed uint64 `env:"MEALMOTION_SEED" envDefault:""`
	// Catalog is the optional path to a meal catalog YAML replacing the built-in catalog.
	Catalog string `env:"MEALMOTION_CATALOG" envDefault:""`
	// LogLevel is one of debug, info, warn and error.
	LogLevel string `env:"MEALMOTION_LOG_LEVEL" envDefault:"info"`
}

var errUsage = errors.NewSentinel("usage: mealmotion [profile.yaml]")

func run(ctx context.Context, logSink io.Writer, lookupEnv func(string) (string, bool), args []string) error {
	var (
		cancel context.CancelFunc
		err    error
		start  = time.Now()
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}
	switch len(args) {
	case 0:
	case 1:
		cfg.Profile = args[0]
	default:
		return errors.Wrap(errUsage, "too many arguments", slog.Int("args", len(args)))
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, "parse log level")
	}
	logger := logging.NewLogger(logSink, level)

	formats, err := parseFormats(cfg.Formats)
	if err != nil {
		return errors.Wrap(err, "parse formats", slog.String("formats", cfg.Formats))
	}

	p, err := loadProfile(cfg.Profile)
	if err != nil {
		return err
	}
	ctx = logging.WithAttrs(ctx, slog.String("profile", p.Name))

	var opts []planner.Option
	if cfg.Catalog != "" {
		var catalog *meal.Catalog
		if catalog, err = loadCatalog(cfg.Catalog); err != nil {
			return err
		}
		logger.LogAttrs(ctx, slog.LevelDebug, "loaded catalog",
			slog.String("path", cfg.Catalog), slog.Int("meals", catalog.Len()))
		opts = append(opts, planner.WithCatalog(catalog))
	}
	if cfg.Seed != 0 {
		opts = append(opts, planner.WithSeed(cfg.Seed))
	}

	plan, err := planner.New(logger, opts...).Build(ctx, p)
	if err != nil {
		return errors.Wrap(err, "build plan")
	}
	ctx = logging.WithAttrs(ctx, slog.String("plan_id", plan.ID.String()))

	if err = writeExports(ctx, logger, cfg.OutDir, formats, plan); err != nil {
		return errors.Wrap(err, "write exports", slog.String("out_dir", cfg.OutDir))
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "plan written",
		slog.String("out_dir", cfg.OutDir),
		slog.Int("files", len(formats)),
		slog.Duration("duration", time.Since(start)))
	return nil
}

func loadProfile(path string) (*profile.UserProfile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open profile", slog.String("path", path))
	}
	defer f.Close()

	p, err := profile.Decode(f)
	if err != nil {
		return nil, errors.Wrap(err, "decode profile", slog.String("path", path))
	}
	if err = p.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate profile", slog.String("path", path))
	}
	return p, nil
}

func loadCatalog(path string) (*meal.Catalog, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrap(err, "open catalog", slog.String("path", path))
	}
	defer f.Close()

	catalog, err := meal.LoadCatalog(f)
	if err != nil {
		return nil, errors.Wrap(err, "load catalog", slog.String("path", path))
	}
	return catalog, nil
}

func main() {
	ctx := context.Background()
	logger := logging.NewLogger(os.Stderr, slog.LevelInfo)
	if err := run(ctx, os.Stderr, os.LookupEnv, os.Args[1:]); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure generating plan", errors.SlogError(err))
		os.Exit(1)
	}
}
