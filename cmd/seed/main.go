package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/nkiryanov/masakin/internal/db"
	"github.com/nkiryanov/masakin/internal/logger"
	"github.com/nkiryanov/masakin/internal/service/user"
)

type options struct {
	DatabaseDSN string
	Reset       bool
	RandSeed    uint64
	LogLevel    string
}

func parseOptions(getenv func(string) string, args []string) (options, error) {
	opts := options{
		DatabaseDSN: getenv("DATABASE_URI"),
		RandSeed:    uint64(time.Now().UnixNano()),
		LogLevel:    logger.LevelInfo,
	}

	flags := pflag.NewFlagSet("seed", pflag.ContinueOnError)
	flags.StringVarP(&opts.DatabaseDSN, "database", "d", opts.DatabaseDSN, "Database connection string")
	flags.BoolVar(&opts.Reset, "reset", false, "Remove all existing data before seeding")
	flags.Uint64Var(&opts.RandSeed, "rand-seed", opts.RandSeed, "Seed for random follows and saves")
	flags.StringVarP(&opts.LogLevel, "log-level", "l", opts.LogLevel, "Logging level (debug, info, warn, error)")

	if err := flags.Parse(args); err != nil {
		return opts, err
	}
	if opts.DatabaseDSN == "" {
		return opts, errors.New("database connection string is required")
	}

	return opts, nil
}

func run(ctx context.Context, getenv func(string) string, args []string) error {
	opts, err := parseOptions(getenv, args)
	if err != nil {
		return err
	}

	l, err := logger.New(logger.EnvDevelopment, opts.LogLevel)
	if err != nil {
		return err
	}

	pool, err := db.ConnectAndMigrate(ctx, opts.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("error while connecting to db. Err: %w", err)
	}
	defer pool.Close()

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("db tx error: %w", err)
	}
	defer tx.Rollback(ctx) // nolint:errcheck

	l.Info("Starting database seed", "reset", opts.Reset, "rand_seed", opts.RandSeed)
	rnd := rand.New(rand.NewPCG(opts.RandSeed, opts.RandSeed))

	sum, err := seed(ctx, tx, opts.Reset, user.DefaultHasher, rnd, l)
	if err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("db commit error: %w", err)
	}

	l.Info("Database seeded successfully",
		"users", sum.Users,
		"recipes", sum.Recipes,
		"follows", sum.Follows,
		"saves", sum.Saves,
	)
	return nil
}

func main() {
	// Values from .env do not override real environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("can't load .env file", "error", err.Error())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Getenv, os.Args[1:]); err != nil {
		slog.Error("seed failed", "error", err.Error())
		os.Exit(1)
	}
}
