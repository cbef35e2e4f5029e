package main

import (
	"context"
	"embed"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/joho/godotenv"
	"github.com/kurochkinivan/parquet_loader/internal/config"
	"github.com/kurochkinivan/parquet_loader/internal/repository/postgresql"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	migrationTypeUp   = "up"
	migrationTypeDown = "down"
)

const (
	exitCodeOK = iota
	exitCodeInputErr
	exitCodeInternalErr
)

type flags struct {
	migrationType string
	steps         int
	db            config.PostgreSQL
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn("failed to load .env file", slog.String("err", err.Error()))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	exitCode, err := Run(ctx, log, os.Args[1:])
	if err != nil {
		log.ErrorContext(ctx, "failed to apply migrations", slog.String("err", err.Error()))
	}

	stop()
	os.Exit(exitCode)
}

func Run(ctx context.Context, log *slog.Logger, args []string) (exitCode int, err error) {
	f, err := parseFlags(args)
	if err != nil {
		return exitCodeInputErr, err
	}

	if err := f.validate(); err != nil {
		return exitCodeInputErr, fmt.Errorf("invalid flags: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return exitCodeInternalErr, fmt.Errorf("failed to create migrations source: %w", err)
	}

	migrator, err := migrate.NewWithSourceInstance("iofs", src, postgresql.ConnectionURL(f.db))
	if err != nil {
		return exitCodeInternalErr, fmt.Errorf("failed to create migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := migrator.Close()
		if closeErr := errors.Join(srcErr, dbErr); closeErr != nil {
			if err == nil {
				exitCode = exitCodeInternalErr
			}
			err = errors.Join(err, closeErr)
		}
	}()

	if err := applyMigration(migrator, f.migrationType, f.steps); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.InfoContext(ctx, "no migrations to apply")
			return exitCodeOK, nil
		}

		return exitCodeInternalErr, fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, err := migrator.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return exitCodeInternalErr, fmt.Errorf("failed to read schema version: %w", err)
	}

	log.InfoContext(ctx, "migrations applied successfully",
		slog.String("type", f.migrationType),
		slog.Uint64("version", uint64(version)),
		slog.Bool("dirty", dirty),
	)

	return exitCodeOK, nil
}

// applyMigration applies every pending migration when steps is zero, otherwise steps of them.
func applyMigration(migrator *migrate.Migrate, migrationType string, steps int) error {
	switch {
	case steps > 0 && migrationType == migrationTypeUp:
		return migrator.Steps(steps)
	case steps > 0 && migrationType == migrationTypeDown:
		return migrator.Steps(-steps)
	case migrationType == migrationTypeUp:
		return migrator.Up()
	case migrationType == migrationTypeDown:
		return migrator.Down()
	default:
		return fmt.Errorf("unknown migration type %q", migrationType)
	}
}

func parseFlags(args []string) (*flags, error) {
	f := &flags{}

	set := flag.NewFlagSet("migrator", flag.ContinueOnError)
	set.StringVar(&f.migrationType, "type", migrationTypeUp, "migration type: up/down")
	set.IntVar(&f.steps, "steps", 0, "number of migrations to apply, 0 applies all")
	set.StringVar(&f.db.Username, "username", os.Getenv("PG_USERNAME"), "database username")
	set.StringVar(&f.db.Password, "password", os.Getenv("PG_PASSWORD"), "database password")
	set.StringVar(&f.db.Host, "host", envOr("PG_HOST", "127.0.0.1"), "database host")
	set.StringVar(&f.db.Port, "port", envOr("PG_PORT", "5432"), "database port")
	set.StringVar(&f.db.DBName, "db", envOr("PG_DBNAME", "parquet_loader"), "database name")

	if err := set.Parse(args); err != nil {
		return nil, err
	}

	return f, nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func (f *flags) validate() error {
	if f.migrationType != migrationTypeUp && f.migrationType != migrationTypeDown {
		return fmt.Errorf("type must be %q or %q, got %q", migrationTypeUp, migrationTypeDown, f.migrationType)
	}

	if f.steps < 0 {
		return fmt.Errorf("steps must not be negative, got %d", f.steps)
	}

	for _, req := range []struct{ name, value string }{
		{"username", f.db.Username},
		{"password", f.db.Password},
		{"db", f.db.DBName},
		{"port", f.db.Port},
	} {
		if req.value == "" {
			return fmt.Errorf("%s is required", req.name)
		}
	}

	return nil
}
