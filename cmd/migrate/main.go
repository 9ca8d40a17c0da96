// Command migrate applies the SQL migrations under db/migrations.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/config"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/logger"
)

const usage = "Usage: migrate [up|down|steps N|force V|version]"

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log).WithField("cmd", "migrate")

	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	source := os.Getenv("MIGRATIONS_SOURCE")
	if source == "" {
		source = "file://db/migrations"
	}
	m, err := migrate.New(source, cfg.DB.DSN())
	if err != nil {
		log.WithError(err).Fatal("failed to create migrate instance")
	}
	defer m.Close()

	if err := runCommand(m, os.Args[1:], log); err != nil {
		log.WithError(err).Fatal("migration failed")
	}
}

func runCommand(m *migrate.Migrate, args []string, log logrus.FieldLogger) error {
	switch args[0] {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("up: %w", err)
		}
		log.Info("migrations applied")

	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("down: %w", err)
		}
		log.Info("migrations reverted")

	case "steps", "force":
		if len(args) < 2 {
			return fmt.Errorf("%s requires a number argument", args[0])
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid %s argument: %w", args[0], err)
		}
		if args[0] == "force" {
			if err := m.Force(n); err != nil {
				return fmt.Errorf("force: %w", err)
			}
			log.WithField("version", n).Info("version forced")
			return nil
		}
		if err := m.Steps(n); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("steps: %w", err)
		}
		log.WithField("steps", n).Info("migration steps applied")

	case "version":
		version, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			return fmt.Errorf("version: %w", err)
		}
		log.WithFields(logrus.Fields{"version": version, "dirty": dirty}).Info("current version")

	default:
		fmt.Println(usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
	return nil
}
