package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"pet-scheduler/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// migrate applies the versioned SQL files under -dir with the atlas CLI.
func main() {
	dir := flag.String("dir", "migrations", "migration directory")
	bin := flag.String("atlas", "atlas", "atlas binary")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, *dir, *bin, *timeout, logger); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, dir, bin string, timeout time.Duration, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return err
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), bin)
	if err != nil {
		return err
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL: cfg.DB.BuildDSN(),
	})
	if err != nil {
		return err
	}

	for _, f := range res.Applied {
		logger.Info("applied", "version", f.Version, "description", f.Description)
	}
	logger.Info("database is up to date", "current", res.Current, "target", res.Target)
	return nil
}
