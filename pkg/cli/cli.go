package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/cli/config"
	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/utils/apperr"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	// Environment sources are read while flags are parsed, so .env must be loaded first
	if err := loadDotEnv(); err != nil {
		return err
	}

	var loggerCfg config.Logger

	app := &cli.Command{
		Name:    "petshop",
		Usage:   "Pet shop bath photo carousel service",
		Version: "0.1.0",
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdCarousel(),
			cmdRepair(),
			cmdImport(),
			cmdDigest(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		apperr.Handle(ctx, err)
		return goerr.Wrap(err, "CLI execution failed")
	}

	return nil
}

// loadDotEnv loads PETSHOP_ENV_FILE, or .env when present. Variables already set win.
func loadDotEnv() error {
	path := os.Getenv("PETSHOP_ENV_FILE")
	if path == "" {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		path = ".env"
	}

	if err := godotenv.Load(path); err != nil {
		return goerr.Wrap(err, "failed to load env file", goerr.V("path", path))
	}
	return nil
}
