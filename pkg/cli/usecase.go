package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"

	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/cli/config"
	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/interfaces"
	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/usecase"
)

// openBathRecord opens the configured storage and builds the bath record use case.
// The caller must close the returned repository.
func openBathRecord(ctx context.Context, storageCfg *config.Storage, clockCfg *config.Clock) (*usecase.BathRecord, interfaces.Repository, error) {
	ctxlog.From(ctx).Debug("Opening storage",
		slog.Any("storage", storageCfg),
		slog.Any("clock", clockCfg),
	)

	ucCfg, err := clockCfg.Configure()
	if err != nil {
		return nil, nil, err
	}

	repo, err := storageCfg.Configure(ctx)
	if err != nil {
		return nil, nil, err
	}

	return usecase.NewBathRecord(repo, ucCfg), repo, nil
}
