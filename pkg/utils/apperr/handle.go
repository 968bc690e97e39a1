package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"

	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/model"
)

// Handle logs an error. Validation and not-found errors are caller mistakes
// and are logged as warnings; anything else is an application error.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	logger := ctxlog.From(ctx)
	if model.IsValidationError(err) || model.IsNotFound(err) {
		logger.Warn("request rejected", "error", err)
		return
	}
	logger.Error("application error", "error", err)
}
