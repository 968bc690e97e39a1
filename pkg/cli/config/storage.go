package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/interfaces"
	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/repository"
)

// Storage selects the repository backend: Firestore, then Postgres, then memory
type Storage struct {
	Firestore Firestore
	Postgres  Postgres
}

// Flags returns CLI flags of every backend
func (s *Storage) Flags() []cli.Flag {
	return append(s.Firestore.Flags(), s.Postgres.Flags()...)
}

// Configure opens the first configured backend
func (s *Storage) Configure(ctx context.Context) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	switch {
	case s.Firestore.IsConfigured() && s.Postgres.IsConfigured():
		return nil, goerr.New("both firestore and postgres are configured, choose one")

	case s.Firestore.IsConfigured():
		repo, err := s.Firestore.Configure(ctx)
		if err != nil {
			return nil, err
		}
		return repo, nil

	case s.Postgres.IsConfigured():
		repo, err := s.Postgres.Configure(ctx)
		if err != nil {
			return nil, err
		}
		return repo, nil

	default:
		logger.Warn("Using memory database. The data will be removed when shutting down")
		return repository.NewMemory(), nil
	}
}

// Backend names the backend Configure would open
func (s *Storage) Backend() string {
	switch {
	case s.Firestore.IsConfigured():
		return "firestore"
	case s.Postgres.IsConfigured():
		return "postgres"
	default:
		return "memory"
	}
}

// LogValue returns structured log value
func (s Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", s.Backend()),
		slog.Any("firestore", s.Firestore),
		slog.Any("postgres", s.Postgres),
	)
}
