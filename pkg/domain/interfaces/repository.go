package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . Repository

import (
	"context"

	"cloud.google.com/go/civil"

	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/model"
	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/types"
)

// BathRecordMutator changes a record inside an atomic update. Returning an
// error aborts the update and nothing is written.
type BathRecordMutator func(record *model.BathRecord) error

// Repository defines the interface for data persistence
type Repository interface {
	// PutBathRecord creates or replaces a record, bath date and week start together
	PutBathRecord(ctx context.Context, record *model.BathRecord) error
	GetBathRecord(ctx context.Context, id types.BathRecordID) (*model.BathRecord, error)
	// UpdateBathRecord reads, mutates and writes one record atomically
	UpdateBathRecord(ctx context.Context, id types.BathRecordID, mutate BathRecordMutator) (*model.BathRecord, error)
	DeleteBathRecord(ctx context.Context, id types.BathRecordID) error

	// ListApprovedBathRecordsByWeek returns approved records of one week, sorted for display
	ListApprovedBathRecordsByWeek(ctx context.Context, weekStart civil.Date) ([]*model.BathRecord, error)
	// ListBathRecords returns every record regardless of approval or week
	ListBathRecords(ctx context.Context) ([]*model.BathRecord, error)

	// Close closes the repository connection
	Close() error
}
