package repository

import (
	"context"
	"sync"

	"cloud.google.com/go/civil"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/interfaces"
	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/model"
	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/types"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu          sync.RWMutex
	bathRecords map[types.BathRecordID]*model.BathRecord
}

// NewMemory creates a new memory repository
func NewMemory() *Memory {
	return &Memory{
		bathRecords: make(map[types.BathRecordID]*model.BathRecord),
	}
}

// copyBathRecord returns a detached copy so callers cannot mutate stored state
func copyBathRecord(record *model.BathRecord) *model.BathRecord {
	recordCopy := *record
	return &recordCopy
}

// PutBathRecord saves a bath record to memory
func (m *Memory) PutBathRecord(ctx context.Context, record *model.BathRecord) error {
	if record == nil {
		return goerr.New("bath record is nil")
	}
	if record.ID == "" {
		return goerr.New("bath record ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.bathRecords[record.ID] = copyBathRecord(record)
	return nil
}

// GetBathRecord retrieves a bath record by ID
func (m *Memory) GetBathRecord(ctx context.Context, id types.BathRecordID) (*model.BathRecord, error) {
	if id == "" {
		return nil, goerr.New("bath record ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	record, exists := m.bathRecords[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrBathRecordNotFound, "failed to get bath record",
			goerr.V("bathRecordID", id))
	}

	return copyBathRecord(record), nil
}

// UpdateBathRecord mutates a bath record while holding the write lock
func (m *Memory) UpdateBathRecord(ctx context.Context, id types.BathRecordID, mutate interfaces.BathRecordMutator) (*model.BathRecord, error) {
	if id == "" {
		return nil, goerr.New("bath record ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored, exists := m.bathRecords[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrBathRecordNotFound, "failed to update bath record",
			goerr.V("bathRecordID", id))
	}

	// Mutate a copy so a failed mutation leaves the stored record untouched
	working := copyBathRecord(stored)
	if err := mutate(working); err != nil {
		return nil, goerr.Wrap(err, "bath record mutation failed",
			goerr.V("bathRecordID", id))
	}
	if working.ID != id {
		return nil, goerr.New("bath record ID cannot be changed by an update",
			goerr.V("bathRecordID", id))
	}

	m.bathRecords[id] = working
	return copyBathRecord(working), nil
}

// DeleteBathRecord deletes a bath record from memory
func (m *Memory) DeleteBathRecord(ctx context.Context, id types.BathRecordID) error {
	if id == "" {
		return goerr.New("bath record ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.bathRecords[id]; !exists {
		return goerr.Wrap(model.ErrBathRecordNotFound, "failed to delete bath record",
			goerr.V("bathRecordID", id))
	}

	delete(m.bathRecords, id)
	return nil
}

// ListApprovedBathRecordsByWeek lists approved bath records of one week in display order
func (m *Memory) ListApprovedBathRecordsByWeek(ctx context.Context, weekStart civil.Date) ([]*model.BathRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*model.BathRecord, 0)
	for _, record := range m.bathRecords {
		if record.Approved && record.WeekStart() == weekStart {
			records = append(records, copyBathRecord(record))
		}
	}

	model.SortForDisplay(records)
	return records, nil
}

// ListBathRecords lists all bath records ordered by ID
func (m *Memory) ListBathRecords(ctx context.Context) ([]*model.BathRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*model.BathRecord, 0, len(m.bathRecords))
	for _, record := range m.bathRecords {
		records = append(records, copyBathRecord(record))
	}

	sortByID(records)
	return records, nil
}

// Close does nothing for memory repository
func (m *Memory) Close() error {
	return nil
}

var _ interfaces.Repository = (*Memory)(nil) // Compile-time interface check
