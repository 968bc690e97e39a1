package repository

import (
	"context"
	"time"

	"cloud.google.com/go/civil"
	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/interfaces"
	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/model"
	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/types"
)

const (
	// Collection names
	bathRecordsCollection = "bath_records"

	// Field names
	fieldWeekStart = "week_start"
	fieldApproved  = "approved"
)

// Firestore implements Repository interface with Firestore
type Firestore struct {
	client *firestore.Client
}

// bathRecordDoc is the stored shape of a bath record. Dates are kept as
// YYYY-MM-DD strings so no time zone is ever attached to them.
type bathRecordDoc struct {
	ID           string    `firestore:"id"`
	PetName      string    `firestore:"pet_name"`
	PhotoURL     string    `firestore:"photo_url"`
	Caption      string    `firestore:"caption"`
	BathDate     string    `firestore:"bath_date"`
	WeekStart    string    `firestore:"week_start"`
	Approved     bool      `firestore:"approved"`
	DisplayOrder int       `firestore:"display_order"`
	CreatedAt    time.Time `firestore:"created_at"`
	UpdatedAt    time.Time `firestore:"updated_at"`
}

func newBathRecordDoc(record *model.BathRecord) *bathRecordDoc {
	return &bathRecordDoc{
		ID:           record.ID.String(),
		PetName:      record.PetName,
		PhotoURL:     record.PhotoURL,
		Caption:      record.Caption,
		BathDate:     model.FormatDate(record.BathDate()),
		WeekStart:    model.FormatDate(record.WeekStart()),
		Approved:     record.Approved,
		DisplayOrder: record.DisplayOrder,
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}
}

func (d *bathRecordDoc) toModel() (*model.BathRecord, error) {
	bathDate, weekStart, err := decodeStoredDates(d.BathDate, d.WeekStart)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode bath record", goerr.V("bathRecordID", d.ID))
	}

	return model.RestoreBathRecord(model.BathRecord{
		ID:           types.BathRecordID(d.ID),
		PetName:      d.PetName,
		PhotoURL:     d.PhotoURL,
		Caption:      d.Caption,
		Approved:     d.Approved,
		DisplayOrder: d.DisplayOrder,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}, bathDate, weekStart), nil
}

func decodeSnapshot(doc *firestore.DocumentSnapshot) (*model.BathRecord, error) {
	var stored bathRecordDoc
	if err := doc.DataTo(&stored); err != nil {
		return nil, goerr.Wrap(err, "failed to decode bath record document", goerr.V("docID", doc.Ref.ID))
	}
	return stored.toModel()
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string) (*Firestore, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on invalid project or missing permissions
	_, err = client.Collection(bathRecordsCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{
		client: client,
	}, nil
}

// PutBathRecord saves a bath record to Firestore
func (f *Firestore) PutBathRecord(ctx context.Context, record *model.BathRecord) error {
	if record == nil {
		return goerr.New("bath record is nil")
	}
	if record.ID == "" {
		return goerr.New("bath record ID is empty")
	}

	_, err := f.client.Collection(bathRecordsCollection).Doc(record.ID.String()).Set(ctx, newBathRecordDoc(record))
	if err != nil {
		return goerr.Wrap(err, "failed to save bath record to firestore",
			goerr.V("bathRecordID", record.ID))
	}

	return nil
}

// GetBathRecord retrieves a bath record by ID
func (f *Firestore) GetBathRecord(ctx context.Context, id types.BathRecordID) (*model.BathRecord, error) {
	if id == "" {
		return nil, goerr.New("bath record ID is empty")
	}

	doc, err := f.client.Collection(bathRecordsCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrBathRecordNotFound, "failed to get bath record",
				goerr.V("bathRecordID", id))
		}
		return nil, goerr.Wrap(err, "failed to get bath record from firestore")
	}

	return decodeSnapshot(doc)
}

// UpdateBathRecord applies mutate inside a Firestore transaction. The transaction
// may be retried on contention, so mutate always starts from a freshly read record.
func (f *Firestore) UpdateBathRecord(ctx context.Context, id types.BathRecordID, mutate interfaces.BathRecordMutator) (*model.BathRecord, error) {
	if id == "" {
		return nil, goerr.New("bath record ID is empty")
	}

	ref := f.client.Collection(bathRecordsCollection).Doc(id.String())

	var updated *model.BathRecord
	err := f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return goerr.Wrap(model.ErrBathRecordNotFound, "failed to update bath record",
					goerr.V("bathRecordID", id))
			}
			return goerr.Wrap(err, "failed to get bath record in transaction")
		}

		record, err := decodeSnapshot(doc)
		if err != nil {
			return err
		}
		if err := mutate(record); err != nil {
			return goerr.Wrap(err, "bath record mutation failed", goerr.V("bathRecordID", id))
		}
		if record.ID != id {
			return goerr.New("bath record ID cannot be changed by an update", goerr.V("bathRecordID", id))
		}

		updated = record
		return tx.Set(ref, newBathRecordDoc(record))
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update bath record in firestore",
			goerr.V("bathRecordID", id))
	}

	return updated, nil
}

// DeleteBathRecord deletes a bath record from Firestore
func (f *Firestore) DeleteBathRecord(ctx context.Context, id types.BathRecordID) error {
	if id == "" {
		return goerr.New("bath record ID is empty")
	}

	_, err := f.client.Collection(bathRecordsCollection).Doc(id.String()).Delete(ctx, firestore.Exists)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(model.ErrBathRecordNotFound, "failed to delete bath record",
				goerr.V("bathRecordID", id))
		}
		return goerr.Wrap(err, "failed to delete bath record from firestore")
	}

	return nil
}

// ListApprovedBathRecordsByWeek lists approved bath records of one week in display order
func (f *Firestore) ListApprovedBathRecordsByWeek(ctx context.Context, weekStart civil.Date) ([]*model.BathRecord, error) {
	// Equality filters only, so no composite index is required; ordering happens in memory
	iter := f.client.Collection(bathRecordsCollection).
		Where(fieldWeekStart, "==", model.FormatDate(weekStart)).
		Where(fieldApproved, "==", true).
		Documents(ctx)

	records, err := collectBathRecords(iter)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list bath records by week",
			goerr.V("weekStart", model.FormatDate(weekStart)))
	}

	model.SortForDisplay(records)
	return records, nil
}

// ListBathRecords lists all bath records ordered by ID
func (f *Firestore) ListBathRecords(ctx context.Context) ([]*model.BathRecord, error) {
	records, err := collectBathRecords(f.client.Collection(bathRecordsCollection).Documents(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list bath records")
	}

	sortByID(records)
	return records, nil
}

func collectBathRecords(iter *firestore.DocumentIterator) ([]*model.BathRecord, error) {
	defer iter.Stop()

	records := make([]*model.BathRecord, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate bath records")
		}

		record, err := decodeSnapshot(doc)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

var _ interfaces.Repository = (*Firestore)(nil) // Compile-time interface check
