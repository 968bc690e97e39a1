package usecase

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/civil"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/interfaces"
	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/model"
	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/types"
)

// BathRecordConfig holds configuration for BathRecord use case
type BathRecordConfig struct {
	location *time.Location
	now      func() time.Time
}

// BathRecordOption is a functional option for configuring BathRecord
type BathRecordOption func(*BathRecordConfig)

// WithLocation sets the time zone in which the shop's "today" is observed
func WithLocation(loc *time.Location) BathRecordOption {
	return func(c *BathRecordConfig) {
		if loc != nil {
			c.location = loc
		}
	}
}

// WithClock replaces time.Now, mainly for tests
func WithClock(now func() time.Time) BathRecordOption {
	return func(c *BathRecordConfig) {
		if now != nil {
			c.now = now
		}
	}
}

// NewBathRecordConfig creates a new BathRecordConfig with default values and optional settings
func NewBathRecordConfig(opts ...BathRecordOption) *BathRecordConfig {
	config := &BathRecordConfig{
		location: time.UTC,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(config)
	}

	return config
}

// BathRecord implements bath record and weekly carousel operations
type BathRecord struct {
	repo   interfaces.Repository
	config *BathRecordConfig
}

// NewBathRecord creates a new BathRecord use case
func NewBathRecord(repo interfaces.Repository, config *BathRecordConfig) *BathRecord {
	if config == nil {
		config = NewBathRecordConfig()
	}
	return &BathRecord{
		repo:   repo,
		config: config,
	}
}

// Today returns the shop's current calendar date
func (u *BathRecord) Today() civil.Date {
	return model.TodayIn(u.config.now(), u.config.location)
}

// newRecord builds a record from input without saving it. Timestamps come
// from the configured clock.
func (u *BathRecord) newRecord(input interfaces.BathRecordInput) (*model.BathRecord, error) {
	record, err := model.NewBathRecord(input.PetName, input.PhotoURL, input.BathDate)
	if err != nil {
		return nil, err
	}

	record.UpdateCaption(input.Caption)
	record.SetDisplayOrder(input.DisplayOrder)
	if input.Approved {
		record.Approve()
	}

	now := u.config.now()
	record.CreatedAt = now
	record.UpdatedAt = now
	return record, nil
}

// CreateBathRecord creates a bath record; its week start is derived from the bath date
func (u *BathRecord) CreateBathRecord(ctx context.Context, input interfaces.BathRecordInput) (*model.BathRecord, error) {
	record, err := u.newRecord(input)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create bath record",
			goerr.V("petName", input.PetName))
	}

	if err := u.repo.PutBathRecord(ctx, record); err != nil {
		return nil, goerr.Wrap(err, "failed to save bath record",
			goerr.V("bathRecordID", record.ID))
	}

	ctxlog.From(ctx).Info("Bath record created",
		"bathRecordID", record.ID,
		"petName", record.PetName,
		"bathDate", model.FormatDate(record.BathDate()),
		"weekStart", model.FormatDate(record.WeekStart()),
	)

	return record, nil
}

// ImportBathRecords creates every input, validating all of them before the
// first write. An invalid input fails the whole batch with nothing stored.
// A storage error partway through leaves the earlier records saved and
// returns how many were written.
func (u *BathRecord) ImportBathRecords(ctx context.Context, inputs []interfaces.BathRecordInput) (int, error) {
	records := make([]*model.BathRecord, 0, len(inputs))
	for i, input := range inputs {
		record, err := u.newRecord(input)
		if err != nil {
			return 0, goerr.Wrap(err, "invalid bath record in import",
				goerr.V("index", i),
				goerr.V("petName", input.PetName))
		}
		records = append(records, record)
	}

	for i, record := range records {
		if err := u.repo.PutBathRecord(ctx, record); err != nil {
			return i, goerr.Wrap(err, "failed to save imported bath record",
				goerr.V("index", i),
				goerr.V("bathRecordID", record.ID))
		}
	}

	ctxlog.From(ctx).Info("Bath records imported", "count", len(records))
	return len(records), nil
}

// GetBathRecord retrieves a bath record
func (u *BathRecord) GetBathRecord(ctx context.Context, id types.BathRecordID) (*model.BathRecord, error) {
	record, err := u.repo.GetBathRecord(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get bath record", goerr.V("bathRecordID", id))
	}
	return record, nil
}

// UpdateBathRecord applies the given changes atomically. A new bath date
// recomputes the week start in the same write.
func (u *BathRecord) UpdateBathRecord(ctx context.Context, id types.BathRecordID, update interfaces.BathRecordUpdate) (*model.BathRecord, error) {
	record, err := u.repo.UpdateBathRecord(ctx, id, func(record *model.BathRecord) error {
		if update.PetName != nil {
			if err := record.UpdatePetName(*update.PetName); err != nil {
				return err
			}
		}
		if update.PhotoURL != nil {
			if err := record.UpdatePhotoURL(*update.PhotoURL); err != nil {
				return err
			}
		}
		if update.Caption != nil {
			record.UpdateCaption(*update.Caption)
		}
		if update.BathDate != nil {
			if err := record.SetBathDate(*update.BathDate); err != nil {
				return err
			}
		}
		if update.DisplayOrder != nil {
			record.SetDisplayOrder(*update.DisplayOrder)
		}
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update bath record", goerr.V("bathRecordID", id))
	}

	return record, nil
}

// SetApproval approves or unapproves a bath record for the carousel
func (u *BathRecord) SetApproval(ctx context.Context, id types.BathRecordID, approved bool) (*model.BathRecord, error) {
	record, err := u.repo.UpdateBathRecord(ctx, id, func(record *model.BathRecord) error {
		if approved {
			record.Approve()
		} else {
			record.Unapprove()
		}
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to set approval",
			goerr.V("bathRecordID", id),
			goerr.V("approved", approved))
	}

	ctxlog.From(ctx).Info("Bath record approval changed",
		"bathRecordID", id,
		"approved", approved,
	)

	return record, nil
}

// DeleteBathRecord deletes a bath record
func (u *BathRecord) DeleteBathRecord(ctx context.Context, id types.BathRecordID) error {
	if err := u.repo.DeleteBathRecord(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete bath record", goerr.V("bathRecordID", id))
	}
	return nil
}

// SelectForWeek returns the approved records of the week starting at weekStart in display order.
// An empty slice means there is nothing to show that week.
func (u *BathRecord) SelectForWeek(ctx context.Context, weekStart civil.Date) ([]*model.BathRecord, error) {
	if err := model.ValidateWeekStart(weekStart); err != nil {
		return nil, err
	}

	records, err := u.repo.ListApprovedBathRecordsByWeek(ctx, weekStart)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to select bath records for week",
			goerr.V("weekStart", model.FormatDate(weekStart)))
	}
	if records == nil {
		records = []*model.BathRecord{}
	}

	return records, nil
}

// SelectPreviousWeek returns the carousel of the last completed week
func (u *BathRecord) SelectPreviousWeek(ctx context.Context) (*model.WeeklyCarousel, error) {
	weekStart := model.PreviousWeekStart(u.Today())

	records, err := u.SelectForWeek(ctx, weekStart)
	if err != nil {
		return nil, err
	}

	return model.NewWeeklyCarousel(weekStart, records), nil
}

// errAlreadyConsistent aborts a repair update when another writer fixed the row first
var errAlreadyConsistent = errors.New("week start already consistent")

// RepairWeekStarts recomputes the week start of every stored record from its bath date.
// It is idempotent: a second run reports no changes.
func (u *BathRecord) RepairWeekStarts(ctx context.Context, dryRun bool) (*model.RepairReport, error) {
	logger := ctxlog.From(ctx)

	records, err := u.repo.ListBathRecords(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list bath records for repair")
	}

	report := &model.RepairReport{
		DryRun:  dryRun,
		Scanned: len(records),
		Changes: []model.WeekStartChange{},
	}

	for _, listed := range records {
		if listed.HasConsistentWeekStart() {
			continue
		}

		if dryRun {
			report.Changes = append(report.Changes, model.WeekStartChange{
				BathRecordID: listed.ID,
				PetName:      listed.PetName,
				BathDate:     listed.BathDate(),
				From:         listed.WeekStart(),
				To:           model.MondayOnOrBefore(listed.BathDate()),
			})
			continue
		}

		var change model.WeekStartChange
		_, err := u.repo.UpdateBathRecord(ctx, listed.ID, func(record *model.BathRecord) error {
			previous, changed := record.RepairWeekStart()
			if !changed {
				return errAlreadyConsistent
			}
			change = model.WeekStartChange{
				BathRecordID: record.ID,
				PetName:      record.PetName,
				BathDate:     record.BathDate(),
				From:         previous,
				To:           record.WeekStart(),
			}
			return nil
		})
		switch {
		case err == nil:
			report.Changes = append(report.Changes, change)
			logger.Info("Week start repaired",
				"bathRecordID", change.BathRecordID,
				"bathDate", model.FormatDate(change.BathDate),
				"from", model.FormatDate(change.From),
				"to", model.FormatDate(change.To),
			)
		case errors.Is(err, errAlreadyConsistent):
			continue
		case errors.Is(err, model.ErrBathRecordNotFound):
			logger.Warn("Bath record disappeared during repair", "bathRecordID", listed.ID)
			continue
		default:
			return nil, goerr.Wrap(err, "failed to repair week start",
				goerr.V("bathRecordID", listed.ID),
				goerr.V("repairedSoFar", report.Changed()))
		}
	}

	logger.Info("Week start repair finished",
		"dryRun", dryRun,
		"scanned", report.Scanned,
		"changed", report.Changed(),
	)

	return report, nil
}

var _ interfaces.BathRecord = (*BathRecord)(nil)
