package repository

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/civil"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/interfaces"
	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/model"
	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/types"
)

// bathRecordRow is the bath_records table. Dates are fixed-width YYYY-MM-DD
// text so the driver never converts them through a time zone, and they sort
// correctly as strings.
type bathRecordRow struct {
	ID           string    `gorm:"column:id;type:uuid;primaryKey"`
	PetName      string    `gorm:"column:pet_name;not null"`
	PhotoURL     string    `gorm:"column:photo_url;not null"`
	Caption      string    `gorm:"column:caption;not null;default:''"`
	BathDate     string    `gorm:"column:bath_date;type:char(10);not null"`
	WeekStart    string    `gorm:"column:week_start;type:char(10);not null;index:idx_bath_records_week_approved,priority:1"`
	Approved     bool      `gorm:"column:approved;not null;default:false;index:idx_bath_records_week_approved,priority:2"`
	DisplayOrder int       `gorm:"column:display_order;not null;default:0"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null"`
}

// TableName overrides the default table name
func (bathRecordRow) TableName() string {
	return "bath_records"
}

func newBathRecordRow(record *model.BathRecord) *bathRecordRow {
	return &bathRecordRow{
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

func (r *bathRecordRow) toModel() (*model.BathRecord, error) {
	bathDate, weekStart, err := decodeStoredDates(r.BathDate, r.WeekStart)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode bath record", goerr.V("bathRecordID", r.ID))
	}

	return model.RestoreBathRecord(model.BathRecord{
		ID:           types.BathRecordID(r.ID),
		PetName:      r.PetName,
		PhotoURL:     r.PhotoURL,
		Caption:      r.Caption,
		Approved:     r.Approved,
		DisplayOrder: r.DisplayOrder,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}, bathDate, weekStart), nil
}

func rowsToModels(rows []bathRecordRow) ([]*model.BathRecord, error) {
	records := make([]*model.BathRecord, 0, len(rows))
	for i := range rows {
		record, err := rows[i].toModel()
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// PostgresOptions configures the Postgres connection pool
type PostgresOptions struct {
	MaxOpenConns int
	MaxIdleConns int
	Debug        bool
}

// Postgres implements Repository interface with PostgreSQL through gorm
type Postgres struct {
	db *gorm.DB
}

// NewPostgres opens a connection, migrates the schema and returns a repository
func NewPostgres(ctx context.Context, dsn string, opts PostgresOptions) (*Postgres, error) {
	logger := ctxlog.From(ctx)

	logLevel := gormlogger.Warn
	if opts.Debug {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open postgres connection")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get underlying sql.DB")
	}

	maxOpen := opts.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 25
	}
	maxIdle := opts.MaxIdleConns
	if maxIdle <= 0 {
		maxIdle = 10
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, goerr.Wrap(err, "failed to ping postgres")
	}

	if err := db.WithContext(ctx).AutoMigrate(&bathRecordRow{}); err != nil {
		_ = sqlDB.Close()
		return nil, goerr.Wrap(err, "failed to migrate bath_records table")
	}

	logger.Info("Postgres repository initialized successfully",
		"maxOpenConns", maxOpen,
		"maxIdleConns", maxIdle,
	)

	return &Postgres{db: db}, nil
}

// PutBathRecord inserts or replaces a bath record
func (p *Postgres) PutBathRecord(ctx context.Context, record *model.BathRecord) error {
	if record == nil {
		return goerr.New("bath record is nil")
	}
	if record.ID == "" {
		return goerr.New("bath record ID is empty")
	}

	row := newBathRecordRow(record)
	err := p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(row).Error
	if err != nil {
		return goerr.Wrap(err, "failed to save bath record to postgres",
			goerr.V("bathRecordID", record.ID))
	}

	return nil
}

// GetBathRecord retrieves a bath record by ID
func (p *Postgres) GetBathRecord(ctx context.Context, id types.BathRecordID) (*model.BathRecord, error) {
	if id == "" {
		return nil, goerr.New("bath record ID is empty")
	}

	var row bathRecordRow
	err := p.db.WithContext(ctx).Where("id = ?", id.String()).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, goerr.Wrap(model.ErrBathRecordNotFound, "failed to get bath record",
				goerr.V("bathRecordID", id))
		}
		return nil, goerr.Wrap(err, "failed to get bath record from postgres")
	}

	return row.toModel()
}

// UpdateBathRecord locks the row with SELECT ... FOR UPDATE, applies mutate and saves it in one transaction
func (p *Postgres) UpdateBathRecord(ctx context.Context, id types.BathRecordID, mutate interfaces.BathRecordMutator) (*model.BathRecord, error) {
	if id == "" {
		return nil, goerr.New("bath record ID is empty")
	}

	var updated *model.BathRecord
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row bathRecordRow
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id.String()).
			First(&row).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return goerr.Wrap(model.ErrBathRecordNotFound, "failed to update bath record",
					goerr.V("bathRecordID", id))
			}
			return goerr.Wrap(err, "failed to lock bath record")
		}

		record, err := row.toModel()
		if err != nil {
			return err
		}
		if err := mutate(record); err != nil {
			return goerr.Wrap(err, "bath record mutation failed", goerr.V("bathRecordID", id))
		}
		if record.ID != id {
			return goerr.New("bath record ID cannot be changed by an update", goerr.V("bathRecordID", id))
		}

		if err := tx.Save(newBathRecordRow(record)).Error; err != nil {
			return goerr.Wrap(err, "failed to save bath record")
		}

		updated = record
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update bath record in postgres",
			goerr.V("bathRecordID", id))
	}

	return updated, nil
}

// DeleteBathRecord deletes a bath record
func (p *Postgres) DeleteBathRecord(ctx context.Context, id types.BathRecordID) error {
	if id == "" {
		return goerr.New("bath record ID is empty")
	}

	result := p.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&bathRecordRow{})
	if result.Error != nil {
		return goerr.Wrap(result.Error, "failed to delete bath record from postgres")
	}
	if result.RowsAffected == 0 {
		return goerr.Wrap(model.ErrBathRecordNotFound, "failed to delete bath record",
			goerr.V("bathRecordID", id))
	}

	return nil
}

// ListApprovedBathRecordsByWeek lists approved bath records of one week in display order
func (p *Postgres) ListApprovedBathRecordsByWeek(ctx context.Context, weekStart civil.Date) ([]*model.BathRecord, error) {
	var rows []bathRecordRow
	err := p.db.WithContext(ctx).
		Where("week_start = ? AND approved = ?", model.FormatDate(weekStart), true).
		Order("display_order ASC").
		Order("created_at DESC").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list bath records by week",
			goerr.V("weekStart", model.FormatDate(weekStart)))
	}

	records, err := rowsToModels(rows)
	if err != nil {
		return nil, err
	}

	// created_at is truncated to microseconds; re-sort on the decoded values
	model.SortForDisplay(records)
	return records, nil
}

// ListBathRecords lists all bath records ordered by ID
func (p *Postgres) ListBathRecords(ctx context.Context) ([]*model.BathRecord, error) {
	var rows []bathRecordRow
	if err := p.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, goerr.Wrap(err, "failed to list bath records")
	}

	return rowsToModels(rows)
}

// Close closes the underlying connection pool
func (p *Postgres) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return goerr.Wrap(err, "failed to get underlying sql.DB")
	}
	return sqlDB.Close()
}

var _ interfaces.Repository = (*Postgres)(nil) // Compile-time interface check
