package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
	_ "time/tzdata"

	"cloud.google.com/go/civil"
	"github.com/m-mizutani/gt"

	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/interfaces"
	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/interfaces/mocks"
	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/model"
	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/types"
	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/repository"
	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/usecase"
)

func mustDate(t *testing.T, s string) civil.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	gt.NoError(t, err).Required()
	return d
}

// fixedClock returns a clock stopped at the given wall time in loc
func fixedClock(year int, month time.Month, day, hour int, loc *time.Location) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, hour, 0, 0, 0, loc)
	}
}

func newUseCase(repo interfaces.Repository, opts ...usecase.BathRecordOption) *usecase.BathRecord {
	return usecase.NewBathRecord(repo, usecase.NewBathRecordConfig(opts...))
}

func createRecord(t *testing.T, uc *usecase.BathRecord, pet, bathDate string, order int, approved bool) *model.BathRecord {
	t.Helper()
	record, err := uc.CreateBathRecord(context.Background(), interfaces.BathRecordInput{
		PetName:      pet,
		PhotoURL:     fmt.Sprintf("https://cdn.example.com/%s.jpg", pet),
		BathDate:     mustDate(t, bathDate),
		DisplayOrder: order,
		Approved:     approved,
	})
	gt.NoError(t, err).Required()
	return record
}

// putLegacy stores a record whose week start was written by an older, inconsistent writer
func putLegacy(t *testing.T, repo interfaces.Repository, pet, bathDate, storedWeekStart string) *model.BathRecord {
	t.Helper()
	now := time.Now()
	record := model.RestoreBathRecord(model.BathRecord{
		ID:        types.NewBathRecordID(),
		PetName:   pet,
		PhotoURL:  fmt.Sprintf("https://cdn.example.com/%s.jpg", pet),
		Approved:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}, mustDate(t, bathDate), mustDate(t, storedWeekStart))
	gt.NoError(t, repo.PutBathRecord(context.Background(), record)).Required()
	return record
}

func petNames(records []*model.BathRecord) []string {
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.PetName
	}
	return names
}

func TestBathRecordUseCase_CreateBathRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("derives week start from bath date", func(t *testing.T) {
		uc := newUseCase(repository.NewMemory())

		record := createRecord(t, uc, "Luna", "2025-09-21", 1, true)
		gt.Equal(t, record.WeekStart(), mustDate(t, "2025-09-15"))
		gt.True(t, record.Approved)

		stored, err := uc.GetBathRecord(ctx, record.ID)
		gt.NoError(t, err).Required()
		gt.Equal(t, stored.WeekStart(), mustDate(t, "2025-09-15"))
		gt.Equal(t, stored.BathDate(), mustDate(t, "2025-09-21"))
	})

	t.Run("rejects invalid input as validation error", func(t *testing.T) {
		uc := newUseCase(repository.NewMemory())

		_, err := uc.CreateBathRecord(ctx, interfaces.BathRecordInput{
			PetName:  "",
			PhotoURL: "https://cdn.example.com/x.jpg",
			BathDate: mustDate(t, "2025-09-10"),
		})
		gt.Error(t, err)
		gt.True(t, model.IsValidationError(err))

		_, err = uc.CreateBathRecord(ctx, interfaces.BathRecordInput{
			PetName:  "Max",
			PhotoURL: "https://cdn.example.com/x.jpg",
			BathDate: civil.Date{Year: 2025, Month: time.February, Day: 30},
		})
		gt.Error(t, err)
		gt.True(t, model.IsValidationError(err))
	})

	t.Run("storage error is propagated", func(t *testing.T) {
		storageErr := errors.New("connection reset")
		repo := &mocks.RepositoryMock{
			PutBathRecordFunc: func(ctx context.Context, record *model.BathRecord) error {
				return storageErr
			},
		}
		uc := newUseCase(repo)

		_, err := uc.CreateBathRecord(ctx, interfaces.BathRecordInput{
			PetName:  "Max",
			PhotoURL: "https://cdn.example.com/max.jpg",
			BathDate: mustDate(t, "2025-09-10"),
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, storageErr))
		gt.A(t, repo.PutBathRecordCalls()).Length(1)
	})
}

func TestBathRecordUseCase_CreateBathRecordUsesClock(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 9, 9, 10, 0, 0, 0, time.UTC)
	ticks := 0
	clock := func() time.Time {
		ticks++
		return base.Add(time.Duration(ticks) * time.Minute)
	}

	repo := repository.NewMemory()
	uc := newUseCase(repo, usecase.WithClock(clock))

	first := createRecord(t, uc, "Luna", "2025-09-09", 1, true)
	second := createRecord(t, uc, "Max", "2025-09-10", 1, true)

	gt.Equal(t, first.CreatedAt, base.Add(time.Minute))
	gt.Equal(t, first.UpdatedAt, first.CreatedAt)
	gt.Equal(t, second.CreatedAt, base.Add(2*time.Minute))

	// equal display order falls back to newest first
	records, err := uc.SelectForWeek(ctx, mustDate(t, "2025-09-08"))
	gt.NoError(t, err).Required()
	gt.Equal(t, petNames(records), []string{"Max", "Luna"})
}

func TestBathRecordUseCase_ImportBathRecords(t *testing.T) {
	ctx := context.Background()
	input := func(pet, bathDate string) interfaces.BathRecordInput {
		return interfaces.BathRecordInput{
			PetName:  pet,
			PhotoURL: fmt.Sprintf("https://cdn.example.com/%s.jpg", pet),
			BathDate: mustDate(t, bathDate),
			Approved: true,
		}
	}

	t.Run("saves every record", func(t *testing.T) {
		repo := repository.NewMemory()
		uc := newUseCase(repo)

		n, err := uc.ImportBathRecords(ctx, []interfaces.BathRecordInput{
			input("Luna", "2025-09-09"),
			input("Max", "2025-09-14"),
		})
		gt.NoError(t, err).Required()
		gt.Equal(t, n, 2)

		stored, err := repo.ListBathRecords(ctx)
		gt.NoError(t, err).Required()
		gt.A(t, stored).Length(2)
	})

	t.Run("invalid record leaves the store untouched", func(t *testing.T) {
		repo := repository.NewMemory()
		uc := newUseCase(repo)

		n, err := uc.ImportBathRecords(ctx, []interfaces.BathRecordInput{
			input("Luna", "2025-09-09"),
			input("", "2025-09-10"),
			input("Max", "2025-09-14"),
		})
		gt.Error(t, err)
		gt.True(t, model.IsValidationError(err))
		gt.Equal(t, n, 0)

		stored, err := repo.ListBathRecords(ctx)
		gt.NoError(t, err).Required()
		gt.A(t, stored).Length(0)
	})

	t.Run("storage error reports records already written", func(t *testing.T) {
		storageErr := errors.New("unavailable")
		repo := &mocks.RepositoryMock{
			PutBathRecordFunc: func(ctx context.Context, record *model.BathRecord) error {
				if record.PetName == "Max" {
					return storageErr
				}
				return nil
			},
		}
		uc := newUseCase(repo)

		n, err := uc.ImportBathRecords(ctx, []interfaces.BathRecordInput{
			input("Luna", "2025-09-09"),
			input("Max", "2025-09-14"),
			input("Bella", "2025-09-12"),
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, storageErr))
		gt.Equal(t, n, 1)
		gt.A(t, repo.PutBathRecordCalls()).Length(2)
	})
}

func TestBathRecordUseCase_SelectForWeek(t *testing.T) {
	ctx := context.Background()

	t.Run("orders approved records by display order", func(t *testing.T) {
		uc := newUseCase(repository.NewMemory())

		// Inserted out of order on purpose
		createRecord(t, uc, "Charlie", "2025-09-12", 4, true)
		createRecord(t, uc, "Luna", "2025-09-09", 1, true)
		createRecord(t, uc, "Milo", "2025-09-13", 5, true)
		createRecord(t, uc, "Max", "2025-09-10", 2, true)
		createRecord(t, uc, "Bella", "2025-09-11", 3, true)

		records, err := uc.SelectForWeek(ctx, mustDate(t, "2025-09-08"))
		gt.NoError(t, err).Required()
		gt.Equal(t, petNames(records), []string{"Luna", "Max", "Bella", "Charlie", "Milo"})

		again, err := uc.SelectForWeek(ctx, mustDate(t, "2025-09-08"))
		gt.NoError(t, err).Required()
		gt.Equal(t, petNames(again), petNames(records))
	})

	t.Run("excludes unapproved records whatever their display order", func(t *testing.T) {
		uc := newUseCase(repository.NewMemory())

		createRecord(t, uc, "Luna", "2025-09-09", 2, true)
		createRecord(t, uc, "Rex", "2025-09-10", 0, false)
		createRecord(t, uc, "Max", "2025-09-11", 3, true)

		records, err := uc.SelectForWeek(ctx, mustDate(t, "2025-09-08"))
		gt.NoError(t, err).Required()
		gt.Equal(t, petNames(records), []string{"Luna", "Max"})
	})

	t.Run("excludes records of other weeks", func(t *testing.T) {
		uc := newUseCase(repository.NewMemory())

		createRecord(t, uc, "Luna", "2025-09-14", 1, true)  // Sunday, same week
		createRecord(t, uc, "Max", "2025-09-15", 1, true)   // next Monday
		createRecord(t, uc, "Bella", "2025-09-07", 1, true) // previous Sunday

		records, err := uc.SelectForWeek(ctx, mustDate(t, "2025-09-08"))
		gt.NoError(t, err).Required()
		gt.Equal(t, petNames(records), []string{"Luna"})
	})

	t.Run("empty week returns empty slice", func(t *testing.T) {
		uc := newUseCase(repository.NewMemory())

		records, err := uc.SelectForWeek(ctx, mustDate(t, "2025-09-08"))
		gt.NoError(t, err)
		gt.True(t, records != nil)
		gt.A(t, records).Length(0)
	})

	t.Run("rejects a week start that is not a Monday", func(t *testing.T) {
		repo := &mocks.RepositoryMock{}
		uc := newUseCase(repo)

		_, err := uc.SelectForWeek(ctx, mustDate(t, "2025-09-10"))
		gt.Error(t, err)
		gt.True(t, model.IsValidationError(err))
		gt.True(t, errors.Is(err, model.ErrNotWeekStart))
		gt.A(t, repo.ListApprovedBathRecordsByWeekCalls()).Length(0)
	})

	t.Run("storage error is propagated", func(t *testing.T) {
		storageErr := errors.New("deadline exceeded")
		repo := &mocks.RepositoryMock{
			ListApprovedBathRecordsByWeekFunc: func(ctx context.Context, weekStart civil.Date) ([]*model.BathRecord, error) {
				return nil, storageErr
			},
		}
		uc := newUseCase(repo)

		_, err := uc.SelectForWeek(ctx, mustDate(t, "2025-09-08"))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, storageErr))
		gt.False(t, model.IsValidationError(err))
	})
}

func TestBathRecordUseCase_SelectPreviousWeek(t *testing.T) {
	ctx := context.Background()
	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	gt.NoError(t, err).Required()

	t.Run("selects the week before the current one", func(t *testing.T) {
		repo := repository.NewMemory()
		uc := newUseCase(repo,
			usecase.WithLocation(saoPaulo),
			usecase.WithClock(fixedClock(2025, time.September, 15, 10, saoPaulo)),
		)

		createRecord(t, uc, "Luna", "2025-09-09", 1, true)
		createRecord(t, uc, "Max", "2025-09-16", 1, true) // current week, not shown yet

		carousel, err := uc.SelectPreviousWeek(ctx)
		gt.NoError(t, err).Required()
		gt.Equal(t, carousel.WeekStart, mustDate(t, "2025-09-08"))
		gt.Equal(t, carousel.WeekEnd, mustDate(t, "2025-09-14"))
		gt.Equal(t, petNames(carousel.BathRecords), []string{"Luna"})
	})

	t.Run("today is observed in the configured zone", func(t *testing.T) {
		// 02:00 UTC on Monday is still Sunday evening in Sao Paulo
		uc := newUseCase(repository.NewMemory(),
			usecase.WithLocation(saoPaulo),
			usecase.WithClock(fixedClock(2025, time.September, 15, 2, time.UTC)),
		)

		gt.Equal(t, uc.Today(), mustDate(t, "2025-09-14"))

		carousel, err := uc.SelectPreviousWeek(ctx)
		gt.NoError(t, err).Required()
		gt.Equal(t, carousel.WeekStart, mustDate(t, "2025-09-01"))
	})

	t.Run("empty week yields empty carousel", func(t *testing.T) {
		uc := newUseCase(repository.NewMemory(),
			usecase.WithClock(fixedClock(2025, time.September, 17, 12, time.UTC)),
		)

		carousel, err := uc.SelectPreviousWeek(ctx)
		gt.NoError(t, err).Required()
		gt.True(t, carousel.IsEmpty())
		gt.Equal(t, carousel.Label, "Sep 8-14")
	})
}

func TestBathRecordUseCase_UpdateBathRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("new bath date moves the record to its week", func(t *testing.T) {
		uc := newUseCase(repository.NewMemory())
		record := createRecord(t, uc, "Luna", "2025-09-10", 1, true)

		newDate := mustDate(t, "2025-09-21")
		caption := "Moved to Sunday"
		updated, err := uc.UpdateBathRecord(ctx, record.ID, interfaces.BathRecordUpdate{
			BathDate: &newDate,
			Caption:  &caption,
		})
		gt.NoError(t, err).Required()
		gt.Equal(t, updated.WeekStart(), mustDate(t, "2025-09-15"))
		gt.Equal(t, updated.Caption, caption)

		old, err := uc.SelectForWeek(ctx, mustDate(t, "2025-09-08"))
		gt.NoError(t, err).Required()
		gt.A(t, old).Length(0)

		moved, err := uc.SelectForWeek(ctx, mustDate(t, "2025-09-15"))
		gt.NoError(t, err).Required()
		gt.Equal(t, petNames(moved), []string{"Luna"})
	})

	t.Run("invalid change leaves the record untouched", func(t *testing.T) {
		uc := newUseCase(repository.NewMemory())
		record := createRecord(t, uc, "Luna", "2025-09-10", 1, true)

		name := "Luna the Second"
		badURL := "not a url"
		_, err := uc.UpdateBathRecord(ctx, record.ID, interfaces.BathRecordUpdate{
			PetName:  &name,
			PhotoURL: &badURL,
		})
		gt.Error(t, err)
		gt.True(t, model.IsValidationError(err))

		stored, err := uc.GetBathRecord(ctx, record.ID)
		gt.NoError(t, err).Required()
		gt.Equal(t, stored.PetName, "Luna")
	})

	t.Run("unknown record is not found", func(t *testing.T) {
		uc := newUseCase(repository.NewMemory())

		order := 3
		_, err := uc.UpdateBathRecord(ctx, types.NewBathRecordID(), interfaces.BathRecordUpdate{
			DisplayOrder: &order,
		})
		gt.Error(t, err)
		gt.True(t, model.IsNotFound(err))
	})
}

func TestBathRecordUseCase_SetApproval(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(repository.NewMemory())
	record := createRecord(t, uc, "Bella", "2025-09-11", 1, false)

	records, err := uc.SelectForWeek(ctx, mustDate(t, "2025-09-08"))
	gt.NoError(t, err).Required()
	gt.A(t, records).Length(0)

	approved, err := uc.SetApproval(ctx, record.ID, true)
	gt.NoError(t, err).Required()
	gt.True(t, approved.Approved)

	records, err = uc.SelectForWeek(ctx, mustDate(t, "2025-09-08"))
	gt.NoError(t, err).Required()
	gt.Equal(t, petNames(records), []string{"Bella"})

	_, err = uc.SetApproval(ctx, record.ID, false)
	gt.NoError(t, err).Required()

	records, err = uc.SelectForWeek(ctx, mustDate(t, "2025-09-08"))
	gt.NoError(t, err).Required()
	gt.A(t, records).Length(0)
}

func TestBathRecordUseCase_DeleteBathRecord(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(repository.NewMemory())
	record := createRecord(t, uc, "Milo", "2025-09-13", 1, true)

	gt.NoError(t, uc.DeleteBathRecord(ctx, record.ID))

	_, err := uc.GetBathRecord(ctx, record.ID)
	gt.True(t, model.IsNotFound(err))

	err = uc.DeleteBathRecord(ctx, record.ID)
	gt.True(t, model.IsNotFound(err))
}

func TestBathRecordUseCase_RepairWeekStarts(t *testing.T) {
	ctx := context.Background()

	t.Run("rewrites inconsistent rows and is idempotent", func(t *testing.T) {
		repo := repository.NewMemory()
		uc := newUseCase(repo)

		createRecord(t, uc, "Luna", "2025-09-09", 1, true)
		sunday := putLegacy(t, repo, "Max", "2025-09-14", "2025-09-14")      // Sunday-first bucket
		wednesday := putLegacy(t, repo, "Bella", "2025-09-10", "2025-09-07") // Sunday-first bucket

		before, err := uc.SelectForWeek(ctx, mustDate(t, "2025-09-08"))
		gt.NoError(t, err).Required()
		gt.Equal(t, petNames(before), []string{"Luna"})

		report, err := uc.RepairWeekStarts(ctx, false)
		gt.NoError(t, err).Required()
		gt.False(t, report.DryRun)
		gt.Equal(t, report.Scanned, 3)
		gt.Equal(t, report.Changed(), 2)

		byID := map[types.BathRecordID]model.WeekStartChange{}
		for _, c := range report.Changes {
			byID[c.BathRecordID] = c
		}
		gt.Equal(t, byID[sunday.ID].From, mustDate(t, "2025-09-14"))
		gt.Equal(t, byID[sunday.ID].To, mustDate(t, "2025-09-08"))
		gt.Equal(t, byID[wednesday.ID].From, mustDate(t, "2025-09-07"))
		gt.Equal(t, byID[wednesday.ID].To, mustDate(t, "2025-09-08"))

		after, err := uc.SelectForWeek(ctx, mustDate(t, "2025-09-08"))
		gt.NoError(t, err).Required()
		gt.A(t, after).Length(3)

		second, err := uc.RepairWeekStarts(ctx, false)
		gt.NoError(t, err).Required()
		gt.Equal(t, second.Scanned, 3)
		gt.Equal(t, second.Changed(), 0)
	})

	t.Run("dry run reports without writing", func(t *testing.T) {
		repo := repository.NewMemory()
		uc := newUseCase(repo)
		legacy := putLegacy(t, repo, "Charlie", "2025-09-12", "2025-09-07")

		report, err := uc.RepairWeekStarts(ctx, true)
		gt.NoError(t, err).Required()
		gt.True(t, report.DryRun)
		gt.Equal(t, report.Changed(), 1)
		gt.Equal(t, report.Changes[0].To, mustDate(t, "2025-09-08"))

		stored, err := repo.GetBathRecord(ctx, legacy.ID)
		gt.NoError(t, err).Required()
		gt.Equal(t, stored.WeekStart(), mustDate(t, "2025-09-07"))

		applied, err := uc.RepairWeekStarts(ctx, false)
		gt.NoError(t, err).Required()
		gt.Equal(t, applied.Changed(), 1)
	})

	t.Run("empty store reports zero", func(t *testing.T) {
		uc := newUseCase(repository.NewMemory())

		report, err := uc.RepairWeekStarts(ctx, false)
		gt.NoError(t, err).Required()
		gt.Equal(t, report.Scanned, 0)
		gt.Equal(t, report.Changed(), 0)
	})

	t.Run("record deleted during repair is skipped", func(t *testing.T) {
		legacy := model.RestoreBathRecord(model.BathRecord{
			ID:       types.NewBathRecordID(),
			PetName:  "Milo",
			PhotoURL: "https://cdn.example.com/milo.jpg",
		}, mustDate(t, "2025-09-13"), mustDate(t, "2025-09-07"))

		repo := &mocks.RepositoryMock{
			ListBathRecordsFunc: func(ctx context.Context) ([]*model.BathRecord, error) {
				return []*model.BathRecord{legacy}, nil
			},
			UpdateBathRecordFunc: func(ctx context.Context, id types.BathRecordID, mutate interfaces.BathRecordMutator) (*model.BathRecord, error) {
				return nil, model.ErrBathRecordNotFound
			},
		}
		uc := newUseCase(repo)

		report, err := uc.RepairWeekStarts(ctx, false)
		gt.NoError(t, err).Required()
		gt.Equal(t, report.Scanned, 1)
		gt.Equal(t, report.Changed(), 0)
		gt.A(t, repo.UpdateBathRecordCalls()).Length(1)
	})

	t.Run("unreadable stored week start is rewritten", func(t *testing.T) {
		// repositories decode a malformed week_start column as the zero date
		legacy := model.RestoreBathRecord(model.BathRecord{
			ID:       types.NewBathRecordID(),
			PetName:  "Nina",
			PhotoURL: "https://cdn.example.com/nina.jpg",
			Approved: true,
		}, mustDate(t, "2025-09-10"), civil.Date{})

		repo := &mocks.RepositoryMock{
			ListBathRecordsFunc: func(ctx context.Context) ([]*model.BathRecord, error) {
				return []*model.BathRecord{legacy}, nil
			},
			UpdateBathRecordFunc: func(ctx context.Context, id types.BathRecordID, mutate interfaces.BathRecordMutator) (*model.BathRecord, error) {
				if err := mutate(legacy); err != nil {
					return nil, err
				}
				return legacy, nil
			},
		}
		uc := newUseCase(repo)

		report, err := uc.RepairWeekStarts(ctx, false)
		gt.NoError(t, err).Required()
		gt.Equal(t, report.Changed(), 1)
		gt.Equal(t, report.Changes[0].From, civil.Date{})
		gt.Equal(t, report.Changes[0].To, mustDate(t, "2025-09-08"))
		gt.True(t, legacy.HasConsistentWeekStart())
	})

	t.Run("storage error aborts the run", func(t *testing.T) {
		storageErr := errors.New("unavailable")
		repo := &mocks.RepositoryMock{
			ListBathRecordsFunc: func(ctx context.Context) ([]*model.BathRecord, error) {
				return nil, storageErr
			},
		}
		uc := newUseCase(repo)

		_, err := uc.RepairWeekStarts(ctx, false)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, storageErr))
	})
}
