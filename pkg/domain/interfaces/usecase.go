package interfaces

import (
	"context"

	"cloud.google.com/go/civil"

	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/model"
	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/types"
)

// BathRecordInput holds the fields needed to create a bath record
type BathRecordInput struct {
	PetName      string
	PhotoURL     string
	Caption      string
	BathDate     civil.Date
	DisplayOrder int
	Approved     bool
}

// BathRecordUpdate contains optional fields for updating a bath record
type BathRecordUpdate struct {
	PetName      *string
	PhotoURL     *string
	Caption      *string
	BathDate     *civil.Date
	DisplayOrder *int
}

// BathRecord defines bath record and carousel operations
type BathRecord interface {
	CreateBathRecord(ctx context.Context, input BathRecordInput) (*model.BathRecord, error)
	// ImportBathRecords validates every input before saving any of them
	ImportBathRecords(ctx context.Context, inputs []BathRecordInput) (int, error)
	GetBathRecord(ctx context.Context, id types.BathRecordID) (*model.BathRecord, error)
	UpdateBathRecord(ctx context.Context, id types.BathRecordID, update BathRecordUpdate) (*model.BathRecord, error)
	SetApproval(ctx context.Context, id types.BathRecordID, approved bool) (*model.BathRecord, error)
	DeleteBathRecord(ctx context.Context, id types.BathRecordID) error

	// SelectForWeek returns the approved records of the week starting at weekStart
	SelectForWeek(ctx context.Context, weekStart civil.Date) ([]*model.BathRecord, error)
	// SelectPreviousWeek returns the carousel of the last completed week
	SelectPreviousWeek(ctx context.Context) (*model.WeeklyCarousel, error)
	// Today returns the shop's current calendar date
	Today() civil.Date

	// RepairWeekStarts recomputes every stored week start from its bath date
	RepairWeekStarts(ctx context.Context, dryRun bool) (*model.RepairReport, error)
}

// Digest publishes weekly carousel summaries
type Digest interface {
	PublishWeeklyDigest(ctx context.Context, channelID types.SlackChannelID) (*model.WeeklyCarousel, error)
}
