package model

import (
	"cloud.google.com/go/civil"

	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/types"
)

// WeekStartChange describes one record whose stored week start was rewritten
type WeekStartChange struct {
	BathRecordID types.BathRecordID
	PetName      string
	BathDate     civil.Date
	From         civil.Date
	To           civil.Date
}

// RepairReport summarizes a week start repair run
type RepairReport struct {
	DryRun  bool
	Scanned int
	Changes []WeekStartChange
}

// Changed returns the number of rows whose week start differed from the recomputed value
func (r *RepairReport) Changed() int {
	return len(r.Changes)
}
