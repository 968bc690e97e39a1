package repository

import (
	"sort"

	"cloud.google.com/go/civil"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/model"
)

func sortByID(records []*model.BathRecord) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].ID < records[j].ID
	})
}

// decodeStoredDates parses the YYYY-MM-DD columns of a stored row.
//
// A malformed week_start comes back as the zero date so the record reads as
// inconsistent and RepairWeekStarts rewrites it from the bath date. A malformed
// bath_date cannot be recovered; the error carries no validation tag because
// the caller's input is not at fault.
func decodeStoredDates(bathDate, weekStart string) (civil.Date, civil.Date, error) {
	bd, err := model.ParseDate(bathDate)
	if err != nil {
		return civil.Date{}, civil.Date{}, goerr.New("stored bath date is malformed",
			goerr.V("bathDate", bathDate),
			goerr.V("cause", err.Error()))
	}

	ws, err := model.ParseDate(weekStart)
	if err != nil {
		ws = civil.Date{}
	}

	return bd, ws, nil
}
