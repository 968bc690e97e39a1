package model

import (
	"net/url"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/types"
)

// BathRecord is one bath performed by the shop, shown in the weekly photo carousel once approved.
//
// The bath date and the week start are unexported: SetBathDate is the only
// way to change the bath date and it recomputes the week start in the same call.
type BathRecord struct {
	ID           types.BathRecordID
	PetName      string
	PhotoURL     string
	Caption      string
	Approved     bool
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time

	bathDate  civil.Date
	weekStart civil.Date
}

// NewBathRecord creates a BathRecord with its week start derived from bathDate
func NewBathRecord(petName, photoURL string, bathDate civil.Date) (*BathRecord, error) {
	petName = strings.TrimSpace(petName)
	if petName == "" {
		return nil, goerr.New("pet name is required", goerr.T(ErrTagValidation))
	}
	if err := validatePhotoURL(photoURL); err != nil {
		return nil, err
	}

	now := time.Now()
	record := &BathRecord{
		ID:        types.NewBathRecordID(),
		PetName:   petName,
		PhotoURL:  photoURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := record.SetBathDate(bathDate); err != nil {
		return nil, err
	}

	return record, nil
}

// RestoreBathRecord rebuilds a record exactly as a repository stored it,
// including a week start that may no longer match the bath date.
// Only repository implementations should call it.
func RestoreBathRecord(record BathRecord, bathDate, storedWeekStart civil.Date) *BathRecord {
	record.bathDate = bathDate
	record.weekStart = storedWeekStart
	return &record
}

// BathDate returns the date the bath was performed
func (r *BathRecord) BathDate() civil.Date {
	return r.bathDate
}

// WeekStart returns the Monday of the week the record belongs to
func (r *BathRecord) WeekStart() civil.Date {
	return r.weekStart
}

// SetBathDate sets the bath date and recomputes the week start
func (r *BathRecord) SetBathDate(d civil.Date) error {
	if !d.IsValid() {
		return goerr.Wrap(ErrInvalidDate, "bath date is not a valid calendar date",
			goerr.V("bathDate", d),
			goerr.V("bathRecordID", r.ID))
	}

	r.bathDate = d
	r.assignWeekStart()
	r.UpdatedAt = time.Now()
	return nil
}

// assignWeekStart is the single writer of weekStart
func (r *BathRecord) assignWeekStart() {
	r.weekStart = MondayOnOrBefore(r.bathDate)
}

// HasConsistentWeekStart reports whether the stored week start matches the bath date
func (r *BathRecord) HasConsistentWeekStart() bool {
	return r.weekStart == MondayOnOrBefore(r.bathDate)
}

// RepairWeekStart recomputes the week start and returns the previous value
// when it changed. It returns ok=false when the record was already consistent.
func (r *BathRecord) RepairWeekStart() (previous civil.Date, ok bool) {
	if r.HasConsistentWeekStart() {
		return civil.Date{}, false
	}
	previous = r.weekStart
	r.assignWeekStart()
	r.UpdatedAt = time.Now()
	return previous, true
}

// Approve makes the record eligible for the carousel
func (r *BathRecord) Approve() {
	r.Approved = true
	r.UpdatedAt = time.Now()
}

// Unapprove removes the record from the carousel
func (r *BathRecord) Unapprove() {
	r.Approved = false
	r.UpdatedAt = time.Now()
}

// UpdatePetName updates the pet name
func (r *BathRecord) UpdatePetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return goerr.New("pet name cannot be empty", goerr.T(ErrTagValidation))
	}
	r.PetName = name
	r.UpdatedAt = time.Now()
	return nil
}

// UpdatePhotoURL updates the photo URL
func (r *BathRecord) UpdatePhotoURL(photoURL string) error {
	if err := validatePhotoURL(photoURL); err != nil {
		return err
	}
	r.PhotoURL = photoURL
	r.UpdatedAt = time.Now()
	return nil
}

// UpdateCaption updates the caption
func (r *BathRecord) UpdateCaption(caption string) {
	r.Caption = caption
	r.UpdatedAt = time.Now()
}

// SetDisplayOrder sets the carousel position
func (r *BathRecord) SetDisplayOrder(order int) {
	r.DisplayOrder = order
	r.UpdatedAt = time.Now()
}

func validatePhotoURL(photoURL string) error {
	if photoURL == "" {
		return goerr.New("photo URL is required", goerr.T(ErrTagValidation))
	}
	u, err := url.Parse(photoURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return goerr.New("photo URL must be an absolute http(s) URL",
			goerr.T(ErrTagValidation),
			goerr.V("photoURL", photoURL))
	}
	return nil
}

// SortForDisplay orders records by DisplayOrder ascending, then newest first.
// ID breaks the remaining ties so the order is fully deterministic.
func SortForDisplay(records []*BathRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.DisplayOrder != b.DisplayOrder {
			return a.DisplayOrder < b.DisplayOrder
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}

// WeeklyCarousel is the set of approved photos shown for one completed week
type WeeklyCarousel struct {
	WeekStart   civil.Date
	WeekEnd     civil.Date
	Label       string
	BathRecords []*BathRecord
}

// NewWeeklyCarousel builds a carousel for weekStart
func NewWeeklyCarousel(weekStart civil.Date, records []*BathRecord) *WeeklyCarousel {
	if records == nil {
		records = []*BathRecord{}
	}
	return &WeeklyCarousel{
		WeekStart:   weekStart,
		WeekEnd:     WeekEnd(weekStart),
		Label:       WeekLabel(weekStart),
		BathRecords: records,
	}
}

// IsEmpty reports whether the week has nothing to show
func (c *WeeklyCarousel) IsEmpty() bool {
	return len(c.BathRecords) == 0
}
