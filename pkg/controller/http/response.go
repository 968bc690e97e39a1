package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/m-mizutani/ctxlog"

	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/model"
	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/utils/apperr"
)

type bathRecordResponse struct {
	ID           string    `json:"id"`
	PetName      string    `json:"pet_name"`
	PhotoURL     string    `json:"photo_url"`
	Caption      string    `json:"caption"`
	BathDate     string    `json:"bath_date"`
	WeekStart    string    `json:"week_start"`
	Approved     bool      `json:"approved"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func newBathRecordResponse(record *model.BathRecord) bathRecordResponse {
	return bathRecordResponse{
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

func newBathRecordResponses(records []*model.BathRecord) []bathRecordResponse {
	resp := make([]bathRecordResponse, 0, len(records))
	for _, record := range records {
		resp = append(resp, newBathRecordResponse(record))
	}
	return resp
}

type carouselResponse struct {
	WeekStart   string               `json:"week_start"`
	WeekEnd     string               `json:"week_end"`
	Label       string               `json:"label"`
	BathRecords []bathRecordResponse `json:"bath_records"`
}

func newCarouselResponse(carousel *model.WeeklyCarousel) carouselResponse {
	return carouselResponse{
		WeekStart:   model.FormatDate(carousel.WeekStart),
		WeekEnd:     model.FormatDate(carousel.WeekEnd),
		Label:       carousel.Label,
		BathRecords: newBathRecordResponses(carousel.BathRecords),
	}
}

type weekOfResponse struct {
	Date              string `json:"date"`
	WeekStart         string `json:"week_start"`
	WeekEnd           string `json:"week_end"`
	Label             string `json:"label"`
	CurrentWeekStart  string `json:"current_week_start"`
	PreviousWeekStart string `json:"previous_week_start"`
}

type weekStartChangeResponse struct {
	BathRecordID string `json:"bath_record_id"`
	PetName      string `json:"pet_name"`
	BathDate     string `json:"bath_date"`
	From         string `json:"from"`
	To           string `json:"to"`
}

type repairResponse struct {
	DryRun  bool                      `json:"dry_run"`
	Scanned int                       `json:"scanned"`
	Changed int                       `json:"changed"`
	Changes []weekStartChangeResponse `json:"changes"`
}

func newRepairResponse(report *model.RepairReport) repairResponse {
	changes := make([]weekStartChangeResponse, 0, len(report.Changes))
	for _, c := range report.Changes {
		changes = append(changes, weekStartChangeResponse{
			BathRecordID: c.BathRecordID.String(),
			PetName:      c.PetName,
			BathDate:     model.FormatDate(c.BathDate),
			From:         model.FormatDate(c.From),
			To:           model.FormatDate(c.To),
		})
	}
	return repairResponse{
		DryRun:  report.DryRun,
		Scanned: report.Scanned,
		Changed: report.Changed(),
		Changes: changes,
	}
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctxlog.From(ctx).Error("Failed to encode response", "error", err)
	}
}

// writeError maps an error to a status code: validation 400, not found 404, anything else 500
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var resp errorResponse
	var status int

	switch {
	case model.IsValidationError(err):
		status = http.StatusBadRequest
		resp.Error = err.Error()

		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			resp.Fields = make(map[string]string, len(verrs))
			for _, fe := range verrs {
				resp.Fields[fe.Field()] = fe.Tag()
			}
		}

	case model.IsNotFound(err):
		status = http.StatusNotFound
		resp.Error = "bath record not found"

	default:
		status = http.StatusInternalServerError
		resp.Error = "internal server error"
		apperr.Handle(ctx, err)
	}

	writeJSON(ctx, w, status, resp)
}
