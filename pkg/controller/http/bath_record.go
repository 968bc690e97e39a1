package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/interfaces"
	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/model"
	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/types"
)

// BathRecordHandler serves the bath record and carousel API
type BathRecordHandler struct {
	bathRecordUC interfaces.BathRecord
	validate     *validator.Validate
}

// NewBathRecordHandler creates a new bath record handler
func NewBathRecordHandler(bathRecordUC interfaces.BathRecord) *BathRecordHandler {
	return &BathRecordHandler{
		bathRecordUC: bathRecordUC,
		validate:     newValidator(),
	}
}

func pathID(r *http.Request) (types.BathRecordID, error) {
	id := types.BathRecordID(chi.URLParam(r, "id"))
	if err := id.Validate(); err != nil {
		return "", goerr.Wrap(err, "invalid bath record ID", goerr.T(model.ErrTagValidation))
	}
	return id, nil
}

// HandleCarousel returns the carousel of the last completed week
func (h *BathRecordHandler) HandleCarousel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	carousel, err := h.bathRecordUC.SelectPreviousWeek(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, newCarouselResponse(carousel))
}

// HandleSelectForWeek returns the approved records of the week starting at {weekStart}
func (h *BathRecordHandler) HandleSelectForWeek(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	weekStart, err := pathDate("weekStart", chi.URLParam(r, "weekStart"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	records, err := h.bathRecordUC.SelectForWeek(ctx, weekStart)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, newCarouselResponse(model.NewWeeklyCarousel(weekStart, records)))
}

// HandleWeekOf resolves the week a date belongs to
func (h *BathRecordHandler) HandleWeekOf(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	d, err := pathDate("date", chi.URLParam(r, "date"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	weekStart := model.MondayOnOrBefore(d)
	today := h.bathRecordUC.Today()
	writeJSON(ctx, w, http.StatusOK, weekOfResponse{
		Date:              model.FormatDate(d),
		WeekStart:         model.FormatDate(weekStart),
		WeekEnd:           model.FormatDate(model.WeekEnd(weekStart)),
		Label:             model.WeekLabel(weekStart),
		CurrentWeekStart:  model.FormatDate(model.CurrentWeekStart(today)),
		PreviousWeekStart: model.FormatDate(model.PreviousWeekStart(today)),
	})
}

// HandleCreate creates a bath record
func (h *BathRecordHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createBathRecordRequest
	if err := decodeJSON(w, r, h.validate, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	record, err := h.bathRecordUC.CreateBathRecord(ctx, req.toInput())
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Location", "/api/bath-records/"+record.ID.String())
	writeJSON(ctx, w, http.StatusCreated, newBathRecordResponse(record))
}

// HandleGet returns one bath record
func (h *BathRecordHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	record, err := h.bathRecordUC.GetBathRecord(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, newBathRecordResponse(record))
}

// HandleUpdate applies a partial update to a bath record
func (h *BathRecordHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateBathRecordRequest
	if err := decodeJSON(w, r, h.validate, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	record, err := h.bathRecordUC.UpdateBathRecord(ctx, id, req.toUpdate())
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, newBathRecordResponse(record))
}

// HandleSetApproval approves or unapproves a bath record
func (h *BathRecordHandler) HandleSetApproval(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req setApprovalRequest
	if err := decodeJSON(w, r, h.validate, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	record, err := h.bathRecordUC.SetApproval(ctx, id, *req.Approved)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, newBathRecordResponse(record))
}

// HandleDelete deletes a bath record
func (h *BathRecordHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.bathRecordUC.DeleteBathRecord(ctx, id); err != nil {
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleRepairWeekStarts recomputes every stored week start. ?dry_run=true only reports.
func (h *BathRecordHandler) HandleRepairWeekStarts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dryRun := false
	if v := r.URL.Query().Get("dry_run"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			writeError(ctx, w, goerr.Wrap(err, "invalid dry_run parameter",
				goerr.T(model.ErrTagValidation),
				goerr.V("dry_run", v)))
			return
		}
		dryRun = parsed
	}

	report, err := h.bathRecordUC.RepairWeekStarts(ctx, dryRun)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, newRepairResponse(report))
}
