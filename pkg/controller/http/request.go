package http

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/interfaces"
	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/model"
)

// maxRequestBody limits JSON request bodies
const maxRequestBody = 1 << 20

type createBathRecordRequest struct {
	PetName      string `json:"pet_name" validate:"required,max=100"`
	PhotoURL     string `json:"photo_url" validate:"required,url,max=2048"`
	Caption      string `json:"caption" validate:"max=500"`
	BathDate     string `json:"bath_date" validate:"required,ymd"`
	DisplayOrder int    `json:"display_order" validate:"gte=0"`
	Approved     bool   `json:"approved"`
}

func (r *createBathRecordRequest) toInput() interfaces.BathRecordInput {
	// bath_date already passed the ymd check
	bathDate, _ := model.ParseDate(r.BathDate)
	return interfaces.BathRecordInput{
		PetName:      r.PetName,
		PhotoURL:     r.PhotoURL,
		Caption:      r.Caption,
		BathDate:     bathDate,
		DisplayOrder: r.DisplayOrder,
		Approved:     r.Approved,
	}
}

type updateBathRecordRequest struct {
	PetName      *string `json:"pet_name" validate:"omitempty,min=1,max=100"`
	PhotoURL     *string `json:"photo_url" validate:"omitempty,url,max=2048"`
	Caption      *string `json:"caption" validate:"omitempty,max=500"`
	BathDate     *string `json:"bath_date" validate:"omitempty,ymd"`
	DisplayOrder *int    `json:"display_order" validate:"omitempty,gte=0"`
}

func (r *updateBathRecordRequest) toUpdate() interfaces.BathRecordUpdate {
	update := interfaces.BathRecordUpdate{
		PetName:      r.PetName,
		PhotoURL:     r.PhotoURL,
		Caption:      r.Caption,
		DisplayOrder: r.DisplayOrder,
	}
	if r.BathDate != nil {
		bathDate, _ := model.ParseDate(*r.BathDate)
		update.BathDate = &bathDate
	}
	return update
}

type setApprovalRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names instead of Go field names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// ymd accepts strict YYYY-MM-DD calendar dates only
	if err := v.RegisterValidation("ymd", func(fl validator.FieldLevel) bool {
		_, err := model.ParseDate(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}

	return v
}

// decodeJSON reads and validates a JSON request body into dst
func decodeJSON(w http.ResponseWriter, r *http.Request, v *validator.Validate, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return goerr.Wrap(err, "invalid request body", goerr.T(model.ErrTagValidation))
	}

	if err := v.Struct(dst); err != nil {
		return goerr.Wrap(err, "request validation failed", goerr.T(model.ErrTagValidation))
	}

	return nil
}

// pathDate parses a YYYY-MM-DD path parameter
func pathDate(name, value string) (civil.Date, error) {
	d, err := model.ParseDate(value)
	if err != nil {
		return civil.Date{}, goerr.Wrap(err, "invalid date in path", goerr.V(name, value))
	}
	return d, nil
}
