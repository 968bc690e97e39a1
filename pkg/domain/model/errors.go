package model

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"
)

// Error tags used by controllers to classify failures
var (
	ErrTagValidation = goerr.NewTag("validation")
	ErrTagNotFound   = goerr.NewTag("not_found")
)

// Sentinel errors for domain operations
var (
	ErrInvalidDate        = goerr.New("invalid calendar date", goerr.T(ErrTagValidation))
	ErrNotWeekStart       = goerr.New("week start must be a Monday", goerr.T(ErrTagValidation))
	ErrBathRecordNotFound = goerr.New("bath record not found", goerr.T(ErrTagNotFound))
)

// IsValidationError reports whether any error in the chain carries the validation tag
func IsValidationError(err error) bool {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if goerr.HasTag(e, ErrTagValidation) {
			return true
		}
	}
	return false
}

// IsNotFound reports whether any error in the chain carries the not-found tag
func IsNotFound(err error) bool {
	if errors.Is(err, ErrBathRecordNotFound) {
		return true
	}
	for e := err; e != nil; e = errors.Unwrap(e) {
		if goerr.HasTag(e, ErrTagNotFound) {
			return true
		}
	}
	return false
}
