package utils

import "errors"

var (
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")

	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")

	ErrListingNotFound = errors.New("listing not found")
	ErrInvalidListing  = errors.New("invalid listing")

	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidDateRange    = errors.New("invalid date range")
	ErrDatesUnavailable    = errors.New("dates unavailable")

	ErrWizardNotFound    = errors.New("wizard session not found")
	ErrWizardBusy        = errors.New("wizard is submitting")
	ErrWizardStepInvalid = errors.New("wizard step has invalid fields")
	ErrSubmissionFailed  = errors.New("something went wrong creating the listing")

	ErrImageUpload   = errors.New("image upload failed")
	ErrInvalidImage  = errors.New("invalid image")
	ErrGeocodeFailed = errors.New("geocoding failed")
	ErrPlaceNotFound = errors.New("place not found")
)
