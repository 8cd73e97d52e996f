package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	RespondWithCode(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	RespondWithCode(c, http.StatusCreated, data, message)
}

func RespondWithCode(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	RespondErrorData(c, code, message, nil)
}

func RespondErrorData(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

var errorStatus = []struct {
	err     error
	code    int
	message string
}{
	{ErrInvalidPage, http.StatusBadRequest, "Page must be greater than 0"},
	{ErrInvalidPageSize, http.StatusBadRequest, "Page size must be between 1 and 100"},
	{ErrAccountNotFound, http.StatusNotFound, "Account not found"},
	{ErrEmailAlreadyExists, http.StatusConflict, "Email already registered"},
	{ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
	{ErrUnauthorized, http.StatusUnauthorized, "Authentication required"},
	{ErrForbidden, http.StatusForbidden, "Forbidden"},
	{ErrListingNotFound, http.StatusNotFound, "Listing not found"},
	{ErrInvalidListing, http.StatusBadRequest, "Invalid listing"},
	{ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{ErrInvalidDateRange, http.StatusBadRequest, "End date must be after start date"},
	{ErrDatesUnavailable, http.StatusConflict, "Those dates are already booked"},
	{ErrWizardNotFound, http.StatusNotFound, "Wizard session not found"},
	{ErrWizardBusy, http.StatusConflict, "Listing is being created"},
	{ErrWizardStepInvalid, http.StatusUnprocessableEntity, "Please complete this step"},
	{ErrSubmissionFailed, http.StatusBadGateway, "Something went wrong"},
	{ErrInvalidImage, http.StatusBadRequest, "Invalid image"},
	{ErrImageUpload, http.StatusBadGateway, "Image upload failed"},
	{ErrPlaceNotFound, http.StatusNotFound, "Place not found"},
	{ErrGeocodeFailed, http.StatusBadGateway, "Geocoding failed"},
}

// HandleServiceError maps service sentinels to a status code. Anything
// unknown is logged and reported as a 500.
func HandleServiceError(c *gin.Context, err error) {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			RespondError(c, e.code, e.message)
			return
		}
	}

	if errors.Is(err, ErrDatabaseError) {
		zap.L().Error("database error", zap.Error(err), zap.String("trace_id", c.GetString("trace_id")))
	} else {
		zap.L().Error("unknown error", zap.Error(err), zap.String("trace_id", c.GetString("trace_id")))
	}
	RespondError(c, http.StatusInternalServerError, "Internal server error")
}
