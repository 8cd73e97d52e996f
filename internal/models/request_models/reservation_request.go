package request_models

import "github.com/google/uuid"

type CreateReservationRequest struct {
	ListingID uuid.UUID `json:"listingId" binding:"required"`
	StartDate string    `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string    `json:"endDate" binding:"required,datetime=2006-01-02"`
}

// ReservationFilter selects trips (UserID), bookings on one listing
// (ListingID) or bookings on every listing a host owns (AuthorID).
type ReservationFilter struct {
	UserID    *uuid.UUID
	ListingID *uuid.UUID
	AuthorID  *uuid.UUID
}
