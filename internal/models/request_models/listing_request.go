package request_models

import "github.com/google/uuid"

// CreateListingRequest is the finished wizard draft. Every field must have
// been touched by the time it reaches the listing service.
type CreateListingRequest struct {
	Category      string `validate:"required"`
	Location      LocationRequest
	GuestCount    int    `validate:"gte=1,lte=100"`
	RoomCount     int    `validate:"gte=1,lte=100"`
	BathroomCount int    `validate:"gte=1,lte=100"`
	ImageSrc      string `validate:"required"`
	Title         string `validate:"required,max=120"`
	Description   string `validate:"required,max=4000"`
	Price         int    `validate:"gte=1,lte=1000000"`
}

type LocationRequest struct {
	Value     string  `validate:"required"`
	Label     string  `validate:"required"`
	Latitude  float64 `validate:"gte=-90,lte=90"`
	Longitude float64 `validate:"gte=-180,lte=180"`
}

// ListingFilter mirrors the browse query string.
type ListingFilter struct {
	UserID        *uuid.UUID
	Category      string `form:"category"`
	LocationValue string `form:"locationValue"`
	GuestCount    int    `form:"guestCount" binding:"omitempty,gte=0"`
	RoomCount     int    `form:"roomCount" binding:"omitempty,gte=0"`
	BathroomCount int    `form:"bathroomCount" binding:"omitempty,gte=0"`
	StartDate     string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate       string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Page          int    `form:"page"`
	PageSize      int    `form:"pageSize"`
}
