package db_models

import "github.com/google/uuid"

type Listing struct {
	BaseModel
	Title         string
	Description   string
	ImageSrc      string
	Category      string `gorm:"index"`
	RoomCount     int
	BathroomCount int
	GuestCount    int
	LocationValue string `gorm:"index"`
	LocationLabel string
	Latitude      float64
	Longitude     float64
	Price         int

	UserID uuid.UUID `gorm:"type:uuid;index"`
	User   Account   `gorm:"foreignKey:UserID"`

	Reservations []Reservation `gorm:"foreignKey:ListingID"`
}
