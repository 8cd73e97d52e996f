package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Reservation struct {
	BaseModel
	UserID     uuid.UUID `gorm:"type:uuid;index"`
	ListingID  uuid.UUID `gorm:"type:uuid;index"`
	StartDate  time.Time
	EndDate    time.Time
	TotalPrice int

	User    Account `gorm:"foreignKey:UserID"`
	Listing Listing `gorm:"foreignKey:ListingID"`
}
