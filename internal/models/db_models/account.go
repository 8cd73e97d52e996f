package db_models

const RoleUser = "user"

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Image        string
	Role         string `gorm:"default:user"`
	FavoriteIDs  StringList

	Listings     []Listing     `gorm:"foreignKey:UserID"`
	Reservations []Reservation `gorm:"foreignKey:UserID"`
}
