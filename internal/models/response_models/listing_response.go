package response_models

type Listing struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	ImageSrc      string     `json:"imageSrc"`
	Category      string     `json:"category"`
	RoomCount     int        `json:"roomCount"`
	BathroomCount int        `json:"bathroomCount"`
	GuestCount    int        `json:"guestCount"`
	LocationValue string     `json:"locationValue"`
	LocationLabel string     `json:"locationLabel,omitempty"`
	LatLng        [2]float64 `json:"latlng"`
	Price         int        `json:"price"`
	UserID        string     `json:"userId"`
	CreatedAt     string     `json:"createdAt"`
}

type Category struct {
	Label       string `json:"label" yaml:"label"`
	Icon        string `json:"icon" yaml:"icon"`
	Description string `json:"description" yaml:"description"`
}

// ListingDetail is everything the listing page needs in one payload.
type ListingDetail struct {
	Listing       Listing       `json:"listing"`
	Host          PublicUser    `json:"host"`
	Category      *Category     `json:"category,omitempty"`
	Reservations  []Reservation `json:"reservations"`
	DisabledDates []string      `json:"disabledDates"`
	IsFavorite    bool          `json:"isFavorite"`
	CurrentUser   *SafeUser     `json:"currentUser,omitempty"`
}
