package response_models

type Reservation struct {
	ID         string   `json:"id"`
	UserID     string   `json:"userId"`
	ListingID  string   `json:"listingId"`
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
	TotalPrice int      `json:"totalPrice"`
	CreatedAt  string   `json:"createdAt"`
	Listing    *Listing `json:"listing,omitempty"`
}
