package services

import (
	"github.com/google/uuid"
	"rentora/internal/models/db_models"
	"rentora/internal/models/response_models"
	"rentora/pkg/utils"
)

func toSafeUser(a *db_models.Account) response_models.SafeUser {
	favorites := []string(a.FavoriteIDs)
	if favorites == nil {
		favorites = []string{}
	}
	return response_models.SafeUser{
		ID:          a.ID.String(),
		Name:        a.Name,
		Email:       a.Email,
		Image:       a.Image,
		Role:        a.Role,
		FavoriteIDs: favorites,
		CreatedAt:   utils.FormatRFC3339(utils.FromUnixSeconds(a.CreatedAt)),
		UpdatedAt:   utils.FormatRFC3339(utils.FromUnixSeconds(a.UpdatedAt)),
	}
}

func toPublicUser(a *db_models.Account) response_models.PublicUser {
	return response_models.PublicUser{
		ID:        a.ID.String(),
		Name:      a.Name,
		Image:     a.Image,
		CreatedAt: utils.FormatRFC3339(utils.FromUnixSeconds(a.CreatedAt)),
	}
}

func toListingResponse(l *db_models.Listing) response_models.Listing {
	return response_models.Listing{
		ID:            l.ID.String(),
		Title:         l.Title,
		Description:   l.Description,
		ImageSrc:      l.ImageSrc,
		Category:      l.Category,
		RoomCount:     l.RoomCount,
		BathroomCount: l.BathroomCount,
		GuestCount:    l.GuestCount,
		LocationValue: l.LocationValue,
		LocationLabel: l.LocationLabel,
		LatLng:        [2]float64{l.Latitude, l.Longitude},
		Price:         l.Price,
		UserID:        l.UserID.String(),
		CreatedAt:     utils.FormatRFC3339(utils.FromUnixSeconds(l.CreatedAt)),
	}
}

func toListingResponses(listings []db_models.Listing) []response_models.Listing {
	out := make([]response_models.Listing, 0, len(listings))
	for i := range listings {
		out = append(out, toListingResponse(&listings[i]))
	}
	return out
}

func toReservationResponse(r *db_models.Reservation) response_models.Reservation {
	res := response_models.Reservation{
		ID:         r.ID.String(),
		UserID:     r.UserID.String(),
		ListingID:  r.ListingID.String(),
		StartDate:  r.StartDate.UTC().Format(utils.DateLayout),
		EndDate:    r.EndDate.UTC().Format(utils.DateLayout),
		TotalPrice: r.TotalPrice,
		CreatedAt:  utils.FormatRFC3339(utils.FromUnixSeconds(r.CreatedAt)),
	}
	if r.Listing.ID != uuid.Nil {
		listing := toListingResponse(&r.Listing)
		res.Listing = &listing
	}
	return res
}

func toReservationResponses(reservations []db_models.Reservation) []response_models.Reservation {
	out := make([]response_models.Reservation, 0, len(reservations))
	for i := range reservations {
		out = append(out, toReservationResponse(&reservations[i]))
	}
	return out
}
