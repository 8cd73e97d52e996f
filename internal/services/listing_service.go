package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"rentora/internal/models/db_models"
	"rentora/internal/models/request_models"
	"rentora/internal/models/response_models"
	"rentora/internal/repositories"
	"rentora/internal/wizard"
	"rentora/pkg/utils"
)

type ListingServiceInterface interface {
	CreateListing(ctx context.Context, userID uuid.UUID, req request_models.CreateListingRequest) (uuid.UUID, error)
	GetListingById(ctx context.Context, id uuid.UUID) (response_models.Listing, error)
	GetListingDetail(ctx context.Context, id uuid.UUID, currentUserID *uuid.UUID) (response_models.ListingDetail, error)
	ListListings(ctx context.Context, filter request_models.ListingFilter) ([]response_models.Listing, error)
	DeleteListing(ctx context.Context, id, userID uuid.UUID) error
	// CreatorFor binds wizard submissions to the host that owns the session.
	CreatorFor(userID uuid.UUID) wizard.Creator
}

type ListingService struct {
	listingRepo     repositories.ListingRepository
	reservationRepo repositories.ReservationRepository
	accountRepo     repositories.AccountRepository
	categories      CategoryServiceInterface
	validate        *validator.Validate
	log             *zap.Logger
}

func NewListingService(
	listingRepo repositories.ListingRepository,
	reservationRepo repositories.ReservationRepository,
	accountRepo repositories.AccountRepository,
	categories CategoryServiceInterface,
	log *zap.Logger,
) ListingServiceInterface {
	return &ListingService{
		listingRepo:     listingRepo,
		reservationRepo: reservationRepo,
		accountRepo:     accountRepo,
		categories:      categories,
		validate:        validator.New(validator.WithRequiredStructEnabled()),
		log:             log,
	}
}

// ListingFromDraft converts a finished wizard draft into a create request.
func ListingFromDraft(d wizard.Draft) request_models.CreateListingRequest {
	req := request_models.CreateListingRequest{
		Category:      d.Category,
		GuestCount:    d.GuestCount,
		RoomCount:     d.RoomCount,
		BathroomCount: d.BathroomCount,
		ImageSrc:      d.ImageSrc,
		Title:         strings.TrimSpace(d.Title),
		Description:   strings.TrimSpace(d.Description),
		Price:         d.Price,
	}
	if d.Location != nil {
		req.Location = request_models.LocationRequest{
			Value:     d.Location.Value,
			Label:     d.Location.Label,
			Latitude:  d.Location.LatLng[0],
			Longitude: d.Location.LatLng[1],
		}
	}
	return req
}

func (s *ListingService) CreatorFor(userID uuid.UUID) wizard.Creator {
	return wizard.CreatorFunc(func(ctx context.Context, d wizard.Draft) (string, error) {
		id, err := s.CreateListing(ctx, userID, ListingFromDraft(d))
		if err != nil {
			return "", err
		}
		return id.String(), nil
	})
}

func (s *ListingService) CreateListing(ctx context.Context, userID uuid.UUID, req request_models.CreateListingRequest) (uuid.UUID, error) {
	if err := s.validate.Struct(req); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", utils.ErrInvalidListing, err)
	}
	category, ok := s.categories.Find(req.Category)
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: unknown category %q", utils.ErrInvalidListing, req.Category)
	}

	listing := &db_models.Listing{
		Title:         req.Title,
		Description:   req.Description,
		ImageSrc:      req.ImageSrc,
		Category:      category.Label,
		RoomCount:     req.RoomCount,
		BathroomCount: req.BathroomCount,
		GuestCount:    req.GuestCount,
		LocationValue: req.Location.Value,
		LocationLabel: req.Location.Label,
		Latitude:      req.Location.Latitude,
		Longitude:     req.Location.Longitude,
		Price:         req.Price,
		UserID:        userID,
	}

	id, err := s.listingRepo.Create(ctx, listing)
	if err != nil {
		s.log.Error("create listing", zap.Error(err), zap.String("user_id", userID.String()))
		return uuid.Nil, utils.ErrDatabaseError
	}

	s.log.Info("listing created",
		zap.String("listing_id", id.String()),
		zap.String("user_id", userID.String()),
		zap.String("category", listing.Category))
	return id, nil
}

func (s *ListingService) GetListingById(ctx context.Context, id uuid.UUID) (response_models.Listing, error) {
	listing, err := s.listingRepo.GetByIDWithUser(ctx, id)
	if err != nil {
		s.log.Error("get listing", zap.Error(err))
		return response_models.Listing{}, utils.ErrDatabaseError
	}
	if listing == nil {
		return response_models.Listing{}, utils.ErrListingNotFound
	}
	return toListingResponse(listing), nil
}

func (s *ListingService) GetListingDetail(ctx context.Context, id uuid.UUID, currentUserID *uuid.UUID) (response_models.ListingDetail, error) {
	var (
		listing      *db_models.Listing
		reservations []db_models.Reservation
		currentUser  *db_models.Account
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		listing, err = s.listingRepo.GetByIDWithUser(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		reservations, err = s.reservationRepo.List(gctx, repositories.ReservationQuery{ListingID: &id})
		return err
	})
	if currentUserID != nil {
		g.Go(func() error {
			var err error
			currentUser, err = s.accountRepo.FindById(gctx, *currentUserID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Error("load listing detail", zap.Error(err), zap.String("listing_id", id.String()))
		return response_models.ListingDetail{}, utils.ErrDatabaseError
	}
	if listing == nil {
		return response_models.ListingDetail{}, utils.ErrListingNotFound
	}

	detail := response_models.ListingDetail{
		Listing:       toListingResponse(listing),
		Host:          toPublicUser(&listing.User),
		Reservations:  toReservationResponses(reservations),
		DisabledDates: disabledDates(reservations),
	}
	if category, ok := s.categories.Find(listing.Category); ok {
		detail.Category = &category
	}
	if currentUser != nil {
		safe := toSafeUser(currentUser)
		detail.CurrentUser = &safe
		for _, fav := range currentUser.FavoriteIDs {
			if fav == listing.ID.String() {
				detail.IsFavorite = true
				break
			}
		}
	}
	return detail, nil
}

func (s *ListingService) ListListings(ctx context.Context, filter request_models.ListingFilter) ([]response_models.Listing, error) {
	q := repositories.ListingQuery{
		UserID:        filter.UserID,
		Category:      filter.Category,
		LocationValue: filter.LocationValue,
		MinGuests:     filter.GuestCount,
		MinRooms:      filter.RoomCount,
		MinBathrooms:  filter.BathroomCount,
		Page:          filter.Page,
		PageSize:      filter.PageSize,
	}
	if q.PageSize < 0 || q.PageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	if q.Page < 0 {
		return nil, utils.ErrInvalidPage
	}

	if filter.StartDate != "" && filter.EndDate != "" {
		start, end, err := utils.ParseStay(filter.StartDate, filter.EndDate)
		if err != nil {
			return nil, err
		}
		q.FreeFrom, q.FreeUntil = start, end
	}

	listings, err := s.listingRepo.List(ctx, q)
	if err != nil {
		s.log.Error("list listings", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return toListingResponses(listings), nil
}

func (s *ListingService) DeleteListing(ctx context.Context, id, userID uuid.UUID) error {
	listing, err := s.listingRepo.GetByIDWithUser(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if listing == nil {
		return utils.ErrListingNotFound
	}
	if listing.UserID != userID {
		return utils.ErrForbidden
	}

	deleted, err := s.listingRepo.DeleteOwned(ctx, id, userID)
	if err != nil {
		s.log.Error("delete listing", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrListingNotFound
	}
	return nil
}

// disabledDates lists every booked night. The check-out day stays free so
// the next guest can check in on it. Rows longer than the longest bookable
// stay are cut to that length.
func disabledDates(reservations []db_models.Reservation) []string {
	seen := make(map[string]struct{})
	dates := make([]string, 0)
	for _, r := range reservations {
		last := r.EndDate.AddDate(0, 0, -1)
		if utils.NightsBetween(r.StartDate, r.EndDate) > utils.MaxStayNights {
			last = r.StartDate.AddDate(0, 0, utils.MaxStayNights-1)
		}
		for _, d := range utils.EachDay(r.StartDate, last) {
			key := d.Format(utils.DateLayout)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			dates = append(dates, key)
		}
	}
	slices.Sort(dates)
	return dates
}
