package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"rentora/internal/models/db_models"
	"rentora/internal/models/request_models"
	"rentora/internal/models/response_models"
	"rentora/internal/repositories"
	"rentora/pkg/metrics"
	"rentora/pkg/utils"
)

type ReservationServiceInterface interface {
	CreateReservation(ctx context.Context, userID uuid.UUID, req request_models.CreateReservationRequest) (response_models.Reservation, error)
	ListReservations(ctx context.Context, filter request_models.ReservationFilter) ([]response_models.Reservation, error)
	CancelReservation(ctx context.Context, id, userID uuid.UUID) error
}

type ReservationService struct {
	reservationRepo repositories.ReservationRepository
	listingRepo     repositories.ListingRepository
	log             *zap.Logger
}

func NewReservationService(
	reservationRepo repositories.ReservationRepository,
	listingRepo repositories.ListingRepository,
	log *zap.Logger,
) ReservationServiceInterface {
	return &ReservationService{
		reservationRepo: reservationRepo,
		listingRepo:     listingRepo,
		log:             log,
	}
}

func (s *ReservationService) CreateReservation(ctx context.Context, userID uuid.UUID, req request_models.CreateReservationRequest) (response_models.Reservation, error) {
	start, end, err := utils.ParseStay(req.StartDate, req.EndDate)
	if err != nil {
		metrics.RecordReservation("invalid")
		return response_models.Reservation{}, err
	}

	listing, err := s.listingRepo.GetByIDWithUser(ctx, req.ListingID)
	if err != nil {
		s.log.Error("get listing for reservation", zap.Error(err))
		return response_models.Reservation{}, utils.ErrDatabaseError
	}
	if listing == nil {
		return response_models.Reservation{}, utils.ErrListingNotFound
	}

	total, err := stayTotal(utils.NightsBetween(start, end), listing.Price)
	if err != nil {
		metrics.RecordReservation("invalid")
		return response_models.Reservation{}, err
	}

	reservation := &db_models.Reservation{
		UserID:     userID,
		ListingID:  listing.ID,
		StartDate:  start,
		EndDate:    end,
		TotalPrice: total,
	}

	if err := s.reservationRepo.CreateIfFree(ctx, reservation); err != nil {
		if errors.Is(err, repositories.ErrOverlap) {
			metrics.RecordReservation("conflict")
			return response_models.Reservation{}, utils.ErrDatesUnavailable
		}
		s.log.Error("create reservation", zap.Error(err))
		metrics.RecordReservation("error")
		return response_models.Reservation{}, utils.ErrDatabaseError
	}

	metrics.RecordReservation("created")
	s.log.Info("reservation created",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("listing_id", listing.ID.String()),
		zap.Int("total_price", reservation.TotalPrice))

	reservation.Listing = *listing
	return toReservationResponse(reservation), nil
}

func (s *ReservationService) ListReservations(ctx context.Context, filter request_models.ReservationFilter) ([]response_models.Reservation, error) {
	if filter.UserID == nil && filter.ListingID == nil && filter.AuthorID == nil {
		return []response_models.Reservation{}, nil
	}

	reservations, err := s.reservationRepo.List(ctx, repositories.ReservationQuery{
		UserID:    filter.UserID,
		ListingID: filter.ListingID,
		AuthorID:  filter.AuthorID,
	})
	if err != nil {
		s.log.Error("list reservations", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return toReservationResponses(reservations), nil
}

// CancelReservation lets either the guest or the listing's host cancel.
func (s *ReservationService) CancelReservation(ctx context.Context, id, userID uuid.UUID) error {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		s.log.Error("get reservation", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if reservation == nil {
		return utils.ErrReservationNotFound
	}
	if reservation.UserID != userID && reservation.Listing.UserID != userID {
		return utils.ErrForbidden
	}

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		s.log.Error("delete reservation", zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

// stayTotal is nights times the nightly price, refusing results that do not
// fit in an int32.
func stayTotal(nights, price int) (int, error) {
	if nights < 0 || price < 0 {
		return 0, fmt.Errorf("%w: negative price or nights", utils.ErrInvalidListing)
	}
	if price > 0 && nights > math.MaxInt32/price {
		return 0, fmt.Errorf("%w: total price overflows", utils.ErrInvalidListing)
	}
	return nights * price, nil
}
