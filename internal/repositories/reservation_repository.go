package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"rentora/internal/models/db_models"
)

// ErrOverlap is returned by CreateIfFree when the listing is already booked
// for part of the requested stay.
var ErrOverlap = errors.New("reservation overlaps an existing one")

type ReservationQuery struct {
	UserID    *uuid.UUID
	ListingID *uuid.UUID
	AuthorID  *uuid.UUID
}

type ReservationRepository interface {
	CreateIfFree(ctx context.Context, reservation *db_models.Reservation) error
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Reservation, error)
	List(ctx context.Context, q ReservationQuery) ([]db_models.Reservation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) CreateIfFree(ctx context.Context, reservation *db_models.Reservation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Serialise bookings per listing by locking its row.
		lock := tx.Select("id").Where("id = ?", reservation.ListingID)
		if tx.Dialector.Name() == "postgres" {
			lock = lock.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var listing db_models.Listing
		if err := lock.Take(&listing).Error; err != nil {
			return err
		}

		var overlapping int64
		err := tx.Model(&db_models.Reservation{}).
			Where("listing_id = ? AND start_date < ? AND end_date > ?",
				reservation.ListingID, reservation.EndDate, reservation.StartDate).
			Count(&overlapping).Error
		if err != nil {
			return err
		}
		if overlapping > 0 {
			return ErrOverlap
		}

		return tx.Create(reservation).Error
	})
}

func (r *reservationRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Reservation, error) {
	var reservation db_models.Reservation
	err := r.db.WithContext(ctx).
		Preload("Listing").
		First(&reservation, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) List(ctx context.Context, q ReservationQuery) ([]db_models.Reservation, error) {
	var reservations []db_models.Reservation

	tx := r.db.WithContext(ctx).Preload("Listing")
	if q.UserID != nil {
		tx = tx.Where("user_id = ?", *q.UserID)
	}
	if q.ListingID != nil {
		tx = tx.Where("listing_id = ?", *q.ListingID)
	}
	if q.AuthorID != nil {
		owned := r.db.Model(&db_models.Listing{}).Select("id").Where("user_id = ?", *q.AuthorID)
		tx = tx.Where("listing_id IN (?)", owned)
	}

	if err := tx.Order("created_at DESC").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *reservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Reservation{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
