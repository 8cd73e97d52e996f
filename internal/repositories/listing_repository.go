package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"rentora/internal/models/db_models"
)

// ListingQuery is the storage side of a browse request. Zero values mean
// "no constraint".
type ListingQuery struct {
	UserID         *uuid.UUID
	IDs            []uuid.UUID
	Category       string
	LocationValue  string
	MinGuests      int
	MinRooms       int
	MinBathrooms   int
	FreeFrom       time.Time
	FreeUntil      time.Time
	Page, PageSize int
}

type ListingRepository interface {
	Create(ctx context.Context, listing *db_models.Listing) (uuid.UUID, error)
	GetByIDWithUser(ctx context.Context, id uuid.UUID) (*db_models.Listing, error)
	List(ctx context.Context, q ListingQuery) ([]db_models.Listing, error)
	DeleteOwned(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

type listingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(ctx context.Context, listing *db_models.Listing) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(listing).Error; err != nil {
		return uuid.Nil, err
	}
	return listing.ID, nil
}

// ────────────────────────────────────────────────────────────────
// Read helpers return nil + nil error when no rows are found.
// ────────────────────────────────────────────────────────────────

func (r *listingRepository) GetByIDWithUser(ctx context.Context, id uuid.UUID) (*db_models.Listing, error) {
	var listing db_models.Listing
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&listing, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) List(ctx context.Context, q ListingQuery) ([]db_models.Listing, error) {
	var listings []db_models.Listing

	tx := r.db.WithContext(ctx).Model(&db_models.Listing{})
	if q.UserID != nil {
		tx = tx.Where("user_id = ?", *q.UserID)
	}
	if q.IDs != nil {
		if len(q.IDs) == 0 {
			return []db_models.Listing{}, nil
		}
		tx = tx.Where("id IN ?", q.IDs)
	}
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}
	if q.LocationValue != "" {
		tx = tx.Where("location_value = ?", q.LocationValue)
	}
	if q.MinGuests > 0 {
		tx = tx.Where("guest_count >= ?", q.MinGuests)
	}
	if q.MinRooms > 0 {
		tx = tx.Where("room_count >= ?", q.MinRooms)
	}
	if q.MinBathrooms > 0 {
		tx = tx.Where("bathroom_count >= ?", q.MinBathrooms)
	}
	if !q.FreeFrom.IsZero() && !q.FreeUntil.IsZero() {
		booked := r.db.Model(&db_models.Reservation{}).
			Select("listing_id").
			Where("start_date < ? AND end_date > ?", q.FreeUntil, q.FreeFrom)
		tx = tx.Where("id NOT IN (?)", booked)
	}
	if q.PageSize > 0 {
		page := q.Page
		if page < 1 {
			page = 1
		}
		tx = tx.Offset((page - 1) * q.PageSize).Limit(q.PageSize)
	}

	err := tx.Order("created_at DESC").Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) DeleteOwned(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&db_models.Listing{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
