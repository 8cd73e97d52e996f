package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"rentora/internal/models/db_models"
	"rentora/internal/repositories"
	"rentora/pkg/utils"
)

var errNoRows = errors.New("no rows affected")

type fakeAccounts struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*db_models.Account
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{byID: map[uuid.UUID]*db_models.Account{}}
}

func (f *fakeAccounts) InsertTx(account *db_models.Account, _ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	cp := *account
	f.byID[account.ID] = &cp
	return nil
}

func (f *fakeAccounts) FindById(_ context.Context, id uuid.UUID) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAccounts) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.byID {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAccounts) UpdateFavorites(_ context.Context, id uuid.UUID, ids []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.byID[id]
	if !ok {
		return errNoRows
	}
	a.FavoriteIDs = append(db_models.StringList{}, ids...)
	return nil
}

type fakeListings struct {
	mu        sync.Mutex
	byID      map[uuid.UUID]*db_models.Listing
	createErr error
	lastQuery repositories.ListingQuery
	// entered and release, when set, hold Create until the test lets go.
	entered chan struct{}
	release chan struct{}
}

func newFakeListings() *fakeListings {
	return &fakeListings{byID: map[uuid.UUID]*db_models.Listing{}}
}

func (f *fakeListings) add(l db_models.Listing) db_models.Listing {
	f.mu.Lock()
	defer f.mu.Unlock()
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	f.byID[l.ID] = &l
	return l
}

func (f *fakeListings) Create(ctx context.Context, l *db_models.Listing) (uuid.UUID, error) {
	if f.release != nil {
		f.entered <- struct{}{}
		<-f.release
	}
	if err := ctx.Err(); err != nil {
		return uuid.Nil, err
	}
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	return f.add(*l).ID, nil
}

func (f *fakeListings) GetByIDWithUser(_ context.Context, id uuid.UUID) (*db_models.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (f *fakeListings) List(_ context.Context, q repositories.ListingQuery) ([]db_models.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastQuery = q
	out := []db_models.Listing{}
	for _, l := range f.byID {
		if q.IDs != nil {
			keep := false
			for _, id := range q.IDs {
				keep = keep || id == l.ID
			}
			if !keep {
				continue
			}
		}
		if q.Category != "" && q.Category != l.Category {
			continue
		}
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (f *fakeListings) DeleteOwned(_ context.Context, id, userID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.byID[id]
	if !ok || l.UserID != userID {
		return false, nil
	}
	delete(f.byID, id)
	return true, nil
}

type fakeReservations struct {
	mu       sync.Mutex
	listings *fakeListings
	byID     map[uuid.UUID]*db_models.Reservation
}

func newFakeReservations(listings *fakeListings) *fakeReservations {
	return &fakeReservations{listings: listings, byID: map[uuid.UUID]*db_models.Reservation{}}
}

func (f *fakeReservations) CreateIfFree(_ context.Context, r *db_models.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.byID {
		if existing.ListingID == r.ListingID &&
			existing.StartDate.Before(r.EndDate) && r.StartDate.Before(existing.EndDate) {
			return repositories.ErrOverlap
		}
	}
	r.ID = uuid.New()
	cp := *r
	f.byID[r.ID] = &cp
	return nil
}

func (f *fakeReservations) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Reservation, error) {
	f.mu.Lock()
	r, ok := f.byID[id]
	f.mu.Unlock()
	if !ok {
		return nil, nil
	}
	cp := *r
	if l, _ := f.listings.GetByIDWithUser(ctx, r.ListingID); l != nil {
		cp.Listing = *l
	}
	return &cp, nil
}

func (f *fakeReservations) List(ctx context.Context, q repositories.ReservationQuery) ([]db_models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []db_models.Reservation{}
	for _, r := range f.byID {
		if q.UserID != nil && r.UserID != *q.UserID {
			continue
		}
		if q.ListingID != nil && r.ListingID != *q.ListingID {
			continue
		}
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func (f *fakeReservations) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byID, id)
	return nil
}

func day(s string) time.Time {
	t, err := time.Parse(utils.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func mustCategories() CategoryServiceInterface {
	c, err := NewCategoryService()
	if err != nil {
		panic(err)
	}
	return c
}
