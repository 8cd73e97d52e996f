package services

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"rentora/internal/models/db_models"
	"rentora/internal/models/request_models"
	"rentora/internal/models/response_models"
	"rentora/internal/repositories"
	"rentora/pkg/utils"
)

type AccountServiceInterface interface {
	Login(request request_models.LoginRequest, ctx context.Context) (response_models.AccountLoginResponse, error)
	CreateAccount(request request_models.SignUpRequest, ctx context.Context) (response_models.SafeUser, error)
	GetSafeUser(ctx context.Context, id uuid.UUID) (response_models.SafeUser, error)
	AddFavorite(ctx context.Context, userID, listingID uuid.UUID) ([]string, error)
	RemoveFavorite(ctx context.Context, userID, listingID uuid.UUID) ([]string, error)
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]response_models.Listing, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	listingRepo repositories.ListingRepository
	tokens      *utils.TokenIssuer
	log         *zap.Logger
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	listingRepo repositories.ListingRepository,
	tokens *utils.TokenIssuer,
	log *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		listingRepo: listingRepo,
		tokens:      tokens,
		log:         log,
	}
}

func (a *AccountService) Login(request request_models.LoginRequest, ctx context.Context) (response_models.AccountLoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, normalizeEmail(request.Email))
	if err != nil {
		a.log.Error("find account by email", zap.Error(err))
		return response_models.AccountLoginResponse{}, utils.ErrDatabaseError
	}

	// Same error for unknown email and wrong password.
	if account == nil {
		return response_models.AccountLoginResponse{}, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return response_models.AccountLoginResponse{}, utils.ErrInvalidCredentials
	}

	token, err := a.tokens.CreateToken(account.ID, account.Role)
	if err != nil {
		a.log.Error("sign token", zap.Error(err))
		return response_models.AccountLoginResponse{}, err
	}

	return response_models.AccountLoginResponse{Token: token, User: toSafeUser(account)}, nil
}

func (a *AccountService) CreateAccount(request request_models.SignUpRequest, ctx context.Context) (response_models.SafeUser, error) {
	email := normalizeEmail(request.Email)

	existingAccount, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		a.log.Error("find account by email", zap.Error(err))
		return response_models.SafeUser{}, utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return response_models.SafeUser{}, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return response_models.SafeUser{}, err
	}

	newAccount := &db_models.Account{
		Name:         strings.TrimSpace(request.DisplayName),
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         db_models.RoleUser,
		FavoriteIDs:  db_models.StringList{},
	}

	if err := a.accountRepo.InsertTx(newAccount, ctx); err != nil {
		a.log.Error("insert account", zap.Error(err))
		return response_models.SafeUser{}, utils.ErrDatabaseError
	}

	a.log.Info("account registered", zap.String("account_id", newAccount.ID.String()))
	return toSafeUser(newAccount), nil
}

func (a *AccountService) GetSafeUser(ctx context.Context, id uuid.UUID) (response_models.SafeUser, error) {
	account, err := a.findAccount(ctx, id)
	if err != nil {
		return response_models.SafeUser{}, err
	}
	return toSafeUser(account), nil
}

func (a *AccountService) AddFavorite(ctx context.Context, userID, listingID uuid.UUID) ([]string, error) {
	listing, err := a.listingRepo.GetByIDWithUser(ctx, listingID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if listing == nil {
		return nil, utils.ErrListingNotFound
	}

	return a.updateFavorites(ctx, userID, func(ids []string) []string {
		if slices.Contains(ids, listingID.String()) {
			return ids
		}
		return append(ids, listingID.String())
	})
}

func (a *AccountService) RemoveFavorite(ctx context.Context, userID, listingID uuid.UUID) ([]string, error) {
	return a.updateFavorites(ctx, userID, func(ids []string) []string {
		return slices.DeleteFunc(ids, func(id string) bool { return id == listingID.String() })
	})
}

func (a *AccountService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]response_models.Listing, error) {
	account, err := a.findAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(account.FavoriteIDs))
	for _, raw := range account.FavoriteIDs {
		if id, err := uuid.Parse(raw); err == nil {
			ids = append(ids, id)
		}
	}

	listings, err := a.listingRepo.List(ctx, repositories.ListingQuery{IDs: ids})
	if err != nil {
		a.log.Error("list favorite listings", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return toListingResponses(listings), nil
}

func (a *AccountService) updateFavorites(ctx context.Context, userID uuid.UUID, change func([]string) []string) ([]string, error) {
	account, err := a.findAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := change(slices.Clone([]string(account.FavoriteIDs)))
	if ids == nil {
		ids = []string{}
	}
	if err := a.accountRepo.UpdateFavorites(ctx, userID, ids); err != nil {
		a.log.Error("update favorites", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return ids, nil
}

func (a *AccountService) findAccount(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	account, err := a.accountRepo.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		a.log.Error("find account", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return account, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
