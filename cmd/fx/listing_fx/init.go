package listing_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"rentora/internal/repositories"
	"rentora/internal/services"
)

var Module = fx.Provide(
	provideListingRepo, services.NewCategoryService, provideListingService)

func provideListingRepo(db *gorm.DB) repositories.ListingRepository {
	return repositories.NewListingRepository(db)
}

func provideListingService(
	listingRepo repositories.ListingRepository,
	reservationRepo repositories.ReservationRepository,
	accountRepo repositories.AccountRepository,
	categories services.CategoryServiceInterface,
	log *zap.Logger,
) services.ListingServiceInterface {
	return services.NewListingService(listingRepo, reservationRepo, accountRepo, categories, log.Named("listings"))
}
