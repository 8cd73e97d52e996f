package reservation_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"rentora/internal/repositories"
	"rentora/internal/services"
)

var Module = fx.Provide(
	provideReservationRepo, provideReservationService)

func provideReservationRepo(db *gorm.DB) repositories.ReservationRepository {
	return repositories.NewReservationRepository(db)
}

func provideReservationService(
	reservationRepo repositories.ReservationRepository,
	listingRepo repositories.ListingRepository,
	log *zap.Logger,
) services.ReservationServiceInterface {
	return services.NewReservationService(reservationRepo, listingRepo, log.Named("reservations"))
}
