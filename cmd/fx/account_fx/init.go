package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"rentora/internal/config"
	"rentora/internal/repositories"
	"rentora/internal/services"
	"rentora/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo, provideTokenIssuer)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideTokenIssuer(cfg config.Config) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	listingRepo repositories.ListingRepository,
	tokens *utils.TokenIssuer,
	log *zap.Logger,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, listingRepo, tokens, log.Named("accounts"))
}
