package wizard_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"rentora/internal/services"
	mem "rentora/pkg/memcache"
)

var Module = fx.Provide(provideWizardService)

func provideWizardService(
	sessions mem.SessionStore[*services.WizardSession],
	listings services.ListingServiceInterface,
	categories services.CategoryServiceInterface,
	log *zap.Logger,
) services.WizardServiceInterface {
	return services.NewWizardService(sessions, listings, categories, log.Named("wizard"))
}
