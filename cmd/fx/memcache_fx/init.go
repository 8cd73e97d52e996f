package memcache_fx

import (
	"go.uber.org/fx"
	"rentora/internal/config"
	"rentora/internal/services"
	mem "rentora/pkg/memcache"
)

var Module = fx.Provide(provideWizardSessions)

func provideWizardSessions(cfg config.Config) mem.SessionStore[*services.WizardSession] {
	return services.NewWizardSessions(cfg.WizardSessionTTL)
}
