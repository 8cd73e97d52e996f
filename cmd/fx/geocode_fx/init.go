package geocode_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"rentora/internal/config"
	"rentora/internal/services"
)

var Module = fx.Provide(
	services.NewInMemoryGeocodeCache,
	provideGeocodeService,
)

func provideGeocodeService(cfg config.Config, cache services.GeocodeCache, log *zap.Logger) services.GeocodeServiceInterface {
	return services.NewMapboxGeocodeClient(cfg.MapboxToken, cache, log.Named("geocode"))
}
