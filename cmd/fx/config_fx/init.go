package config_fx

import (
	"go.uber.org/fx"
	"rentora/internal/config"
)

var Module = fx.Provide(config.Load)
