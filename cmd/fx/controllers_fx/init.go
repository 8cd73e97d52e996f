package controllers_fx

import (
	"go.uber.org/fx"
	"rentora/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewListingController),
	fx.Provide(controllers.NewReservationController),
	fx.Provide(controllers.NewMediaController),
	fx.Provide(controllers.NewWizardController))
