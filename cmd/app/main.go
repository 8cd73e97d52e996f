package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"rentora/cmd/fx/account_fx"
	"rentora/cmd/fx/config_fx"
	"rentora/cmd/fx/controllers_fx"
	"rentora/cmd/fx/db_fx"
	"rentora/cmd/fx/geocode_fx"
	"rentora/cmd/fx/listing_fx"
	"rentora/cmd/fx/logger_fx"
	"rentora/cmd/fx/memcache_fx"
	"rentora/cmd/fx/reservation_fx"
	"rentora/cmd/fx/storage_fx"
	"rentora/cmd/fx/wizard_fx"
	"rentora/internal/api/controllers"
	"rentora/internal/config"
	"rentora/pkg/logger"
	"rentora/pkg/metrics"
	"rentora/pkg/middleware"
	"rentora/pkg/utils"
)

func main() {
	app := fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		account_fx.Module,
		listing_fx.Module,
		reservation_fx.Module,
		storage_fx.Module,
		geocode_fx.Module,
		memcache_fx.Module,
		wizard_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				log.Info("Starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

type routerParams struct {
	fx.In

	Log                   *zap.Logger
	Tokens                *utils.TokenIssuer
	AccountController     *controllers.AccountController
	ListingController     *controllers.ListingController
	ReservationController *controllers.ReservationController
	MediaController       *controllers.MediaController
	WizardController      *controllers.WizardController
}

func ProvideRouter(p routerParams) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(logger.GinMiddleware(p.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, p)

	return r
}

func RegisterRoutes(r *gin.Engine, p routerParams) {
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/healthz", func(c *gin.Context) { utils.RespondSuccess(c, nil, "ok") })

	requireAuth := middleware.JWTAuthMiddleware(p.Tokens)
	optionalAuth := middleware.OptionalAuthMiddleware(p.Tokens)

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/register", p.AccountController.Register)
	accountGroup.POST("/login", p.AccountController.Login)
	accountGroup.GET("/me", requireAuth, p.AccountController.Me)
	accountGroup.GET("/me/menu", optionalAuth, p.AccountController.Menu)

	r.GET("/categories", p.ListingController.ListCategories)

	listingGroup := r.Group("/listings")
	listingGroup.GET("", p.ListingController.ListListings)
	listingGroup.GET("/:id", optionalAuth, p.ListingController.GetListing)
	listingGroup.DELETE("/:id", requireAuth, p.ListingController.DeleteListing)
	listingGroup.POST("/:id/favorite", requireAuth, p.AccountController.AddFavorite)
	listingGroup.DELETE("/:id/favorite", requireAuth, p.AccountController.RemoveFavorite)
	r.GET("/favorites", requireAuth, p.AccountController.ListFavorites)

	reservationGroup := r.Group("/reservations", requireAuth)
	reservationGroup.POST("", p.ReservationController.CreateReservation)
	reservationGroup.GET("", p.ReservationController.ListReservations)
	reservationGroup.DELETE("/:id", p.ReservationController.CancelReservation)

	r.POST("/images", requireAuth, p.MediaController.UploadImage)
	r.GET("/geocode", p.MediaController.Geocode)

	r.POST("/ui/rent", optionalAuth, p.WizardController.OpenRent)

	wizardGroup := r.Group("/wizard", requireAuth)
	wizardGroup.POST("", p.WizardController.Open)
	wizardGroup.GET("/:id", p.WizardController.State)
	wizardGroup.PATCH("/:id/fields", p.WizardController.SetFields)
	wizardGroup.POST("/:id/primary", p.WizardController.Primary)
	wizardGroup.POST("/:id/secondary", p.WizardController.Secondary)
	wizardGroup.DELETE("/:id", p.WizardController.Cancel)
}
