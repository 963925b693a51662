package main

import (
	"context"
	"log/slog"
	"os"

	"estate/config"
	"estate/internal/delivery"
	"estate/internal/delivery/api"
	"estate/internal/delivery/api/middleware"
	"estate/internal/delivery/api/router/handler"
	deliverymiddleware "estate/internal/delivery/middleware"
	"estate/internal/infra/auth"
	logs "estate/internal/infra/log"
	"estate/internal/infra/mail"
	"estate/internal/infra/persistence/postgres"
	"estate/internal/infra/pubsub"
	"estate/internal/infra/qrcode"
	"estate/internal/infra/storage"
	"estate/internal/usecase/impl"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		clockwork.NewRealClock,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewSellerRepository,
			postgres.NewPropertyRepository,
			postgres.NewNewsRepository,
			postgres.NewContactRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewOTPIssuer,
			auth.NewJWTService,
			mail.NewMailSender,
			storage.NewImageStore,
			pubsub.NewEventPublisher,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewAdminService,
			impl.NewPropertyService,
			impl.NewNewsService,
			impl.NewContactService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			deliverymiddleware.NewIPRateLimiter,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewAdminHandler,
			handler.NewPropertyHandler,
			handler.NewNewsHandler,
			handler.NewContactHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
