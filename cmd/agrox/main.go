package main

import (
	"context"
	"log/slog"
	"os"

	"agrox/config"
	"agrox/internal/delivery"
	"agrox/internal/delivery/api"
	apimiddleware "agrox/internal/delivery/api/middleware"
	"agrox/internal/delivery/api/router/handler"
	"agrox/internal/infra/idgen"
	logs "agrox/internal/infra/log"
	"agrox/internal/infra/metrics"
	"agrox/internal/infra/persistence"
	"agrox/internal/infra/persistence/store"
	"agrox/internal/usecase"
	"agrox/internal/usecase/impl"

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
		injectStore(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedSamples,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			metrics.New,
		),
		idgen.Module,
		persistence.Module,
	)
}

func injectStore() fx.Option {
	return store.Module
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewResolverService,
			impl.NewSessionService,
			impl.NewNotificationService,
			impl.NewListingService,
			impl.NewWizardService,
			impl.NewRequestService,
			impl.NewFacilityService,
			impl.NewServiceService,
			impl.NewInquiryService,
			impl.NewMessageService,
			impl.NewBookmarkService,
			impl.NewAnalyticsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewListingHandler,
			handler.NewWizardHandler,
			handler.NewRequestHandler,
			handler.NewOfferingHandler,
			handler.NewInquiryHandler,
			handler.NewMessageHandler,
			handler.NewNotificationHandler,
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

// seedSamples fills an empty marketplace when seed.enabled is set.
func seedSamples(ctx context.Context, listingUC usecase.ListingUsecase, logger *slog.Logger) error {
	seeded, err := listingUC.SeedSamples(ctx)
	if err != nil {
		return err
	}
	if seeded {
		logger.Info("Seeded sample listings")
	}

	return nil
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
