package main

import (
	"context"
	"log/slog"
	"os"

	"pernoite/config"
	"pernoite/internal/delivery"
	"pernoite/internal/delivery/http"
	httphandler "pernoite/internal/delivery/http/router/handler"
	"pernoite/internal/delivery/worker"
	workerhandler "pernoite/internal/delivery/worker/handler"
	logs "pernoite/internal/infra/log"
	"pernoite/internal/infra/persistence/postgres"
	"pernoite/internal/infra/push"
	"pernoite/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewNotificationRepository,
			postgres.NewTokenRepository,
			postgres.NewPreferenceRepository,
			postgres.NewRecipientRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			push.NewExpoGateway,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSchedulerService,
			impl.NewDirectService,
			impl.NewPreferenceService,
			impl.NewDeviceService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			httphandler.NewNotificationHandler,
			httphandler.NewDeviceHandler,
			httphandler.NewPreferenceHandler,
			workerhandler.NewSweepHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
