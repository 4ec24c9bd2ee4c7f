package commands

import (
	"context"

	"advisor-alert-srv/config"
	"advisor-alert-srv/internal/advisoralert"
	"advisor-alert-srv/internal/app"
	"advisor-alert-srv/pkg/log"
)

// Connector opens the alert use case and returns a function releasing it.
type Connector func(ctx context.Context) (advisoralert.UseCase, func(), error)

// ConnectFromConfig loads the service configuration and connects its stores.
func ConnectFromConfig(ctx context.Context) (advisoralert.UseCase, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	l := log.Init(log.ZapConfig{
		Level:    "warn",
		Mode:     cfg.Logger.Mode,
		Encoding: "console",
	})

	a, err := app.Build(ctx, l, cfg)
	if err != nil {
		return nil, nil, err
	}
	return a.Alerts, func() { a.Close(context.Background()) }, nil
}
