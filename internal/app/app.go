// Package app connects the stores and builds the use cases shared by the API
// server and the operator CLI.
package app

import (
	"context"
	"database/sql"
	"fmt"

	"advisor-alert-srv/config"
	configMinio "advisor-alert-srv/config/minio"
	"advisor-alert-srv/config/postgre"
	configRedis "advisor-alert-srv/config/redis"
	"advisor-alert-srv/internal/advisoralert"
	alertRepo "advisor-alert-srv/internal/advisoralert/repository"
	alertMinio "advisor-alert-srv/internal/advisoralert/repository/minio"
	alertRedis "advisor-alert-srv/internal/advisoralert/repository/redis"
	alertUC "advisor-alert-srv/internal/advisoralert/usecase"
	crmPostgres "advisor-alert-srv/internal/crm/repository/postgre"
	"advisor-alert-srv/internal/settings"
	settingsPostgres "advisor-alert-srv/internal/settings/repository/postgre"
	settingsUC "advisor-alert-srv/internal/settings/usecase"
	"advisor-alert-srv/pkg/discord"
	"advisor-alert-srv/pkg/encrypter"
	"advisor-alert-srv/pkg/log"
	"advisor-alert-srv/pkg/mail"
	pkgMinio "advisor-alert-srv/pkg/minio"
	pkgRedis "advisor-alert-srv/pkg/redis"
)

// App holds the connected stores and the use cases built on them.
type App struct {
	DB      *sql.DB
	Redis   pkgRedis.IRedis
	Archive pkgMinio.MinIO
	Discord discord.IDiscord

	Alerts   advisoralert.UseCase
	Settings settings.UseCase
}

// Build connects every store in cfg. Discord and MinIO are optional: an empty
// webhook or endpoint disables them.
func Build(ctx context.Context, l log.Logger, cfg *config.Config) (*App, error) {
	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		return nil, err
	}
	l.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	rdb, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		_ = postgre.Disconnect(ctx, db)
		return nil, err
	}
	l.Infof(ctx, "Redis connected successfully to %s:%d", cfg.Redis.Host, cfg.Redis.Port)

	a := &App{DB: db, Redis: rdb}

	var archive alertRepo.DigestArchive
	store, err := configMinio.Connect(ctx, cfg.MinIO)
	if err != nil {
		a.Close(ctx)
		return nil, err
	}
	if store != nil {
		a.Archive = store
		archive = alertMinio.New(l, store)
		l.Infof(ctx, "MinIO connected successfully to %s", cfg.MinIO.Endpoint)
	}

	if cfg.Secrets.DiscordWebhookURL != "" {
		d, err := discord.New(l, cfg.Secrets.DiscordWebhookURL)
		if err != nil {
			a.Close(ctx)
			return nil, fmt.Errorf("failed to initialize Discord: %w", err)
		}
		a.Discord = d
	}

	enc, err := encrypter.New(cfg.Secrets.EncryptKey)
	if err != nil {
		a.Close(ctx)
		return nil, fmt.Errorf("failed to initialize encrypter: %w", err)
	}

	loc := cfg.App.Location()
	a.Settings = settingsUC.New(l, settingsPostgres.New(l, db))
	a.Alerts = alertUC.New(l, alertUC.Dependencies{
		CRM:        crmPostgres.New(l, db, loc),
		Settings:   a.Settings,
		Escalation: alertRedis.New(l, rdb),
		Archive:    archive,
		Sender: mail.NewGraphSender(mail.GraphConfig{
			BaseURL: cfg.Mail.GraphBaseURL,
			Timeout: cfg.Mail.SendTimeout,
		}),
		Tokens:  mail.NewTokenSource(rdb, enc),
		Discord: a.Discord,
	}, alertUC.Options{
		BaseURL:     cfg.App.BaseURL,
		Location:    loc,
		SendTimeout: cfg.Mail.SendTimeout,
	})

	return a, nil
}

// Close releases every connection Build opened.
func (a *App) Close(ctx context.Context) {
	if a.Discord != nil {
		_ = a.Discord.Close()
	}
	_ = configMinio.Disconnect()
	_ = configRedis.Disconnect()
	if a.DB != nil {
		_ = postgre.Disconnect(ctx, a.DB)
	}
}
