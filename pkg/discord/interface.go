package discord

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"advisor-alert-srv/pkg/log"
)

// IDiscord posts operational notices to a Discord channel webhook.
type IDiscord interface {
	SendEmbed(ctx context.Context, options MessageOptions) error
	ReportBug(ctx context.Context, message string) error
	Close() error
}

func validateWebhookURL(webhookURL string) error {
	rest := strings.TrimPrefix(strings.TrimSpace(webhookURL), webhookPrefix)
	if rest == webhookURL {
		return fmt.Errorf("discord: invalid webhook URL format")
	}
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return fmt.Errorf("discord: webhook URL must be .../webhooks/{id}/{token}")
	}
	return nil
}

// New builds a client for a https://discord.com/api/webhooks/{id}/{token} URL.
func New(l log.Logger, webhookURL string) (IDiscord, error) {
	if webhookURL == "" {
		return nil, errWebhookRequired
	}
	if err := validateWebhookURL(webhookURL); err != nil {
		return nil, err
	}
	return newImpl(l, strings.TrimSpace(webhookURL), DefaultConfig()), nil
}

func newImpl(l log.Logger, url string, cfg Config) *discordImpl {
	return &discordImpl{
		l:      l,
		url:    url,
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}
