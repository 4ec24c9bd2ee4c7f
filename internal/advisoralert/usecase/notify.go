package usecase

import (
	"context"
	"strconv"
	"time"

	"advisor-alert-srv/internal/model"
	"advisor-alert-srv/pkg/discord"
)

func buildField(name, value string, inline bool) discord.EmbedField {
	if value == "" {
		value = "N/A"
	}
	if len(value) > discord.MaxFieldValueLen {
		value = truncateText(value, discord.MaxFieldValueLen)
	}
	return discord.EmbedField{Name: name, Value: value, Inline: inline}
}

func truncateText(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max < 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// notifySendFailure tells operators about a failed digest. It never blocks the caller on Discord.
func (uc *implUseCase) notifySendFailure(ctx context.Context, advisor model.User, pending int, sendErr error) {
	if uc.deps.Discord == nil {
		return
	}

	opts := discord.MessageOptions{
		Type:        discord.MessageTypeWarning,
		Title:       "Alert digest not sent",
		Description: "The daily digest will be retried on the advisor's next visit.",
		Fields: []discord.EmbedField{
			buildField("Advisor", advisor.ID, true),
			buildField("Pending alerts", strconv.Itoa(pending), true),
			buildField("Error", sendErr.Error(), false),
		},
		Timestamp: uc.now(),
	}

	go func() {
		nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 15*time.Second)
		defer cancel()
		if err := uc.deps.Discord.SendEmbed(nctx, opts); err != nil {
			uc.l.Warnf(nctx, "internal.advisoralert.usecase.notifySendFailure.SendEmbed: %v", err)
		}
	}()
}
