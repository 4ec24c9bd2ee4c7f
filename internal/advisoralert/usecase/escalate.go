package usecase

import (
	"context"
	"errors"
	"time"

	"advisor-alert-srv/internal/advisoralert"
	"advisor-alert-srv/internal/advisoralert/repository"
	"advisor-alert-srv/internal/model"
	"advisor-alert-srv/pkg/calendar"
	pkgLog "advisor-alert-srv/pkg/log"
	"advisor-alert-srv/pkg/mail"
)

// Escalate sends at most one digest per advisor per calendar day. The order is
// token, claim, send, watermark; the watermark only moves after a send succeeds.
func (uc *implUseCase) Escalate(ctx context.Context, sc model.Scope, ip advisoralert.EscalateInput) (advisoralert.EscalateOutput, error) {
	advisor, err := uc.resolveAdvisor(ctx, sc.UserID)
	if err != nil {
		return advisoralert.EscalateOutput{}, err
	}
	ctx = pkgLog.WithFields(ctx, uc.l, "advisor_id", advisor.ID, "interactive", ip.Interactive())

	now := uc.today(time.Time{})
	alerts, err := uc.evaluate(ctx, advisor, now)
	if err != nil {
		uc.l.Errorf(ctx, "internal.advisoralert.usecase.Escalate.evaluate: %v", err)
		return advisoralert.EscalateOutput{}, err
	}
	return uc.escalate(ctx, advisor, now, alerts, ip)
}

// escalate runs the send path over alerts already evaluated for now.
func (uc *implUseCase) escalate(ctx context.Context, advisor model.User, now time.Time, alerts []advisoralert.Alert, ip advisoralert.EscalateInput) (advisoralert.EscalateOutput, error) {
	pending := advisoralert.PendingEmail(alerts)
	out := advisoralert.EscalateOutput{Pending: len(pending)}
	if len(pending) == 0 || advisor.Email == "" {
		out.Status = advisoralert.EscalationNothingPending
		return out, nil
	}

	last, ok, err := uc.deps.Escalation.LastSent(ctx, advisor.ID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.advisoralert.usecase.Escalate.LastSent: %v", err)
		return advisoralert.EscalateOutput{}, err
	}
	if ok && calendar.SameDay(last, now) {
		out.Status = advisoralert.EscalationAlreadySent
		out.SentAt = last
		return out, nil
	}

	token, err := uc.acquireToken(ctx, advisor.ID, ip)
	if err != nil {
		if errors.Is(err, mail.ErrInteractionRequired) {
			uc.markNeedsAuth(ctx, advisor.ID)
			out.Status = advisoralert.EscalationNeedsAuth
			return out, nil
		}
		return advisoralert.EscalateOutput{}, err
	}

	claim, claimed, err := uc.deps.Escalation.ClaimDay(ctx, advisor.ID, now)
	if err != nil {
		uc.l.Errorf(ctx, "internal.advisoralert.usecase.Escalate.ClaimDay: %v", err)
		return advisoralert.EscalateOutput{}, err
	}
	if !claimed {
		out.Status = advisoralert.EscalationAlreadySent
		return out, nil
	}

	msg, err := uc.composeDigest(advisor, pending, now)
	if err != nil {
		uc.releaseClaim(ctx, claim)
		uc.l.Errorf(ctx, "internal.advisoralert.usecase.Escalate.composeDigest: %v", err)
		return advisoralert.EscalateOutput{}, err
	}

	sendCtx, cancel := context.WithTimeout(ctx, uc.opts.SendTimeout)
	err = uc.deps.Sender.Send(sendCtx, token, msg)
	cancel()
	if err != nil {
		uc.releaseClaim(ctx, claim)
		return uc.handleSendError(ctx, advisor, ip, out, err)
	}

	if err := uc.deps.Escalation.SetLastSent(ctx, advisor.ID, now); err != nil {
		// The claim still blocks a second send today.
		uc.l.Errorf(ctx, "internal.advisoralert.usecase.Escalate.SetLastSent: %v", err)
	}
	if err := uc.deps.Escalation.ClearNeedsAuth(ctx, advisor.ID); err != nil {
		uc.l.Warnf(ctx, "internal.advisoralert.usecase.Escalate.ClearNeedsAuth: %v", err)
	}
	uc.archive(ctx, advisor.ID, now, msg.HTML)

	uc.l.Infof(ctx, "internal.advisoralert.usecase.Escalate: sent %d alerts to advisor %s", len(pending), advisor.ID)
	out.Status = advisoralert.EscalationSent
	out.SentAt = now
	return out, nil
}

// acquireToken returns mail.ErrInteractionRequired only in silent mode.
func (uc *implUseCase) acquireToken(ctx context.Context, advisorID string, ip advisoralert.EscalateInput) (mail.Token, error) {
	if !ip.Interactive() {
		token, err := uc.deps.Tokens.Silent(ctx, advisorID)
		if err != nil && !errors.Is(err, mail.ErrInteractionRequired) {
			uc.l.Errorf(ctx, "internal.advisoralert.usecase.acquireToken.Silent: %v", err)
		}
		return token, err
	}

	token, err := uc.deps.Tokens.Interactive(ctx, advisorID, mail.Grant{
		AccessToken: ip.Grant.AccessToken,
		ExpiresIn:   ip.Grant.ExpiresIn,
	})
	if err != nil {
		if errors.Is(err, mail.ErrInvalidGrant) {
			return mail.Token{}, advisoralert.ErrReauthorizationRequired
		}
		uc.l.Errorf(ctx, "internal.advisoralert.usecase.acquireToken.Interactive: %v", err)
		return mail.Token{}, err
	}
	return token, nil
}

func (uc *implUseCase) handleSendError(ctx context.Context, advisor model.User, ip advisoralert.EscalateInput, out advisoralert.EscalateOutput, err error) (advisoralert.EscalateOutput, error) {
	if errors.Is(err, mail.ErrTokenRejected) {
		if ferr := uc.deps.Tokens.Forget(ctx, advisor.ID); ferr != nil {
			uc.l.Warnf(ctx, "internal.advisoralert.usecase.handleSendError.Forget: %v", ferr)
		}
		uc.markNeedsAuth(ctx, advisor.ID)
		if ip.Interactive() {
			return advisoralert.EscalateOutput{}, advisoralert.ErrReauthorizationRequired
		}
		out.Status = advisoralert.EscalationNeedsAuth
		return out, nil
	}

	uc.l.Errorf(ctx, "internal.advisoralert.usecase.handleSendError: advisor %s: %v", advisor.ID, err)
	uc.notifySendFailure(ctx, advisor, out.Pending, err)
	return advisoralert.EscalateOutput{}, advisoralert.ErrSendFailed
}

func (uc *implUseCase) markNeedsAuth(ctx context.Context, advisorID string) {
	if err := uc.deps.Escalation.SetNeedsAuth(ctx, advisorID); err != nil {
		uc.l.Warnf(ctx, "internal.advisoralert.usecase.markNeedsAuth.SetNeedsAuth: %v", err)
	}
}

func (uc *implUseCase) releaseClaim(ctx context.Context, c repository.Claim) {
	if err := uc.deps.Escalation.ReleaseDay(ctx, c); err != nil {
		uc.l.Errorf(ctx, "internal.advisoralert.usecase.releaseClaim.ReleaseDay: %v", err)
	}
}

func (uc *implUseCase) archive(ctx context.Context, advisorID string, day time.Time, html string) {
	if uc.deps.Archive == nil {
		return
	}
	if err := uc.deps.Archive.Put(ctx, advisorID, day, []byte(html)); err != nil {
		uc.l.Warnf(ctx, "internal.advisoralert.usecase.archive.Put: %v", err)
	}
}
