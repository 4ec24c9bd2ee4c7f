package usecase

import (
	"context"
	"errors"

	"advisor-alert-srv/internal/model"
	"advisor-alert-srv/internal/settings"
)

const loadKey = "settings"

func (uc *implUseCase) Initialize(ctx context.Context) {
	s := uc.Get(ctx)
	uc.l.Infof(ctx, "internal.settings.usecase.Initialize: %d stage thresholds, prospect window %d days",
		len(s.StageThresholds), s.ProspectVisibilityDays)
}

func (uc *implUseCase) Get(ctx context.Context) settings.Settings {
	uc.mu.RLock()
	cached, gen := uc.cached, uc.gen
	uc.mu.RUnlock()
	if cached != nil {
		return copySettings(*cached)
	}

	v, _, _ := uc.group.Do(loadKey, func() (interface{}, error) {
		uc.mu.RLock()
		cached, gen = uc.cached, uc.gen
		uc.mu.RUnlock()
		if cached != nil {
			return *cached, nil
		}
		return uc.load(ctx, gen), nil
	})
	return copySettings(v.(settings.Settings))
}

func (uc *implUseCase) Invalidate(ctx context.Context) {
	uc.mu.Lock()
	uc.cached = nil
	uc.gen++
	uc.mu.Unlock()
	uc.group.Forget(loadKey)
	uc.l.Infof(ctx, "internal.settings.usecase.Invalidate: cache cleared")
}

// load never fails: read errors fall back to defaults, which are not cached.
func (uc *implUseCase) load(ctx context.Context, gen uint64) settings.Settings {
	o, err := uc.repo.Load(ctx)
	if err != nil && !errors.Is(err, settings.ErrNotFound) {
		uc.l.Warnf(ctx, "internal.settings.usecase.load.Load: %v", err)
		return settings.Default()
	}

	s := o.Apply()
	uc.mu.Lock()
	if uc.gen == gen {
		uc.cached = &s
	}
	uc.mu.Unlock()
	return s
}

func copySettings(s settings.Settings) settings.Settings {
	out := s
	out.StageThresholds = make(map[model.Stage]int, len(s.StageThresholds))
	for k, v := range s.StageThresholds {
		out.StageThresholds[k] = v
	}
	return out
}
