package settings

import (
	"advisor-alert-srv/internal/advisoralert/engine"
	"advisor-alert-srv/internal/model"
)

// RecordID is the app_settings row holding the alert configuration.
const RecordID = "advisor_alerts"

// Settings tunes alert evaluation without a deploy.
type Settings struct {
	// StageThresholds is the complete per-stage table; stages absent from it never alert.
	StageThresholds engine.StageThresholds
	// ProspectVisibilityDays hides prospects created longer ago than this. Zero disables it.
	ProspectVisibilityDays int
}

// Default returns the settings used when no record is stored or it cannot be read.
func Default() Settings {
	return Settings{StageThresholds: engine.DefaultStageThresholds()}
}

// Override is the stored record. Nil fields keep their default.
type Override struct {
	StageThresholds        map[model.Stage]int
	ProspectVisibilityDays *int
}

// Apply merges o over Default.
func (o Override) Apply() Settings {
	s := Default()
	for stage, days := range o.StageThresholds {
		if days <= 0 {
			delete(s.StageThresholds, stage)
			continue
		}
		s.StageThresholds[stage] = days
	}
	if o.ProspectVisibilityDays != nil {
		s.ProspectVisibilityDays = *o.ProspectVisibilityDays
	}
	return s
}
