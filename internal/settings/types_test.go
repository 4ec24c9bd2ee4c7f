package settings

import (
	"testing"

	"advisor-alert-srv/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestOverrideApply(t *testing.T) {
	days := 45
	s := Override{
		StageThresholds:        map[model.Stage]int{model.StageProposal: 5, model.StageNegotiation: 0, model.StageWon: 30},
		ProspectVisibilityDays: &days,
	}.Apply()

	assert.Equal(t, 5, s.StageThresholds[model.StageProposal])
	assert.Equal(t, 30, s.StageThresholds[model.StageWon])
	assert.Equal(t, 7, s.StageThresholds[model.StageNew])
	_, ok := s.StageThresholds[model.StageNegotiation]
	assert.False(t, ok, "zero disables a stage")
	assert.Equal(t, 45, s.ProspectVisibilityDays)
}

func TestDefaultIsFreshCopy(t *testing.T) {
	a := Default()
	a.StageThresholds[model.StageNew] = 99
	assert.Equal(t, 7, Default().StageThresholds[model.StageNew])
}
