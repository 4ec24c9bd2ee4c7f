package postgres

import (
	"context"
	"errors"
	"testing"

	"advisor-alert-srv/internal/model"
	"advisor-alert-srv/internal/settings"
	"advisor-alert-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo() *implRepository {
	return New(log.NewNop(), nil).(*implRepository)
}

func TestDecode(t *testing.T) {
	r := newTestRepo()

	o, err := r.decode(context.Background(), []byte(`{"stageThresholds":{"propuesta":5,"Negociación":0},"prospectVisibilityDays":30}`))
	require.NoError(t, err)
	assert.Equal(t, map[model.Stage]int{model.StageProposal: 5, model.StageNegotiation: 0}, o.StageThresholds)
	require.NotNil(t, o.ProspectVisibilityDays)
	assert.Equal(t, 30, *o.ProspectVisibilityDays)

	o, err = r.decode(context.Background(), []byte(`{}`))
	require.NoError(t, err)
	assert.Nil(t, o.StageThresholds)
	assert.Nil(t, o.ProspectVisibilityDays)
}

func TestDecodeRejects(t *testing.T) {
	r := newTestRepo()

	for _, raw := range []string{
		`not json`,
		`{"stageThresholds":{"Nueva":-1}}`,
		`{"stageThresholds":{"":3}}`,
		`{"prospectVisibilityDays":-5}`,
	} {
		_, err := r.decode(context.Background(), []byte(raw))
		assert.True(t, errors.Is(err, settings.ErrInvalidRecord), raw)
	}
}
