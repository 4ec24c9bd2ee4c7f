package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"advisor-alert-srv/internal/model"
	"advisor-alert-srv/internal/settings"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"
	pkgErrors "github.com/friendsofgo/errors"
)

const selectSettingQuery = `SELECT id, data FROM app_settings WHERE id = $1`

type settingRow struct {
	ID   string    `boil:"id"`
	Data null.JSON `boil:"data"`
}

// settingDocument is the JSON stored in app_settings.data.
type settingDocument struct {
	StageThresholds        map[string]int `json:"stageThresholds" validate:"omitempty,dive,keys,required,endkeys,gte=0,lte=365"`
	ProspectVisibilityDays *int           `json:"prospectVisibilityDays" validate:"omitempty,gte=0,lte=3650"`
}

func (r *implRepository) Load(ctx context.Context) (settings.Override, error) {
	var row settingRow
	err := queries.Raw(selectSettingQuery, settings.RecordID).Bind(ctx, r.db, &row)
	if err != nil {
		if pkgErrors.Cause(err) == sql.ErrNoRows {
			return settings.Override{}, settings.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.settings.repository.postgres.Load.Bind: %v", err)
		return settings.Override{}, pkgErrors.Wrap(err, "settings: load")
	}
	if !row.Data.Valid {
		return settings.Override{}, settings.ErrNotFound
	}

	return r.decode(ctx, row.Data.JSON)
}

func (r *implRepository) decode(ctx context.Context, data []byte) (settings.Override, error) {
	var doc settingDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		r.l.Warnf(ctx, "internal.settings.repository.postgres.decode.Unmarshal: %v", err)
		return settings.Override{}, fmt.Errorf("%w: %v", settings.ErrInvalidRecord, err)
	}
	if err := r.validate.Struct(doc); err != nil {
		r.l.Warnf(ctx, "internal.settings.repository.postgres.decode.Validate: %v", err)
		return settings.Override{}, fmt.Errorf("%w: %v", settings.ErrInvalidRecord, err)
	}

	o := settings.Override{ProspectVisibilityDays: doc.ProspectVisibilityDays}
	if len(doc.StageThresholds) > 0 {
		o.StageThresholds = make(map[model.Stage]int, len(doc.StageThresholds))
		for stage, days := range doc.StageThresholds {
			o.StageThresholds[model.ParseStage(stage)] = days
		}
	}
	return o, nil
}
