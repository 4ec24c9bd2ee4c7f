package http

import (
	"sort"

	"advisor-alert-srv/internal/settings"
)

type stageThresholdResp struct {
	Stage string `json:"stage"`
	Days  int    `json:"days"`
}

type settingsResp struct {
	StageThresholds        []stageThresholdResp `json:"stage_thresholds"`
	ProspectVisibilityDays int                  `json:"prospect_visibility_days"`
}

func newSettingsResp(s settings.Settings) settingsResp {
	resp := settingsResp{
		StageThresholds:        make([]stageThresholdResp, 0, len(s.StageThresholds)),
		ProspectVisibilityDays: s.ProspectVisibilityDays,
	}
	for stage, days := range s.StageThresholds {
		resp.StageThresholds = append(resp.StageThresholds, stageThresholdResp{Stage: string(stage), Days: days})
	}
	sort.Slice(resp.StageThresholds, func(i, j int) bool {
		return resp.StageThresholds[i].Stage < resp.StageThresholds[j].Stage
	})
	return resp
}
