package service

import (
	"testing"
	"time"

	"autokeep/api/internal/model"
)

func TestLogFulfillsItem(t *testing.T) {
	itemID := uint(7)

	tests := []struct {
		name    string
		logType string
		itemID  *uint
		want    bool
	}{
		{
			name:    "关联规则的保养记录回写",
			logType: model.LogTypeMaintenance,
			itemID:  &itemID,
			want:    true,
		},
		{
			name:    "未关联规则的保养记录不回写",
			logType: model.LogTypeMaintenance,
			itemID:  nil,
			want:    false,
		},
		{
			name:    "维修记录即使关联规则也不回写",
			logType: model.LogTypeRepair,
			itemID:  &itemID,
			want:    false,
		},
		{
			name:    "未关联规则的维修记录不回写",
			logType: model.LogTypeRepair,
			itemID:  nil,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LogFulfillsItem(tt.logType, tt.itemID); got != tt.want {
				t.Errorf("LogFulfillsItem(%q, %v) = %v, want %v", tt.logType, tt.itemID, got, tt.want)
			}
		})
	}
}

func TestListPresetsReturnsCopy(t *testing.T) {
	first := ListPresets()
	if len(first) == 0 {
		t.Fatalf("expected presets")
	}

	first[0].Name = "modified"

	second := ListPresets()
	if second[0].Name == "modified" {
		t.Fatalf("ListPresets returned shared slice")
	}
}

func TestDefaultPresetsAreSubset(t *testing.T) {
	all := ListPresets()
	defaults := DefaultPresets()

	if len(defaults) == 0 {
		t.Fatalf("expected default presets")
	}
	if len(defaults) >= len(all) {
		t.Fatalf("expected defaults to be a strict subset: %d of %d", len(defaults), len(all))
	}

	names := make(map[string]bool, len(all))
	for _, p := range all {
		names[p.Name] = true
	}
	for _, p := range defaults {
		if !p.Default {
			t.Errorf("non-default preset %q in defaults", p.Name)
		}
		if !names[p.Name] {
			t.Errorf("default preset %q not in full list", p.Name)
		}
	}
}

func TestPromptKeyAndDayString(t *testing.T) {
	if got := promptKey(42); got != "autokeep:mileage_prompt:42" {
		t.Errorf("promptKey(42) = %q", got)
	}

	d := time.Date(2024, 3, 7, 23, 59, 0, 0, time.UTC)
	if got := dayString(d); got != "2024-03-07" {
		t.Errorf("dayString = %q, want 2024-03-07", got)
	}
}
