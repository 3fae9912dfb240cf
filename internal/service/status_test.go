package service

import (
	"testing"
	"time"

	"autokeep/api/internal/model"
)

func intPtr(v int) *int { return &v }

func datePtr(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestCalculateMaintenanceStatus(t *testing.T) {
	now := *datePtr("2023-12-20")

	tests := []struct {
		name           string
		item           model.MaintenanceItem
		currentMileage int
		dailyAvg       float64

		wantStatus        model.Severity
		wantMileageStatus model.Severity
		wantDateStatus    model.Severity
		wantMileageDue    *int
		wantRemainingKM   *int
		wantRemainingDays *int
		wantEstimatedDays *int
	}{
		{
			name:              "no intervals never due",
			item:              model.MaintenanceItem{Name: "检查底盘"},
			currentMileage:    100000,
			dailyAvg:          30,
			wantStatus:        model.SeverityNormal,
			wantMileageStatus: model.SeverityNormal,
			wantDateStatus:    model.SeverityNormal,
		},
		{
			name:              "mileage only normal",
			item:              model.MaintenanceItem{IntervalKM: intPtr(10000), LastDoneMileage: 40000},
			currentMileage:    45000,
			dailyAvg:          30,
			wantStatus:        model.SeverityNormal,
			wantMileageStatus: model.SeverityNormal,
			wantMileageDue:    intPtr(50000),
			wantRemainingKM:   intPtr(5000),
			wantEstimatedDays: intPtr(167), // ceil(5000/30)
		},
		{
			name:              "mileage boundary 500 remains normal",
			item:              model.MaintenanceItem{IntervalKM: intPtr(10000), LastDoneMileage: 40000},
			currentMileage:    49500,
			dailyAvg:          30,
			wantStatus:        model.SeverityNormal,
			wantMileageStatus: model.SeverityNormal,
			wantRemainingKM:   intPtr(500),
			wantEstimatedDays: intPtr(17),
		},
		{
			name:              "mileage boundary 499 warns",
			item:              model.MaintenanceItem{IntervalKM: intPtr(10000), LastDoneMileage: 40000},
			currentMileage:    49501,
			dailyAvg:          30,
			wantStatus:        model.SeverityWarning,
			wantMileageStatus: model.SeverityWarning,
			wantRemainingKM:   intPtr(499),
			wantEstimatedDays: intPtr(17),
		},
		{
			name:              "mileage boundary -1 overdue",
			item:              model.MaintenanceItem{IntervalKM: intPtr(10000), LastDoneMileage: 40000},
			currentMileage:    50001,
			dailyAvg:          30,
			wantStatus:        model.SeverityOverdue,
			wantMileageStatus: model.SeverityOverdue,
			wantRemainingKM:   intPtr(-1),
			wantEstimatedDays: intPtr(0), // ceil(-1/30)
		},
		{
			name: "never fulfilled rule defaults last done mileage to zero",
			item: model.MaintenanceItem{IntervalKM: intPtr(5000)},

			currentMileage:    3000,
			dailyAvg:          30,
			wantStatus:        model.SeverityNormal,
			wantMileageDue:    intPtr(5000),
			wantRemainingKM:   intPtr(2000),
			wantMileageStatus: model.SeverityNormal,
			wantEstimatedDays: intPtr(67),
		},
		{
			name: "time interval without baseline date is inactive",
			item: model.MaintenanceItem{IntervalMonths: intPtr(6)},

			currentMileage:    999999,
			dailyAvg:          30,
			wantStatus:        model.SeverityNormal,
			wantMileageStatus: model.SeverityNormal,
			wantDateStatus:    model.SeverityNormal,
		},
		{
			name: "date boundary 30 days remains normal",
			item: model.MaintenanceItem{
				IntervalMonths: intPtr(1),
				LastDoneDate:   datePtr("2023-12-19"),
			},
			currentMileage:    0,
			dailyAvg:          30,
			wantStatus:        model.SeverityNormal,
			wantDateStatus:    model.SeverityNormal,
			wantRemainingDays: intPtr(30), // due 2024-01-19
		},
		{
			name: "date boundary 29 days warns",
			item: model.MaintenanceItem{
				IntervalMonths: intPtr(1),
				LastDoneDate:   datePtr("2023-12-18"),
			},
			currentMileage:    0,
			dailyAvg:          30,
			wantStatus:        model.SeverityWarning,
			wantDateStatus:    model.SeverityWarning,
			wantRemainingDays: intPtr(29),
		},
		{
			name: "date boundary -1 day overdue",
			item: model.MaintenanceItem{
				IntervalMonths: intPtr(1),
				LastDoneDate:   datePtr("2023-11-19"),
			},
			currentMileage:    0,
			dailyAvg:          30,
			wantStatus:        model.SeverityOverdue,
			wantDateStatus:    model.SeverityOverdue,
			wantRemainingDays: intPtr(-1), // due 2023-12-19
		},
		{
			name: "time axis warning",
			item: model.MaintenanceItem{
				IntervalMonths: intPtr(12),
				LastDoneDate:   datePtr("2023-01-15"),
			},
			currentMileage:    0,
			dailyAvg:          30,
			wantStatus:        model.SeverityWarning,
			wantDateStatus:    model.SeverityWarning,
			wantRemainingDays: intPtr(26), // 2023-12-20 -> 2024-01-15
		},
		{
			name: "time axis overdue",
			item: model.MaintenanceItem{
				IntervalMonths: intPtr(6),
				LastDoneDate:   datePtr("2023-01-15"),
			},
			currentMileage:    0,
			dailyAvg:          30,
			wantStatus:        model.SeverityOverdue,
			wantDateStatus:    model.SeverityOverdue,
			wantRemainingDays: intPtr(-158), // due 2023-07-15
		},
		{
			name: "both axes warning combine to warning",
			item: model.MaintenanceItem{
				IntervalKM:      intPtr(10000),
				IntervalMonths:  intPtr(12),
				LastDoneMileage: 40000,
				LastDoneDate:    datePtr("2023-01-15"),
			},
			currentMileage:    49600,
			dailyAvg:          30,
			wantStatus:        model.SeverityWarning,
			wantMileageStatus: model.SeverityWarning,
			wantDateStatus:    model.SeverityWarning,
			wantRemainingKM:   intPtr(400),
			wantRemainingDays: intPtr(26),
			wantEstimatedDays: intPtr(14),
		},
		{
			name: "overdue mileage dominates warning date",
			item: model.MaintenanceItem{
				IntervalKM:      intPtr(10000),
				IntervalMonths:  intPtr(12),
				LastDoneMileage: 40000,
				LastDoneDate:    datePtr("2023-01-15"),
			},
			currentMileage:    51000,
			dailyAvg:          30,
			wantStatus:        model.SeverityOverdue,
			wantMileageStatus: model.SeverityOverdue,
			wantDateStatus:    model.SeverityWarning,
			wantRemainingKM:   intPtr(-1000),
			wantEstimatedDays: intPtr(-33), // 已超出约33天的量
			wantRemainingDays: intPtr(26),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateMaintenanceStatus(&tt.item, tt.currentMileage, tt.dailyAvg, now)

			if got.Status != tt.wantStatus {
				t.Fatalf("status = %s, want %s", got.Status, tt.wantStatus)
			}
			if got.Mileage.Status != tt.wantMileageStatus {
				t.Fatalf("mileage status = %s, want %s", got.Mileage.Status, tt.wantMileageStatus)
			}
			if got.Date.Status != tt.wantDateStatus {
				t.Fatalf("date status = %s, want %s", got.Date.Status, tt.wantDateStatus)
			}
			checkIntPtr(t, "mileage due", got.Mileage.Due, tt.wantMileageDue)
			checkIntPtr(t, "mileage remaining", got.Mileage.Remaining, tt.wantRemainingKM)
			checkIntPtr(t, "days remaining", got.Date.RemainingDays, tt.wantRemainingDays)
			checkIntPtr(t, "estimated days", got.EstimatedDaysByMileage, tt.wantEstimatedDays)

			// 未启用的维度不应出现数值
			if tt.item.IntervalKM == nil && (got.Mileage.Due != nil || got.Mileage.Remaining != nil) {
				t.Fatalf("inactive mileage axis reported values")
			}
			if (tt.item.IntervalMonths == nil || tt.item.LastDoneDate == nil) && got.Date.Due != nil {
				t.Fatalf("inactive date axis reported a due date")
			}
		})
	}
}

// checkIntPtr 对比可缺省的数值字段；want 为 nil 表示该用例不检查此字段
func checkIntPtr(t *testing.T, field string, got, want *int) {
	t.Helper()
	if want == nil {
		return
	}
	if got == nil {
		t.Fatalf("%s absent, want %d", field, *want)
	}
	if *got != *want {
		t.Fatalf("%s = %d, want %d", field, *got, *want)
	}
}

// 日均里程为 0 时不做天数估算
func TestZeroDailyAvgDisablesEstimate(t *testing.T) {
	item := model.MaintenanceItem{IntervalKM: intPtr(10000), LastDoneMileage: 40000}
	got := CalculateMaintenanceStatus(&item, 45000, 0, time.Now())
	if got.EstimatedDaysByMileage != nil {
		t.Fatalf("estimate = %d, want absent", *got.EstimatedDaysByMileage)
	}
	if got.Mileage.Remaining == nil || *got.Mileage.Remaining != 5000 {
		t.Fatalf("mileage remaining not computed")
	}
}

// 升高里程不应让紧急程度回落
func TestStatusMonotonicInMileage(t *testing.T) {
	item := model.MaintenanceItem{IntervalKM: intPtr(10000), LastDoneMileage: 40000}
	now := time.Now()

	prev := 0
	for mileage := 40000; mileage <= 52000; mileage += 100 {
		got := CalculateMaintenanceStatus(&item, mileage, DefaultDailyAvgKM, now)
		rank := severityRank(got.Status)
		if rank < prev {
			t.Fatalf("urgency dropped at mileage %d", mileage)
		}
		prev = rank
	}
}

func severityRank(s model.Severity) int {
	switch s {
	case model.SeverityOverdue:
		return 2
	case model.SeverityWarning:
		return 1
	}
	return 0
}

func TestAddMonthsClampsToMonthEnd(t *testing.T) {
	tests := []struct {
		start  string
		months int
		want   string
	}{
		{"2023-01-15", 12, "2024-01-15"},
		{"2023-01-31", 1, "2023-02-28"},
		{"2024-01-31", 1, "2024-02-29"}, // 闰年
		{"2023-08-31", 1, "2023-09-30"},
		{"2023-11-30", 3, "2024-02-29"},
		{"2023-12-15", 1, "2024-01-15"},
		{"2023-06-15", 24, "2025-06-15"},
	}

	for _, tt := range tests {
		got := addMonths(*datePtr(tt.start), tt.months)
		if got.Format("2006-01-02") != tt.want {
			t.Fatalf("addMonths(%s, %d) = %s, want %s",
				tt.start, tt.months, got.Format("2006-01-02"), tt.want)
		}
	}
}

func TestCombineVerdicts(t *testing.T) {
	reports := []model.ItemStatus{
		{Report: model.StatusReport{Status: model.SeverityNormal}},
		{Report: model.StatusReport{Status: model.SeverityWarning}},
	}
	if v := CombineVerdicts(reports); v != model.SeverityWarning {
		t.Fatalf("verdict = %s, want warning", v)
	}

	reports = append(reports, model.ItemStatus{Report: model.StatusReport{Status: model.SeverityOverdue}})
	if v := CombineVerdicts(reports); v != model.SeverityOverdue {
		t.Fatalf("verdict = %s, want overdue", v)
	}

	if v := CombineVerdicts(nil); v != model.SeverityNormal {
		t.Fatalf("empty verdict = %s, want normal", v)
	}
}
