// 保养到期状态计算

package service

import (
	"math"
	"time"

	"autokeep/api/internal/model"
)

const (
	// DefaultDailyAvgKM 车辆缺省日均里程
	DefaultDailyAvgKM = 30.0

	// 里程维度提前提醒阈值：剩余不足 500km 进入 warning
	mileageWarnThresholdKM = 500
	// 时间维度提前提醒阈值：剩余不足 30 天进入 warning
	dateWarnThresholdDays = 30
)

// CalculateMaintenanceStatus 计算单条保养规则的到期状态。
// 纯函数：给定规则、当前里程、日均里程和 now，输出完全确定，任何输入组合都不报错。
// 里程维度在 IntervalKM 为空时不参与判定；
// 时间维度需要 IntervalMonths 和 LastDoneDate 同时存在才参与判定
// （从未做过的项目没有可推算的到期日，按未启用处理，不算"立即到期"）。
// 综合判定取所有启用维度中最紧急的一个。
func CalculateMaintenanceStatus(item *model.MaintenanceItem, currentMileage int, dailyAvg float64, now time.Time) model.StatusReport {
	report := model.StatusReport{
		Status:  model.SeverityNormal,
		Mileage: model.MileageAxis{Status: model.SeverityNormal},
		Date:    model.DateAxis{Status: model.SeverityNormal},
	}

	// 1. 基于里程的计算
	if item.IntervalKM != nil {
		due := item.LastDoneMileage + *item.IntervalKM
		remaining := due - currentMileage

		report.Mileage.Due = &due
		report.Mileage.Remaining = &remaining
		switch {
		case remaining < 0:
			report.Mileage.Status = model.SeverityOverdue
		case remaining < mileageWarnThresholdKM:
			report.Mileage.Status = model.SeverityWarning
		}
	}

	// 2. 基于时间的计算
	if item.IntervalMonths != nil && item.LastDoneDate != nil {
		due := addMonths(*item.LastDoneDate, *item.IntervalMonths)
		remaining := int(math.Ceil(due.Sub(now).Hours() / 24))

		report.Date.Due = &due
		report.Date.RemainingDays = &remaining
		switch {
		case remaining < 0:
			report.Date.Status = model.SeverityOverdue
		case remaining < dateWarnThresholdDays:
			report.Date.Status = model.SeverityWarning
		}
	}

	// 3. 综合判定（取最紧急的）
	report.Status = report.Mileage.Status.Worse(report.Date.Status)

	// 4. 按日均里程估算剩余天数；已超期时为负数，表示超出的天数
	if report.Mileage.Remaining != nil && dailyAvg > 0 {
		days := int(math.Ceil(float64(*report.Mileage.Remaining) / dailyAvg))
		report.EstimatedDaysByMileage = &days
	}

	return report
}

// CombineVerdicts 汇总多条规则的状态，得出整车判定
func CombineVerdicts(reports []model.ItemStatus) model.Severity {
	verdict := model.SeverityNormal
	for _, r := range reports {
		verdict = verdict.Worse(r.Report.Status)
	}
	return verdict
}

// addMonths 日历感知的月份加法。
// 与 AddDate 不同，目标月份没有对应日期时取该月最后一天
// （1月31日 + 1个月 = 2月28/29日），避免跨月漂移。
func addMonths(t time.Time, months int) time.Time {
	total := int(t.Month()) - 1 + months
	year := t.Year() + total/12
	month := time.Month(total%12 + 1)

	day := t.Day()
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// daysInMonth 返回指定年月的天数
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
