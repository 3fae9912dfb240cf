// 内置保养规则模板

package service

import (
	"autokeep/api/internal/model"
)

func km(v int) *int     { return &v }
func months(v int) *int { return &v }

// presets 常见保养项目及建议周期；Default 为 true 的在创建车辆时默认写入
var presets = []model.MaintenancePreset{
	{Name: "更换机油 (全合成)", IntervalKM: km(10000), IntervalMonths: months(12), Default: true},
	{Name: "更换机油 (半合成/矿物)", IntervalKM: km(5000), IntervalMonths: months(6)},
	{Name: "更换机油滤芯", IntervalKM: km(10000), IntervalMonths: months(12), Default: true},
	{Name: "更换空气滤芯", IntervalKM: km(20000), IntervalMonths: months(24), Default: true},
	{Name: "更换空调滤芯", IntervalKM: km(20000), IntervalMonths: months(12), Default: true},
	{Name: "更换刹车油", IntervalKM: km(40000), IntervalMonths: months(24), Default: true},
	{Name: "更换防冻液", IntervalKM: km(40000), IntervalMonths: months(24)},
	{Name: "更换火花塞", IntervalKM: km(40000), IntervalMonths: months(48)},
	{Name: "轮胎换位/动平衡", IntervalKM: km(10000), IntervalMonths: nil},
	{Name: "更换变速箱油", IntervalKM: km(60000), IntervalMonths: months(48)},
}

// ListPresets 返回全部保养模板
func ListPresets() []model.MaintenancePreset {
	out := make([]model.MaintenancePreset, len(presets))
	copy(out, presets)
	return out
}

// DefaultPresets 返回创建车辆时默认添加的模板
func DefaultPresets() []model.MaintenancePreset {
	var out []model.MaintenancePreset
	for _, p := range presets {
		if p.Default {
			out = append(out, p)
		}
	}
	return out
}
