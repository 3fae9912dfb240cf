package model

import (
	"time"
)

// Vehicle 车辆信息
type Vehicle struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         uint      `json:"user_id" gorm:"column:user_id;not null;index"`
	Name           string    `json:"name" gorm:"type:varchar(50);not null"` // 昵称
	Make           string    `json:"make,omitempty" gorm:"type:varchar(50)"`
	Model          string    `json:"model,omitempty" gorm:"type:varchar(50)"`
	Year           int       `json:"year,omitempty"`
	LicensePlate   string    `json:"license_plate,omitempty" gorm:"column:license_plate;type:varchar(20)"`
	CurrentMileage int       `json:"current_mileage" gorm:"column:current_mileage;not null;default:0"`
	DailyAvgKM     float64   `json:"daily_avg_km" gorm:"column:daily_avg_km;not null;default:30"`
	CreatedAt      time.Time `json:"created_at" gorm:"not null;default:now()"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"not null;default:now()"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

// CreateVehicleRequest 创建车辆请求
// AddPresets 为 true 时同时创建默认保养规则
type CreateVehicleRequest struct {
	Name           string   `json:"name" binding:"required"`
	Make           string   `json:"make"`
	Model          string   `json:"model"`
	Year           int      `json:"year"`
	LicensePlate   string   `json:"license_plate"`
	CurrentMileage *int     `json:"current_mileage" binding:"omitempty,min=0"`
	DailyAvgKM     *float64 `json:"daily_avg_km" binding:"omitempty,min=0"`
	AddPresets     bool     `json:"add_presets"`
}

// UpdateVehicleRequest 更新车辆请求（部分字段）
type UpdateVehicleRequest struct {
	Name           string   `json:"name"`
	Make           string   `json:"make"`
	Model          string   `json:"model"`
	Year           int      `json:"year"`
	LicensePlate   string   `json:"license_plate"`
	CurrentMileage *int     `json:"current_mileage" binding:"omitempty,min=0"`
	DailyAvgKM     *float64 `json:"daily_avg_km" binding:"omitempty,min=0"`
}

// MileagePromptResponse 每日里程提醒检查结果
type MileagePromptResponse struct {
	Prompt  bool     `json:"prompt"`
	Vehicle *Vehicle `json:"vehicle,omitempty"`
}

// SubmitMileageRequest 每日里程提醒的应答：更新里程或跳过
type SubmitMileageRequest struct {
	VehicleID uint `json:"vehicle_id"`
	Mileage   *int `json:"mileage" binding:"omitempty,min=0"`
	Skip      bool `json:"skip"`
}

// VehicleWithStatus 带保养状态汇总的车辆
type VehicleWithStatus struct {
	Vehicle
	Verdict      Severity `json:"verdict"`
	OverdueCount int      `json:"overdue_count"`
	WarningCount int      `json:"warning_count"`
}
