package model

import (
	"time"
)

// 维保记录类型
const (
	LogTypeMaintenance = "maintenance" // 保养
	LogTypeRepair      = "repair"      // 维修
)

// MaintenanceItem 保养规则：按里程和/或时间周期提醒
// IntervalKM / IntervalMonths 为 nil 表示该维度不参与判定；
// 两者都为 nil 的规则合法，只是永远不会到期
type MaintenanceItem struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	VehicleID       uint       `json:"vehicle_id" gorm:"column:vehicle_id;not null;index"`
	Name            string     `json:"name" gorm:"type:varchar(100);not null"`
	IntervalKM      *int       `json:"interval_km" gorm:"column:interval_km"`
	IntervalMonths  *int       `json:"interval_months" gorm:"column:interval_months"`
	LastDoneDate    *time.Time `json:"last_done_date" gorm:"column:last_done_date;type:date"`
	LastDoneMileage int        `json:"last_done_mileage" gorm:"column:last_done_mileage;not null;default:0"`
	CreatedAt       time.Time  `json:"created_at" gorm:"not null;default:now()"`
	UpdatedAt       time.Time  `json:"updated_at" gorm:"not null;default:now()"`
}

func (MaintenanceItem) TableName() string {
	return "maintenance_items"
}

// MaintenanceLog 维保记录，创建后不可修改
type MaintenanceLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	VehicleID uint      `json:"vehicle_id" gorm:"column:vehicle_id;not null;index"`
	ItemID    *uint     `json:"item_id" gorm:"column:item_id"` // 关联的保养规则，可为空
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	LogType   string    `json:"log_type" gorm:"column:log_type;type:varchar(20);not null;default:'maintenance'"`
	Mileage   int       `json:"mileage" gorm:"not null"`
	Cost      float64   `json:"cost" gorm:"not null;default:0"`
	Note      string    `json:"note,omitempty" gorm:"type:text"`
	DoneAt    time.Time `json:"done_at" gorm:"column:done_at;type:date;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:now()"`
}

func (MaintenanceLog) TableName() string {
	return "maintenance_logs"
}

// CreateMaintenanceItemRequest 创建保养规则请求
type CreateMaintenanceItemRequest struct {
	Name            string `json:"name" binding:"required"`
	IntervalKM      *int   `json:"interval_km" binding:"omitempty,min=1"`
	IntervalMonths  *int   `json:"interval_months" binding:"omitempty,min=1"`
	LastDoneDate    string `json:"last_done_date"` // YYYY-MM-DD，可为空
	LastDoneMileage *int   `json:"last_done_mileage" binding:"omitempty,min=0"`
}

// CreateMaintenanceLogRequest 创建维保记录请求
type CreateMaintenanceLogRequest struct {
	ItemID  *uint    `json:"item_id"`
	Name    string   `json:"name" binding:"required"`
	LogType string   `json:"log_type" binding:"required,oneof=maintenance repair"`
	Mileage *int     `json:"mileage" binding:"required,min=0"`
	Cost    *float64 `json:"cost" binding:"omitempty,min=0"`
	Note    string   `json:"note"`
	DoneAt  string   `json:"done_at" binding:"required"` // YYYY-MM-DD
}

// Severity 紧急程度判定结果
type Severity string

const (
	SeverityNormal  Severity = "normal"
	SeverityWarning Severity = "warning"
	SeverityOverdue Severity = "overdue"
)

// rank 用于比较严重程度，数值越大越紧急
func (s Severity) rank() int {
	switch s {
	case SeverityOverdue:
		return 2
	case SeverityWarning:
		return 1
	default:
		return 0
	}
}

// Worse 返回两个判定结果中更紧急的一个
func (s Severity) Worse(other Severity) Severity {
	if other.rank() > s.rank() {
		return other
	}
	return s
}

// MileageAxis 里程维度子报告；维度未启用时 Due/Remaining 为 nil
type MileageAxis struct {
	Due       *int     `json:"due"`
	Remaining *int     `json:"remaining"`
	Status    Severity `json:"status"`
}

// DateAxis 时间维度子报告；维度未启用时 Due/RemainingDays 为 nil
type DateAxis struct {
	Due           *time.Time `json:"due"`
	RemainingDays *int       `json:"remaining"`
	Status        Severity   `json:"status"`
}

// StatusReport 单条保养规则的到期状态，按需计算，不持久化
type StatusReport struct {
	Status  Severity    `json:"status"`
	Mileage MileageAxis `json:"mileage"`
	Date    DateAxis    `json:"date"`
	// 按日均里程估算距离里程到期还有多少天；可能为负（已超期）
	EstimatedDaysByMileage *int `json:"estimated_days_by_mileage"`
}

// ItemStatus 规则及其到期状态
type ItemStatus struct {
	Item   MaintenanceItem `json:"item"`
	Report StatusReport    `json:"report"`
}

// VehicleStatusResponse 整车保养状态
type VehicleStatusResponse struct {
	VehicleID uint         `json:"vehicle_id"`
	Verdict   Severity     `json:"verdict"`
	Items     []ItemStatus `json:"items"`
}

// MaintenancePreset 内置保养规则模板
type MaintenancePreset struct {
	Name           string `json:"name"`
	IntervalKM     *int   `json:"interval_km"`
	IntervalMonths *int   `json:"interval_months"`
	Default        bool   `json:"default"` // 创建车辆时默认勾选
}

// CarBrand 品牌/车型参考数据
type CarBrand struct {
	Name   string   `json:"name"`
	Models []string `json:"models"`
}
