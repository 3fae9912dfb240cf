package model

// NATS 事件主题
const (
	SubjectLogRecorded    = "autokeep.logs.recorded"
	SubjectVehicleUpdated = "autokeep.vehicles.updated"
)

// LogRecordedEvent 维保记录创建事件，推送给在线看板
type LogRecordedEvent struct {
	UserID    uint   `json:"user_id"`
	VehicleID uint   `json:"vehicle_id"`
	LogID     uint   `json:"log_id"`
	Name      string `json:"name"`
	LogType   string `json:"log_type"`
	Mileage   int    `json:"mileage"`
	// 记录写入成功但关联规则更新失败时为 true（日志保留，状态可能暂时滞后）
	ItemUpdateFailed bool `json:"item_update_failed,omitempty"`
}

// VehicleUpdatedEvent 车辆信息变更事件
type VehicleUpdatedEvent struct {
	UserID         uint `json:"user_id"`
	VehicleID      uint `json:"vehicle_id"`
	CurrentMileage int  `json:"current_mileage"`
}
