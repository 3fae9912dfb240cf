// 保养规则与维保记录服务

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"autokeep/api/internal/model"
)

// dateLayout 维保日期统一用 YYYY-MM-DD
const dateLayout = "2006-01-02"

// MaintenanceService 保养规则与维保记录服务
type MaintenanceService struct {
	db   *gorm.DB
	nats *nats.Conn
}

// NewMaintenanceService 创建保养服务
func NewMaintenanceService(db *gorm.DB, natsConn *nats.Conn) *MaintenanceService {
	return &MaintenanceService{db: db, nats: natsConn}
}

// ListItems 返回车辆的保养规则，按名称排序
func (s *MaintenanceService) ListItems(ctx context.Context, vehicleID uint) ([]model.MaintenanceItem, error) {
	var items []model.MaintenanceItem
	err := s.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("name").
		Find(&items).Error
	return items, err
}

// CreateItem 创建保养规则。两个周期都不填是允许的，只是这样的规则永远不会到期
func (s *MaintenanceService) CreateItem(ctx context.Context, vehicleID uint, req *model.CreateMaintenanceItemRequest) (*model.MaintenanceItem, error) {
	item := &model.MaintenanceItem{
		VehicleID:      vehicleID,
		Name:           req.Name,
		IntervalKM:     req.IntervalKM,
		IntervalMonths: req.IntervalMonths,
	}
	if req.LastDoneMileage != nil {
		item.LastDoneMileage = *req.LastDoneMileage
	}
	if req.LastDoneDate != "" {
		done, err := time.Parse(dateLayout, req.LastDoneDate)
		if err != nil {
			return nil, fmt.Errorf("invalid last_done_date: %w", err)
		}
		item.LastDoneDate = &done
	}

	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem 删除保养规则
func (s *MaintenanceService) DeleteItem(ctx context.Context, vehicleID, itemID uint) error {
	result := s.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Delete(&model.MaintenanceItem{}, itemID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListLogs 返回车辆的维保记录，最近的在前
func (s *MaintenanceService) ListLogs(ctx context.Context, vehicleID uint) ([]model.MaintenanceLog, error) {
	var logs []model.MaintenanceLog
	err := s.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("done_at DESC").
		Find(&logs).Error
	return logs, err
}

// LogFulfillsItem 判断一条记录是否回写关联规则的完成状态：
// 仅保养类型且指定了规则的记录才回写，维修记录从不回写
func LogFulfillsItem(logType string, itemID *uint) bool {
	return logType == model.LogTypeMaintenance && itemID != nil
}

// RecordLog 创建维保记录。
// 记录写入成功后，符合条件时用记录的日期/里程无条件覆盖关联规则的
// last_done 字段（不检查是否比旧值更新，允许补录历史）。
// 规则更新失败不回滚记录：宁可状态暂时滞后，也不丢用户的记录。
// 返回值第二项表示规则更新是否失败。
func (s *MaintenanceService) RecordLog(ctx context.Context, vehicle *model.Vehicle, req *model.CreateMaintenanceLogRequest) (*model.MaintenanceLog, bool, error) {
	doneAt, err := time.Parse(dateLayout, req.DoneAt)
	if err != nil {
		return nil, false, fmt.Errorf("invalid done_at: %w", err)
	}

	// 关联规则必须属于同一辆车
	if req.ItemID != nil {
		var count int64
		s.db.WithContext(ctx).Model(&model.MaintenanceItem{}).
			Where("id = ? AND vehicle_id = ?", *req.ItemID, vehicle.ID).
			Count(&count)
		if count == 0 {
			return nil, false, gorm.ErrRecordNotFound
		}
	}

	entry := &model.MaintenanceLog{
		VehicleID: vehicle.ID,
		ItemID:    req.ItemID,
		Name:      req.Name,
		LogType:   req.LogType,
		Mileage:   *req.Mileage,
		Note:      req.Note,
		DoneAt:    doneAt,
	}
	if req.Cost != nil {
		entry.Cost = *req.Cost
	}

	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, false, err
	}

	// 回写关联规则的完成状态
	itemUpdateFailed := false
	if LogFulfillsItem(entry.LogType, entry.ItemID) {
		err := s.db.WithContext(ctx).Model(&model.MaintenanceItem{}).
			Where("id = ?", *entry.ItemID).
			Updates(map[string]interface{}{
				"last_done_date":    entry.DoneAt,
				"last_done_mileage": entry.Mileage,
				"updated_at":        time.Now(),
			}).Error
		if err != nil {
			// 记录已落库，不回滚，只上报
			log.Printf("[Maintenance] Log %d saved but item %d update failed: %v", entry.ID, *entry.ItemID, err)
			itemUpdateFailed = true
		}
	}

	s.publishLogRecorded(vehicle, entry, itemUpdateFailed)
	return entry, itemUpdateFailed, nil
}

// VehicleStatus 对车辆的全部规则运行到期计算，汇总整车判定
func (s *MaintenanceService) VehicleStatus(ctx context.Context, vehicle *model.Vehicle, now time.Time) (*model.VehicleStatusResponse, error) {
	items, err := s.ListItems(ctx, vehicle.ID)
	if err != nil {
		return nil, err
	}

	dailyAvg := vehicle.DailyAvgKM
	if dailyAvg <= 0 {
		dailyAvg = DefaultDailyAvgKM
	}

	statuses := make([]model.ItemStatus, 0, len(items))
	for i := range items {
		report := CalculateMaintenanceStatus(&items[i], vehicle.CurrentMileage, dailyAvg, now)
		statuses = append(statuses, model.ItemStatus{Item: items[i], Report: report})
	}

	return &model.VehicleStatusResponse{
		VehicleID: vehicle.ID,
		Verdict:   CombineVerdicts(statuses),
		Items:     statuses,
	}, nil
}

// StatusSummary 统计车辆到期情况，用于车辆列表页
func (s *MaintenanceService) StatusSummary(ctx context.Context, vehicle *model.Vehicle, now time.Time) (*model.VehicleWithStatus, error) {
	status, err := s.VehicleStatus(ctx, vehicle, now)
	if err != nil {
		return nil, err
	}

	summary := &model.VehicleWithStatus{Vehicle: *vehicle, Verdict: status.Verdict}
	for _, item := range status.Items {
		switch item.Report.Status {
		case model.SeverityOverdue:
			summary.OverdueCount++
		case model.SeverityWarning:
			summary.WarningCount++
		}
	}
	return summary, nil
}

// ExportLogs 导出车辆的维保记录为 Excel
func (s *MaintenanceService) ExportLogs(ctx context.Context, vehicle *model.Vehicle) (*excelize.File, error) {
	logs, err := s.ListLogs(ctx, vehicle.ID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()

	sheetName := "维保记录"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{"日期", "项目", "类型", "里程 (km)", "费用 (元)", "备注"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, h)
	}

	for row, entry := range logs {
		logType := "保养"
		if entry.LogType == model.LogTypeRepair {
			logType = "维修"
		}
		values := []interface{}{
			entry.DoneAt.Format(dateLayout),
			entry.Name,
			logType,
			entry.Mileage,
			entry.Cost,
			entry.Note,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	return f, nil
}

// publishLogRecorded 通知在线看板有新记录；失败只记日志
func (s *MaintenanceService) publishLogRecorded(vehicle *model.Vehicle, entry *model.MaintenanceLog, itemUpdateFailed bool) {
	if s.nats == nil {
		return
	}
	event := model.LogRecordedEvent{
		UserID:           vehicle.UserID,
		VehicleID:        vehicle.ID,
		LogID:            entry.ID,
		Name:             entry.Name,
		LogType:          entry.LogType,
		Mileage:          entry.Mileage,
		ItemUpdateFailed: itemUpdateFailed,
	}
	data, _ := json.Marshal(event)
	if err := s.nats.Publish(model.SubjectLogRecorded, data); err != nil {
		log.Printf("[Maintenance] Failed to publish log event: %v", err)
	}
}
