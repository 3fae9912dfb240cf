// 车辆管理服务

package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/nats-io/nats.go"
	"gorm.io/gorm"

	"autokeep/api/internal/model"
)

// VehicleService 车辆服务；所有查询按 userID 过滤，跨用户访问视同不存在
type VehicleService struct {
	db   *gorm.DB
	nats *nats.Conn
}

// NewVehicleService 创建车辆服务
func NewVehicleService(db *gorm.DB, natsConn *nats.Conn) *VehicleService {
	return &VehicleService{db: db, nats: natsConn}
}

// List 返回用户的全部车辆，新建的在前
func (s *VehicleService) List(ctx context.Context, userID uint) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&vehicles).Error
	return vehicles, err
}

// GetByID 返回指定车辆
func (s *VehicleService) GetByID(ctx context.Context, userID, id uint) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&vehicle, id).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// Create 创建车辆；AddPresets 为 true 时同时写入默认保养规则
func (s *VehicleService) Create(ctx context.Context, userID uint, req *model.CreateVehicleRequest) (*model.Vehicle, error) {
	vehicle := &model.Vehicle{
		UserID:         userID,
		Name:           req.Name,
		Make:           req.Make,
		Model:          req.Model,
		Year:           req.Year,
		LicensePlate:   req.LicensePlate,
		DailyAvgKM:     DefaultDailyAvgKM,
		CurrentMileage: 0,
	}
	if req.CurrentMileage != nil {
		vehicle.CurrentMileage = *req.CurrentMileage
	}
	if req.DailyAvgKM != nil {
		vehicle.DailyAvgKM = *req.DailyAvgKM
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(vehicle).Error; err != nil {
			return err
		}
		if req.AddPresets {
			for _, preset := range DefaultPresets() {
				item := model.MaintenanceItem{
					VehicleID:      vehicle.ID,
					Name:           preset.Name,
					IntervalKM:     preset.IntervalKM,
					IntervalMonths: preset.IntervalMonths,
				}
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return vehicle, nil
}

// Update 更新车辆（部分字段）
func (s *VehicleService) Update(ctx context.Context, userID, id uint, req *model.UpdateVehicleRequest) (*model.Vehicle, error) {
	vehicle, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Make != "" {
		updates["make"] = req.Make
	}
	if req.Model != "" {
		updates["model"] = req.Model
	}
	if req.Year != 0 {
		updates["year"] = req.Year
	}
	if req.LicensePlate != "" {
		updates["license_plate"] = req.LicensePlate
	}
	if req.CurrentMileage != nil {
		// 不校验新里程是否大于旧值，允许修正录入错误
		updates["current_mileage"] = *req.CurrentMileage
	}
	if req.DailyAvgKM != nil {
		updates["daily_avg_km"] = *req.DailyAvgKM
	}

	if err := s.db.WithContext(ctx).Model(vehicle).Updates(updates).Error; err != nil {
		return nil, err
	}

	// 重新读取，拿到更新后的完整记录
	vehicle, err = s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	s.publishVehicleUpdated(vehicle)
	return vehicle, nil
}

// Delete 删除车辆，级联删除其保养规则和维保记录
func (s *VehicleService) Delete(ctx context.Context, userID, id uint) error {
	if _, err := s.GetByID(ctx, userID, id); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vehicle_id = ?", id).Delete(&model.MaintenanceLog{}).Error; err != nil {
			return err
		}
		if err := tx.Where("vehicle_id = ?", id).Delete(&model.MaintenanceItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Vehicle{}, id).Error
	})
}

// publishVehicleUpdated 通知在线看板车辆数据有变化；失败只记日志
func (s *VehicleService) publishVehicleUpdated(vehicle *model.Vehicle) {
	if s.nats == nil {
		return
	}
	event := model.VehicleUpdatedEvent{
		UserID:         vehicle.UserID,
		VehicleID:      vehicle.ID,
		CurrentMileage: vehicle.CurrentMileage,
	}
	data, _ := json.Marshal(event)
	if err := s.nats.Publish(model.SubjectVehicleUpdated, data); err != nil {
		log.Printf("[Vehicle] Failed to publish update event: %v", err)
	}
}
