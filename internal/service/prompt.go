// 每日里程提醒

package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"autokeep/api/internal/model"
)

// 提醒标记保留两天，跨天后自然过期
const promptMarkerTTL = 48 * time.Hour

// PromptService 每日里程提醒：每个用户每个自然日最多提示一次。
// 标记是简单的读后写，没有并发保护——单用户操作，错过或多提示一次无伤大雅
type PromptService struct {
	redis    *redis.Client
	vehicles *VehicleService
}

// NewPromptService 创建提醒服务
func NewPromptService(redisClient *redis.Client, vehicles *VehicleService) *PromptService {
	return &PromptService{redis: redisClient, vehicles: vehicles}
}

// promptKey 用户的提醒标记键
func promptKey(userID uint) string {
	return fmt.Sprintf("autokeep:mileage_prompt:%d", userID)
}

// dayString 自然日字符串，用于判断"今天是否已经提示过"
func dayString(t time.Time) string {
	return t.Format("2006-01-02")
}

// CheckPrompt 判断今天是否需要向用户弹出里程确认。
// 今天已提示过、或用户还没有车辆时不提示；需要提示时附带第一辆车的信息
func (s *PromptService) CheckPrompt(ctx context.Context, userID uint, now time.Time) (*model.MileagePromptResponse, error) {
	last, err := s.redis.Get(ctx, promptKey(userID)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}
	if last == dayString(now) {
		return &model.MileagePromptResponse{Prompt: false}, nil
	}

	vehicles, err := s.vehicles.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(vehicles) == 0 {
		return &model.MileagePromptResponse{Prompt: false}, nil
	}

	// 暂时只对第一辆车提示
	return &model.MileagePromptResponse{Prompt: true, Vehicle: &vehicles[0]}, nil
}

// SubmitPrompt 处理提醒应答：跳过或更新里程，两种情况都把今天标记为已处理
func (s *PromptService) SubmitPrompt(ctx context.Context, userID uint, req *model.SubmitMileageRequest, now time.Time) (*model.Vehicle, error) {
	var vehicle *model.Vehicle

	if !req.Skip {
		if req.VehicleID == 0 || req.Mileage == nil {
			return nil, errors.New("vehicle_id and mileage are required unless skipping")
		}
		var err error
		vehicle, err = s.vehicles.Update(ctx, userID, req.VehicleID, &model.UpdateVehicleRequest{
			CurrentMileage: req.Mileage,
		})
		if err != nil {
			return nil, err
		}
	}

	s.markChecked(ctx, userID, now)
	return vehicle, nil
}

// markChecked 写入今日标记；失败只记日志，最多明天再提示一次
func (s *PromptService) markChecked(ctx context.Context, userID uint, now time.Time) {
	if err := s.redis.Set(ctx, promptKey(userID), dayString(now), promptMarkerTTL).Err(); err != nil {
		log.Printf("[Prompt] Failed to mark prompt for user %d: %v", userID, err)
	}
}
