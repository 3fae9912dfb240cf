package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"autokeep/api/internal/model"
	"autokeep/api/internal/service"
)

// VehicleHandler 车辆处理器
type VehicleHandler struct {
	vehicleService     *service.VehicleService
	maintenanceService *service.MaintenanceService
}

// NewVehicleHandler 创建车辆处理器
func NewVehicleHandler(vehicleService *service.VehicleService, maintenanceService *service.MaintenanceService) *VehicleHandler {
	return &VehicleHandler{
		vehicleService:     vehicleService,
		maintenanceService: maintenanceService,
	}
}

// RegisterRoutes 注册路由
func (h *VehicleHandler) RegisterRoutes(r *gin.RouterGroup) {
	vehicles := r.Group("/vehicles")
	{
		vehicles.GET("", h.ListVehicles)
		vehicles.POST("", h.CreateVehicle)
		vehicles.GET("/:id", h.GetVehicle)
		vehicles.PUT("/:id", h.UpdateVehicle)
		vehicles.DELETE("/:id", h.DeleteVehicle)
	}
}

// vehicleID 解析路径里的车辆ID
func vehicleID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle id"})
		return 0, false
	}
	return uint(id), true
}

// ListVehicles 获取车辆列表
// @Summary List vehicles
// @Description List the current user's vehicles, optionally with maintenance status
// @Tags Vehicles
// @Produce json
// @Security BearerAuth
// @Param with_status query bool false "Include maintenance status summary"
// @Success 200 {object} map[string]interface{}
// @Router /vehicles [get]
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	userID := GetUserID(c)

	vehicles, err := h.vehicleService.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if c.Query("with_status") != "true" {
		c.JSON(http.StatusOK, gin.H{"list": vehicles, "total": len(vehicles)})
		return
	}

	now := time.Now()
	summaries := make([]model.VehicleWithStatus, 0, len(vehicles))
	for i := range vehicles {
		summary, err := h.maintenanceService.StatusSummary(c.Request.Context(), &vehicles[i], now)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		summaries = append(summaries, *summary)
	}

	c.JSON(http.StatusOK, gin.H{"list": summaries, "total": len(summaries)})
}

// GetVehicle 获取车辆详情
// @Summary Get vehicle
// @Tags Vehicles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vehicle ID"
// @Success 200 {object} model.Vehicle
// @Failure 404 {object} map[string]string
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	id, ok := vehicleID(c)
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.GetByID(c.Request.Context(), GetUserID(c), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// CreateVehicle 创建车辆
// @Summary Create vehicle
// @Tags Vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param vehicle body model.CreateVehicleRequest true "Vehicle data"
// @Success 201 {object} model.Vehicle
// @Failure 400 {object} map[string]string
// @Router /vehicles [post]
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var req model.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicle, err := h.vehicleService.Create(c.Request.Context(), GetUserID(c), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

// UpdateVehicle 更新车辆
// @Summary Update vehicle
// @Tags Vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vehicle ID"
// @Param vehicle body model.UpdateVehicleRequest true "Fields to update"
// @Success 200 {object} model.Vehicle
// @Failure 404 {object} map[string]string
// @Router /vehicles/{id} [put]
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	id, ok := vehicleID(c)
	if !ok {
		return
	}

	var req model.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicle, err := h.vehicleService.Update(c.Request.Context(), GetUserID(c), id, &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// DeleteVehicle 删除车辆，关联的保养规则和维保记录一并删除
// @Summary Delete vehicle
// @Tags Vehicles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vehicle ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /vehicles/{id} [delete]
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	id, ok := vehicleID(c)
	if !ok {
		return
	}

	if err := h.vehicleService.Delete(c.Request.Context(), GetUserID(c), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "vehicle deleted"})
}
