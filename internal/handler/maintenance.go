package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"autokeep/api/internal/model"
	"autokeep/api/internal/service"
)

// MaintenanceHandler 保养规则与维保记录处理器
type MaintenanceHandler struct {
	vehicleService     *service.VehicleService
	maintenanceService *service.MaintenanceService
}

// NewMaintenanceHandler 创建保养处理器
func NewMaintenanceHandler(vehicleService *service.VehicleService, maintenanceService *service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{
		vehicleService:     vehicleService,
		maintenanceService: maintenanceService,
	}
}

// RegisterRoutes 注册路由
func (h *MaintenanceHandler) RegisterRoutes(r *gin.RouterGroup) {
	vehicles := r.Group("/vehicles/:id")
	{
		vehicles.GET("/status", h.GetVehicleStatus)

		vehicles.GET("/items", h.ListItems)
		vehicles.POST("/items", h.CreateItem)
		vehicles.DELETE("/items/:item_id", h.DeleteItem)

		vehicles.GET("/logs", h.ListLogs)
		vehicles.POST("/logs", h.CreateLog)
		vehicles.GET("/logs/export", h.ExportLogs)
	}

	r.GET("/maintenance/presets", h.ListPresets)
}

// ownedVehicle 解析路径车辆ID并校验归属；失败时已写好响应
func (h *MaintenanceHandler) ownedVehicle(c *gin.Context) (*model.Vehicle, bool) {
	id, ok := vehicleID(c)
	if !ok {
		return nil, false
	}

	vehicle, err := h.vehicleService.GetByID(c.Request.Context(), GetUserID(c), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
		return nil, false
	}
	return vehicle, true
}

// GetVehicleStatus 计算整车保养到期状态
// @Summary Vehicle maintenance status
// @Description Evaluate every maintenance rule of the vehicle against its current mileage
// @Tags Maintenance
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vehicle ID"
// @Success 200 {object} model.VehicleStatusResponse
// @Failure 404 {object} map[string]string
// @Router /vehicles/{id}/status [get]
func (h *MaintenanceHandler) GetVehicleStatus(c *gin.Context) {
	vehicle, ok := h.ownedVehicle(c)
	if !ok {
		return
	}

	status, err := h.maintenanceService.VehicleStatus(c.Request.Context(), vehicle, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, status)
}

// ListItems 获取车辆的保养规则
// @Summary List maintenance rules
// @Tags Maintenance
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vehicle ID"
// @Success 200 {array} model.MaintenanceItem
// @Router /vehicles/{id}/items [get]
func (h *MaintenanceHandler) ListItems(c *gin.Context) {
	vehicle, ok := h.ownedVehicle(c)
	if !ok {
		return
	}

	items, err := h.maintenanceService.ListItems(c.Request.Context(), vehicle.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

// CreateItem 创建保养规则
// @Summary Create maintenance rule
// @Tags Maintenance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vehicle ID"
// @Param item body model.CreateMaintenanceItemRequest true "Rule data"
// @Success 201 {object} model.MaintenanceItem
// @Failure 400 {object} map[string]string
// @Router /vehicles/{id}/items [post]
func (h *MaintenanceHandler) CreateItem(c *gin.Context) {
	vehicle, ok := h.ownedVehicle(c)
	if !ok {
		return
	}

	var req model.CreateMaintenanceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.maintenanceService.CreateItem(c.Request.Context(), vehicle.ID, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// DeleteItem 删除保养规则
// @Summary Delete maintenance rule
// @Tags Maintenance
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vehicle ID"
// @Param item_id path int true "Rule ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /vehicles/{id}/items/{item_id} [delete]
func (h *MaintenanceHandler) DeleteItem(c *gin.Context) {
	vehicle, ok := h.ownedVehicle(c)
	if !ok {
		return
	}

	itemID, err := strconv.Atoi(c.Param("item_id"))
	if err != nil || itemID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	if err := h.maintenanceService.DeleteItem(c.Request.Context(), vehicle.ID, uint(itemID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "item deleted"})
}

// ListLogs 获取维保记录，最近的在前
// @Summary List maintenance logs
// @Tags Maintenance
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vehicle ID"
// @Success 200 {array} model.MaintenanceLog
// @Router /vehicles/{id}/logs [get]
func (h *MaintenanceHandler) ListLogs(c *gin.Context) {
	vehicle, ok := h.ownedVehicle(c)
	if !ok {
		return
	}

	logs, err := h.maintenanceService.ListLogs(c.Request.Context(), vehicle.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, logs)
}

// CreateLog 创建维保记录。
// 保养类型且关联了规则时会回写规则的完成状态；回写失败不影响记录本身，
// 响应里携带 item_update_failed 提示
// @Summary Record maintenance log
// @Tags Maintenance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vehicle ID"
// @Param log body model.CreateMaintenanceLogRequest true "Log data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /vehicles/{id}/logs [post]
func (h *MaintenanceHandler) CreateLog(c *gin.Context) {
	vehicle, ok := h.ownedVehicle(c)
	if !ok {
		return
	}

	var req model.CreateMaintenanceLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, itemUpdateFailed, err := h.maintenanceService.RecordLog(c.Request.Context(), vehicle, &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "related item not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"log": entry}
	if itemUpdateFailed {
		resp["item_update_failed"] = true
	}
	c.JSON(http.StatusCreated, resp)
}

// ExportLogs 导出维保记录为 Excel
// @Summary Export maintenance logs
// @Tags Maintenance
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param id path int true "Vehicle ID"
// @Success 200 {file} binary
// @Router /vehicles/{id}/logs/export [get]
func (h *MaintenanceHandler) ExportLogs(c *gin.Context) {
	vehicle, ok := h.ownedVehicle(c)
	if !ok {
		return
	}

	f, err := h.maintenanceService.ExportLogs(c.Request.Context(), vehicle)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("maintenance_logs_%d_%s.xlsx", vehicle.ID, time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// ListPresets 获取内置保养规则模板
// @Summary List maintenance presets
// @Tags Maintenance
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.MaintenancePreset
// @Router /maintenance/presets [get]
func (h *MaintenanceHandler) ListPresets(c *gin.Context) {
	c.JSON(http.StatusOK, service.ListPresets())
}
