package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"autokeep/api/internal/model"
	"autokeep/api/internal/service"
)

// PromptHandler 每日里程提醒处理器
type PromptHandler struct {
	promptService *service.PromptService
}

// NewPromptHandler 创建提醒处理器
func NewPromptHandler(promptService *service.PromptService) *PromptHandler {
	return &PromptHandler{promptService: promptService}
}

// RegisterRoutes 注册路由
func (h *PromptHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/prompt/mileage", h.CheckPrompt)
	r.POST("/prompt/mileage", h.SubmitPrompt)
}

// CheckPrompt 查询今天是否需要弹出里程确认
// @Summary Check daily mileage prompt
// @Tags Prompt
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.MileagePromptResponse
// @Router /prompt/mileage [get]
func (h *PromptHandler) CheckPrompt(c *gin.Context) {
	resp, err := h.promptService.CheckPrompt(c.Request.Context(), GetUserID(c), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SubmitPrompt 应答里程提醒：跳过或更新里程，当天不再提示
// @Summary Answer daily mileage prompt
// @Tags Prompt
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param answer body model.SubmitMileageRequest true "Answer"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /prompt/mileage [post]
func (h *PromptHandler) SubmitPrompt(c *gin.Context) {
	var req model.SubmitMileageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicle, err := h.promptService.SubmitPrompt(c.Request.Context(), GetUserID(c), &req, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"message": "prompt recorded"}
	if vehicle != nil {
		resp["vehicle"] = vehicle
	}
	c.JSON(http.StatusOK, resp)
}
