// 登录日志审计

package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"autokeep/api/internal/model"
)

// AuditHandler 审计处理器
type AuditHandler struct {
	db *gorm.DB
}

// NewAuditHandler 创建审计处理器
func NewAuditHandler(db *gorm.DB) *AuditHandler {
	return &AuditHandler{db: db}
}

// RegisterRoutes 注册路由
func (h *AuditHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/audit-logs", h.ListLogs)
}

// ListLogs 获取当前用户的登录日志
// @Summary List login history
// @Tags Audit
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} map[string]interface{}
// @Router /audit-logs [get]
func (h *AuditHandler) ListLogs(c *gin.Context) {
	userID := GetUserID(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	query := h.db.Model(&model.LoginLog{}).Where("user_id = ?", userID)

	var total int64
	query.Count(&total)

	var logs []model.LoginLog
	offset := (page - 1) * pageSize
	query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&logs)

	c.JSON(http.StatusOK, gin.H{
		"list":      logs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}
