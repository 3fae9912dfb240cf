package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autokeep/api/internal/service"
)

// ReferenceHandler 参考数据处理器
type ReferenceHandler struct{}

// NewReferenceHandler 创建参考数据处理器
func NewReferenceHandler() *ReferenceHandler {
	return &ReferenceHandler{}
}

// RegisterRoutes 注册路由
func (h *ReferenceHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/reference/car-brands", h.ListCarBrands)
}

// ListCarBrands 获取品牌/车型参考数据
// @Summary List car brands
// @Tags Reference
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.CarBrand
// @Router /reference/car-brands [get]
func (h *ReferenceHandler) ListCarBrands(c *gin.Context) {
	c.JSON(http.StatusOK, service.ListCarBrands())
}
