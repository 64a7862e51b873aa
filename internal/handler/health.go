package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	httpresp "cidian/internal/pkg/http"
)

// Pinger 可做连通性检查的依赖（数据库、缓存）
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler 健康检查处理器
type HealthHandler struct {
	deps map[string]Pinger
}

// NewHealthHandler 创建健康检查处理器，deps 为就绪检查需要探测的依赖
func NewHealthHandler(deps map[string]Pinger) *HealthHandler {
	return &HealthHandler{deps: deps}
}

// Health 存活检查
// @Summary      存活检查
// @Tags         健康检查
// @Produce      json
// @Success      200  {object}  httpresp.Response
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	httpresp.OK(c, http.StatusOK, "", gin.H{"status": "ok"})
}

// Ready 就绪检查，逐个探测依赖
// @Summary      就绪检查
// @Tags         健康检查
// @Produce      json
// @Success      200  {object}  httpresp.Response
// @Failure      503  {object}  httpresp.Response
// @Router       /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	checks := make(map[string]string, len(h.deps))
	ready := true
	for name, dep := range h.deps {
		if err := dep.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("dependency", name).Msg("readiness check failed")
			checks[name] = "unavailable"
			ready = false
			continue
		}
		checks[name] = "ok"
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, &httpresp.Response{
			Success: false,
			Data:    gin.H{"status": "not ready", "checks": checks},
			Message: "Dependencies unavailable",
			Error:   httpresp.KindServiceUnavailable,
		})
		return
	}
	httpresp.OK(c, http.StatusOK, "", gin.H{"status": "ready", "checks": checks})
}
