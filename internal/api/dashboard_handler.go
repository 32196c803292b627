package api

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/cache"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/middleware"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/service"
)

type DashboardHandler struct {
	dashboard *service.DashboardService
	reports   *service.ReportService
	cache     *cache.RedisCache
}

// NewDashboardHandler wires the dashboard endpoints. The cache may be nil;
// data is then assembled on every request.
func NewDashboardHandler(dashboard *service.DashboardService, reports *service.ReportService, redisCache *cache.RedisCache) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, reports: reports, cache: redisCache}
}

// Data returns the aggregated landing-page payload, cached briefly per
// company.
func (h *DashboardHandler) Data(c *gin.Context) {
	session := middleware.GetSession(c)
	key := "dashboard:" + session.CompanyID

	if h.cache != nil {
		var cached service.DashboardData
		if h.cache.Get(c.Request.Context(), key, &cached) {
			respondOK(c, &cached)
			return
		}
	}

	data, err := h.dashboard.Data(c.Request.Context(), session.CompanyID)
	if err != nil {
		respondError(c, err)
		return
	}

	if h.cache != nil {
		// Detached context: the response should not wait on the cache write.
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			h.cache.Set(ctx, key, data)
		}()
	}
	respondOK(c, data)
}

// RosterReport streams the staff roster workbook.
func (h *DashboardHandler) RosterReport(c *gin.Context) {
	session := middleware.GetSession(c)
	filename := fmt.Sprintf("roster-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.reports.WriteRosterXLSX(c.Request.Context(), session.CompanyID, c.Writer); err != nil {
		respondError(c, err)
	}
}

// PTOReport streams the per-employee balance workbook.
func (h *DashboardHandler) PTOReport(c *gin.Context) {
	session := middleware.GetSession(c)
	filename := fmt.Sprintf("pto-balances-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.reports.WritePTOSummaryXLSX(c.Request.Context(), session.CompanyID, c.Writer); err != nil {
		respondError(c, err)
	}
}
