// Package http provides the HTTP route layer for the segment insights service.
package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/segment-insights/internal/domain/dto"
	"github.com/guttosm/segment-insights/internal/service"
)

// Handler provides HTTP handlers for the metric endpoints.
//
// Dashboard-facing endpoints never surface downstream failures as 5xx: the
// UI polls them continuously, so they degrade to a documented neutral payload
// with HTTP 200 and leave the error in the logs. Only /api/health reports
// engine unavailability with a status code.
type Handler struct {
	analytics *service.Analytics
}

// NewHandler creates a new Handler instance.
func NewHandler(analytics *service.Analytics) *Handler {
	return &Handler{analytics: analytics}
}

// Health handles GET /api/health requests.
//
// @Summary      Query engine health
// @Description  Probes the federated query engine with a trivial statement. Returns 503 when the engine is unreachable or failing.
// @Tags         Health
// @Produce      json
// @Success      200 {object} dto.Health "Engine reachable"
// @Failure      503 {object} dto.Health "Engine unreachable"
// @Router       /api/health [get]
func (h *Handler) Health(c *gin.Context) {
	if err := h.analytics.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, dto.Health{OK: false})
		return
	}
	c.JSON(http.StatusOK, dto.Health{OK: true})
}

// KPIs handles GET /api/kpis requests.
//
// @Summary      Headline KPIs
// @Description  Total revenue, order count, average order value, and the top revenue segment.
// @Tags         Metrics
// @Produce      json
// @Success      200 {object} dto.KPIs
// @Router       /api/kpis [get]
func (h *Handler) KPIs(c *gin.Context) {
	result, err := h.analytics.KPIs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, dto.KPIs{})
		return
	}
	c.JSON(http.StatusOK, result)
}

// RevenueBySegment handles GET /api/revenue_by_segment requests. It also
// serves /api/revenue_share_by_segment, which the dashboard treats as an
// alias for the same series.
//
// @Summary      Revenue by segment
// @Tags         Metrics
// @Produce      json
// @Success      200 {object} dto.SegmentSeries
// @Router       /api/revenue_by_segment [get]
func (h *Handler) RevenueBySegment(c *gin.Context) {
	result, err := h.analytics.RevenueBySegment(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, dto.EmptySegmentSeries())
		return
	}
	c.JSON(http.StatusOK, result)
}

// AvgOrderValueBySegment handles GET /api/avg_order_value_by_segment requests.
//
// @Summary      Average order value by segment
// @Tags         Metrics
// @Produce      json
// @Success      200 {object} dto.SegmentSeries
// @Router       /api/avg_order_value_by_segment [get]
func (h *Handler) AvgOrderValueBySegment(c *gin.Context) {
	result, err := h.analytics.AvgOrderValueBySegment(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, dto.EmptySegmentSeries())
		return
	}
	c.JSON(http.StatusOK, result)
}

// OrdersCountBySegment handles GET /api/orders_count_by_segment requests.
//
// @Summary      Order counts by segment
// @Tags         Metrics
// @Produce      json
// @Success      200 {object} dto.SegmentCounts
// @Router       /api/orders_count_by_segment [get]
func (h *Handler) OrdersCountBySegment(c *gin.Context) {
	result, err := h.analytics.OrdersCountBySegment(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, dto.EmptySegmentCounts())
		return
	}
	c.JSON(http.StatusOK, result)
}

// MonthlyRevenueBySegment handles GET /api/monthly_revenue_by_segment requests.
//
// @Summary      Monthly revenue by segment
// @Description  Trailing 12-month revenue per segment, densified so every dataset covers the same month labels.
// @Tags         Metrics
// @Produce      json
// @Success      200 {object} dto.MonthlySeries
// @Router       /api/monthly_revenue_by_segment [get]
func (h *Handler) MonthlyRevenueBySegment(c *gin.Context) {
	result, err := h.analytics.MonthlyRevenueBySegment(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, dto.EmptyMonthlySeries())
		return
	}
	c.JSON(http.StatusOK, result)
}

// TopCustomers handles GET /api/top_customers requests.
//
// @Summary      Top customers by revenue
// @Tags         Metrics
// @Produce      json
// @Param        limit query int false "Row limit (clamped to a bounded positive range)" default(20)
// @Success      200 {object} dto.TopCustomers
// @Router       /api/top_customers [get]
func (h *Handler) TopCustomers(c *gin.Context) {
	// Non-numeric or absent limits fall back to the configured default;
	// the service clamps the rest.
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		limit = 0
	}

	result, err := h.analytics.TopCustomers(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusOK, dto.EmptyTopCustomers())
		return
	}
	c.JSON(http.StatusOK, result)
}

// Dashboard handles GET /api/dashboard requests.
//
// @Summary      Composed dashboard payload
// @Description  Merges every dashboard metric into one object under a single longer-lived cache entry. Returns {"error":"busy"} with HTTP 200 when composition fails.
// @Tags         Metrics
// @Produce      json
// @Success      200 {object} dto.Dashboard
// @Router       /api/dashboard [get]
func (h *Handler) Dashboard(c *gin.Context) {
	result, err := h.analytics.Dashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"error": "busy"})
		return
	}
	c.JSON(http.StatusOK, result)
}
