package handlers

import (
	"aw-society/internal/core/services"
	"aw-society/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles admin dashboard endpoints
type DashboardHandler struct {
	statsService *services.StatsService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(statsService *services.StatsService) *DashboardHandler {
	return &DashboardHandler{statsService: statsService}
}

// Stats handles the statistics snapshot
// @Summary Society statistics
// @Description Compute a fresh society-wide statistics snapshot (admin only)
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.statsService.ComputeStats(c.Context())
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Statistics computed successfully", fiber.Map{
		"stats": stats,
	})
}

// Overview handles the full admin dashboard payload
// @Summary Admin overview
// @Description Statistics plus every member with their transaction history (admin only)
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /stats/overview [get]
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	overview, err := h.statsService.GetOverview(c.Context())
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Overview retrieved successfully", overview)
}
