package handlers

import (
	"strings"

	"aw-society/internal/core/services"
	"aw-society/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SettingsHandler handles society settings endpoints
type SettingsHandler struct {
	settingsService *services.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// UpdateRequest represents a settings update request
type UpdateRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// List handles listing all settings
// @Summary List settings
// @Description List all society settings (admin only)
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /settings [get]
func (h *SettingsHandler) List(c *fiber.Ctx) error {
	settings, err := h.settingsService.GetAll(c.Context())
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Settings retrieved successfully", fiber.Map{
		"settings": settings,
	})
}

// Update handles upserting one setting
// @Summary Update setting
// @Description Upsert one society setting key (admin only)
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateRequest true "Setting key and value"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /settings [put]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	setting, err := h.settingsService.Update(c.Context(), strings.TrimSpace(req.Key), strings.TrimSpace(req.Value))
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Setting updated successfully", fiber.Map{
		"setting": setting,
	})
}
