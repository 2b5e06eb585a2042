package handlers

import (
	"errors"

	"vetkom-cpd-admin/internal/core/domain"
	"vetkom-cpd-admin/internal/core/services"
	"vetkom-cpd-admin/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SettingsHandler handles system settings endpoints
type SettingsHandler struct {
	settingsService *services.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get returns the settings singleton
// @Summary Get system settings
// @Description Get the global system settings record
// @Tags Settings
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	settings, err := h.settingsService.Get(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrSettingsNotFound) {
			return response.NotFound(c, err.Error())
		}
		return response.InternalServerError(c, err.Error())
	}
	return response.Success(c, "Settings retrieved successfully", settings)
}

// Update applies a partial settings update
// @Summary Update system settings
// @Description Validate and apply a partial settings update, then reconcile business rules
// @Tags Settings
// @Accept json
// @Produce json
// @Param body body services.UpdateSettingsInput true "Partial settings update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /settings [put]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var input services.UpdateSettingsInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	settings, err := h.settingsService.Update(c.Context(), &input)
	if err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return response.BadRequest(c, validationErr.Error())
		case errors.Is(err, domain.ErrSettingsNotFound):
			return response.NotFound(c, err.Error())
		default:
			return response.InternalServerError(c, err.Error())
		}
	}

	return response.Success(c, "Settings updated successfully", settings)
}

// Validate dry-runs the field rules over a partial update
// @Summary Validate system settings
// @Description Check a partial settings update against the field rules without saving
// @Tags Settings
// @Accept json
// @Produce json
// @Param body body services.UpdateSettingsInput true "Partial settings update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /settings/validate [post]
func (h *SettingsHandler) Validate(c *fiber.Ctx) error {
	var input services.UpdateSettingsInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	errs := h.settingsService.Validate(&input)
	return response.Success(c, "Settings validated", fiber.Map{
		"valid":  len(errs) == 0,
		"errors": errs,
	})
}

// Reset restores the seed defaults
// @Summary Reset system settings
// @Description Restore the settings record to its seed defaults
// @Tags Settings
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /settings/reset [post]
func (h *SettingsHandler) Reset(c *fiber.Ctx) error {
	settings, err := h.settingsService.Reset(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrSettingsNotFound) {
			return response.NotFound(c, err.Error())
		}
		return response.InternalServerError(c, err.Error())
	}
	return response.Success(c, "Settings reset to defaults", settings)
}
