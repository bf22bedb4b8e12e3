package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/caja-pos/internal/application/dto"
	"github.com/jhoicas/caja-pos/internal/application/usecase"
	"github.com/jhoicas/caja-pos/internal/domain"
	"github.com/jhoicas/caja-pos/internal/domain/entity"
)

// SettingsHandler lectura y actualización de la configuración de la tienda.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get godoc
// @Summary      Configuración de la tienda (con defaults si no hay nada)
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  entity.Settings
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	settings, err := h.uc.Get()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(settings)
}

// Save godoc
// @Summary      Sobreescribir la configuración
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Param        body  body  entity.Settings  true  "Documento completo"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/settings [put]
func (h *SettingsHandler) Save(c *fiber.Ctx) error {
	var in entity.Settings
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Save(in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "taxRate debe estar en [0,1] y currency ser un código ISO 4217"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
