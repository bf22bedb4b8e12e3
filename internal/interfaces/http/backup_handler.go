package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/caja-pos/internal/application/backup"
	"github.com/jhoicas/caja-pos/internal/application/dto"
	"github.com/jhoicas/caja-pos/internal/domain"
)

// BackupHandler exportación y restauración de respaldos (solo admin).
type BackupHandler struct {
	uc *backup.UseCase
}

// NewBackupHandler construye el handler.
func NewBackupHandler(uc *backup.UseCase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// Export godoc
// @Summary      Descargar respaldo completo
// @Tags         backup
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  entity.Snapshot
// @Router       /api/backup [get]
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	raw, err := h.uc.ExportJSON()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="caja-pos-backup.json"`)
	return c.Send(raw)
}

// Import godoc
// @Summary      Restaurar respaldo (claves ausentes quedan intactas)
// @Tags         backup
// @Security     Bearer
// @Accept       json
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/backup [post]
func (h *BackupHandler) Import(c *fiber.Ctx) error {
	if err := h.uc.Import(c.Body()); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BACKUP", Message: "el documento de respaldo no es deserializable; nada fue importado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
