package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/caja-pos/internal/application/dto"
	"github.com/jhoicas/caja-pos/internal/application/reports"
	"github.com/jhoicas/caja-pos/internal/domain"
)

// ReportHandler genera reportes sobre un rango de fechas.
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Build godoc
// @Summary      Reporte de ventas del rango [start, end]
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start  query  string  true  "YYYY-MM-DD"
// @Param        end    query  string  true  "YYYY-MM-DD"
// @Success      200  {object}  entity.ReportData
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports [get]
func (h *ReportHandler) Build(c *fiber.Ctx) error {
	report, err := h.uc.Build(c.Query("start"), c.Query("end"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start y end son requeridos y start <= end"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(report)
}
