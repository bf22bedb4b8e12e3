package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/caja-pos/internal/application/checkout"
	"github.com/jhoicas/caja-pos/internal/application/dto"
	"github.com/jhoicas/caja-pos/internal/domain"
	"github.com/jhoicas/caja-pos/internal/domain/repository"
	"github.com/jhoicas/caja-pos/pkg/validator"
)

// SaleHandler registro y consulta del libro de ventas.
type SaleHandler struct {
	checkout *checkout.UseCase
	sales    repository.SaleRepository
}

// NewSaleHandler construye el handler.
func NewSaleHandler(checkoutUC *checkout.UseCase, sales repository.SaleRepository) *SaleHandler {
	return &SaleHandler{checkout: checkoutUC, sales: sales}
}

// Record godoc
// @Summary      Registrar venta completada
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordSaleRequest  true  "Borrador de venta"
// @Success      201   {object}  entity.Sale
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fails := validator.ValidateStruct(in); len(fails) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "items no vacío, cantidades > 0 y paymentMethod cash|card|other"})
	}
	sale, err := h.checkout.RecordSale(in, GetUserID(c), GetUsername(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientStock):
			// La venta entera se rechaza; ningún stock cambió.
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para una o más líneas"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "una línea referencia un producto inexistente"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la aritmética de la venta no cuadra"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}

// List godoc
// @Summary      Libro de ventas completo
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Sale
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	sales, err := h.sales.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(sales)
}

// Range godoc
// @Summary      Ventas por rango de fechas (inclusivo)
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        start  query  string  true  "YYYY-MM-DD"
// @Param        end    query  string  true  "YYYY-MM-DD"
// @Success      200  {array}  entity.Sale
// @Router       /api/sales/range [get]
func (h *SaleHandler) Range(c *fiber.Ctx) error {
	start, end := c.Query("start"), c.Query("end")
	if start == "" || end == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start y end son requeridos (YYYY-MM-DD)"})
	}
	sales, err := h.sales.GetByDateRange(start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(sales)
}

// Daily godoc
// @Summary      Resumen de un día calendario
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  true  "YYYY-MM-DD"
// @Success      200  {object}  entity.DailySummary
// @Router       /api/sales/daily [get]
func (h *SaleHandler) Daily(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date es requerido (YYYY-MM-DD)"})
	}
	summary, err := h.sales.GetDailySummary(date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}

// MarkReceiptPrinted godoc
// @Summary      Marcar recibo como impreso
// @Tags         sales
// @Security     Bearer
// @Param        id  path  string  true  "ID de la venta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt-printed [patch]
func (h *SaleHandler) MarkReceiptPrinted(c *fiber.Ctx) error {
	found, err := h.sales.SetReceiptPrinted(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
