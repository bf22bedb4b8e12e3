package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/caja-pos/internal/application/dto"
	"github.com/jhoicas/caja-pos/internal/domain"
	"github.com/jhoicas/caja-pos/internal/domain/entity"
	"github.com/jhoicas/caja-pos/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD y de inventario para el catálogo.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List devuelve el catálogo completo.
func (uc *ProductUseCase) List() ([]entity.Product, error) {
	return uc.repo.GetAll()
}

// Create valida y persiste un producto nuevo. El código repetido se rechaza
// aquí (ErrDuplicate); el repositorio no impone unicidad.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*entity.Product, error) {
	if in.Price.LessThan(decimal.Zero) || in.Stock < 0 || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetAll()
	if err != nil {
		return nil, err
	}
	for _, p := range existing {
		if p.Code == in.Code {
			return nil, domain.ErrDuplicate
		}
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	product, err := uc.repo.Add(entity.Product{
		Name:     in.Name,
		Code:     in.Code,
		Category: in.Category,
		Price:    in.Price,
		Stock:    in.Stock,
		MinStock: in.MinStock,
		Variants: in.Variants,
		IsActive: active,
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Update aplica una actualización parcial. False si el producto no existe.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (bool, error) {
	if in.Price != nil && in.Price.LessThan(decimal.Zero) {
		return false, domain.ErrInvalidInput
	}
	if in.Stock != nil && *in.Stock < 0 {
		return false, domain.ErrInvalidInput
	}
	if in.MinStock != nil && *in.MinStock < 0 {
		return false, domain.ErrInvalidInput
	}
	return uc.repo.Update(id, entity.ProductPatch{
		Name:     in.Name,
		Code:     in.Code,
		Category: in.Category,
		Price:    in.Price,
		Stock:    in.Stock,
		MinStock: in.MinStock,
		Variants: in.Variants,
		IsActive: in.IsActive,
	})
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) (bool, error) {
	return uc.repo.Delete(id)
}

// UpdateStock ajusta stock manualmente (recepciones, mermas).
func (uc *ProductUseCase) UpdateStock(id string, in dto.StockUpdateRequest) error {
	return uc.repo.UpdateStock(id, in.Quantity, in.Direction)
}

// Search busca en el catálogo activo por nombre, código o categoría.
func (uc *ProductUseCase) Search(query string) ([]entity.Product, error) {
	return uc.repo.Search(query)
}

// LowStockAlerts devuelve las alertas de stock bajo el umbral.
func (uc *ProductUseCase) LowStockAlerts() ([]entity.InventoryAlert, error) {
	return uc.repo.LowStockAlerts()
}
