// Package reports deriva estadísticas del libro de ventas sobre un rango de
// fechas. Sin efectos secundarios: el mismo libro produce siempre el mismo
// reporte.
package reports

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/caja-pos/internal/domain"
	"github.com/jhoicas/caja-pos/internal/domain/entity"
	"github.com/jhoicas/caja-pos/internal/domain/repository"
)

const topProductsCap = 10 // máximo de productos en el ranking

// UseCase agregador de reportes. Lee solo de ventas y productos.
type UseCase struct {
	sales    repository.SaleRepository
	products repository.ProductRepository
}

// NewUseCase construye el agregador.
func NewUseCase(sales repository.SaleRepository, products repository.ProductRepository) *UseCase {
	return &UseCase{sales: sales, products: products}
}

// Build genera el reporte del rango inclusivo [start, end] (días YYYY-MM-DD).
func (uc *UseCase) Build(start, end string) (*entity.ReportData, error) {
	if start == "" || end == "" || start > end {
		return nil, domain.ErrInvalidInput
	}
	sales, err := uc.sales.GetByDateRange(start, end)
	if err != nil {
		return nil, err
	}
	products, err := uc.products.GetAll()
	if err != nil {
		return nil, err
	}

	report := &entity.ReportData{
		StartDate:          start,
		EndDate:            end,
		TotalSales:         decimal.Zero,
		AverageTransaction: decimal.Zero,
		TopProducts:        []entity.TopProduct{},
		DailyBreakdown:     []entity.DailyBucket{},
		PaymentMethods:     []entity.PaymentMethodTotals{},
	}

	// Nombres vigentes del catálogo; una línea de un producto ya borrado cae
	// al nombre guardado en la propia línea.
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	type grouped struct {
		top     map[string]*entity.TopProduct
		topSeen []string
		daily   map[string]*entity.DailyBucket
		payment map[string]*entity.PaymentMethodTotals
		paySeen []string
	}
	g := grouped{
		top:     map[string]*entity.TopProduct{},
		daily:   map[string]*entity.DailyBucket{},
		payment: map[string]*entity.PaymentMethodTotals{},
	}

	for _, s := range sales {
		report.TotalSales = report.TotalSales.Add(s.Total)
		report.TotalTransactions++

		saleItems := 0
		for _, item := range s.Items {
			saleItems += item.Quantity

			tp, ok := g.top[item.ProductID]
			if !ok {
				name := item.Name
				if current, exists := names[item.ProductID]; exists {
					name = current
				}
				tp = &entity.TopProduct{ProductID: item.ProductID, Name: name, Revenue: decimal.Zero}
				g.top[item.ProductID] = tp
				g.topSeen = append(g.topSeen, item.ProductID)
			}
			tp.Quantity += item.Quantity
			tp.Revenue = tp.Revenue.Add(item.Total)
		}
		report.TotalItems += saleItems

		db, ok := g.daily[s.Date]
		if !ok {
			db = &entity.DailyBucket{Date: s.Date, Sales: decimal.Zero}
			g.daily[s.Date] = db
		}
		db.Sales = db.Sales.Add(s.Total)
		db.Transactions++
		db.Items += saleItems

		pm, ok := g.payment[s.PaymentMethod]
		if !ok {
			pm = &entity.PaymentMethodTotals{Method: s.PaymentMethod, Total: decimal.Zero}
			g.payment[s.PaymentMethod] = pm
			g.paySeen = append(g.paySeen, s.PaymentMethod)
		}
		pm.Count++
		pm.Total = pm.Total.Add(s.Total)
	}

	if report.TotalTransactions > 0 {
		report.AverageTransaction = report.TotalSales.
			Div(decimal.NewFromInt(int64(report.TotalTransactions))).Round(2)
	}

	// Ranking por revenue descendente; el empate conserva el orden de primera
	// aparición (sort estable sobre la lista en ese orden).
	ranked := make([]entity.TopProduct, 0, len(g.topSeen))
	for _, id := range g.topSeen {
		ranked = append(ranked, *g.top[id])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue.GreaterThan(ranked[j].Revenue)
	})
	if len(ranked) > topProductsCap {
		ranked = ranked[:topProductsCap]
	}
	report.TopProducts = ranked

	// Desglose diario ascendente por fecha (lexicográfico = cronológico).
	dates := make([]string, 0, len(g.daily))
	for date := range g.daily {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	for _, date := range dates {
		report.DailyBreakdown = append(report.DailyBreakdown, *g.daily[date])
	}

	// Métodos de pago en orden de primera aparición en el libro.
	for _, method := range g.paySeen {
		report.PaymentMethods = append(report.PaymentMethods, *g.payment[method])
	}

	return report, nil
}
