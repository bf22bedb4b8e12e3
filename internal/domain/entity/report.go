package entity

import "github.com/shopspring/decimal"

// DailySummary agregado de las ventas de un día calendario.
type DailySummary struct {
	Date               string          `json:"date"`
	TotalSales         decimal.Decimal `json:"totalSales"`
	TotalTransactions  int             `json:"totalTransactions"`
	TotalItems         int             `json:"totalItems"`
	AverageTransaction decimal.Decimal `json:"averageTransaction"` // 0 si no hay transacciones
}

// ReportData reporte derivado del libro de ventas sobre un rango de fechas.
// Función pura de sus entradas: re-derivable sin efectos secundarios.
type ReportData struct {
	StartDate          string                `json:"startDate"`
	EndDate            string                `json:"endDate"`
	TotalSales         decimal.Decimal       `json:"totalSales"`
	TotalTransactions  int                   `json:"totalTransactions"`
	TotalItems         int                   `json:"totalItems"`
	AverageTransaction decimal.Decimal       `json:"averageTransaction"`
	TopProducts        []TopProduct          `json:"topProducts"`
	DailyBreakdown     []DailyBucket         `json:"dailyBreakdown"`
	PaymentMethods     []PaymentMethodTotals `json:"paymentMethods"`
}

// TopProduct acumulado por producto dentro del rango, ordenado por Revenue.
type TopProduct struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// DailyBucket acumulado de ventas de un día dentro del rango.
type DailyBucket struct {
	Date         string          `json:"date"`
	Sales        decimal.Decimal `json:"sales"`
	Transactions int             `json:"transactions"`
	Items        int             `json:"items"`
}

// PaymentMethodTotals acumulado por método de pago dentro del rango.
type PaymentMethodTotals struct {
	Method string          `json:"method"`
	Count  int             `json:"count"`
	Total  decimal.Decimal `json:"total"`
}
