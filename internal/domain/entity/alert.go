package entity

// Severidad de una alerta de inventario.
const (
	SeverityLow      = "low"      // stock en o bajo el mínimo
	SeverityCritical = "critical" // stock exactamente en cero
)

// InventoryAlert alerta derivada del stock actual contra el umbral mínimo.
// Nunca se persiste; se recalcula en cada consulta.
type InventoryAlert struct {
	ProductID    string `json:"productId"`
	ProductName  string `json:"productName"`
	CurrentStock int    `json:"currentStock"`
	MinStock     int    `json:"minStock"`
	Severity     string `json:"severity"` // low, critical
}
