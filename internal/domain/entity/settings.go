package entity

import "github.com/shopspring/decimal"

// Settings documento único de configuración de la tienda.
type Settings struct {
	StoreName     string          `json:"storeName"`
	StoreAddress  string          `json:"storeAddress"`
	StorePhone    string          `json:"storePhone"`
	StoreEmail    string          `json:"storeEmail"`
	TaxRate       decimal.Decimal `json:"taxRate"` // fracción en [0,1], ej. 0.12
	Currency      string          `json:"currency"`
	ReceiptFooter string          `json:"receiptFooter"`
}

// DefaultSettings documento sintetizado cuando no hay configuración guardada.
func DefaultSettings() Settings {
	return Settings{
		StoreName:     "Mi Tienda",
		TaxRate:       decimal.NewFromFloat(0.12),
		Currency:      "PHP",
		ReceiptFooter: "¡Gracias por su compra!",
	}
}
