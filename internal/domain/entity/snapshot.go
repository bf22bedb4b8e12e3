package entity

import "time"

// Snapshot documento transportable con el conjunto completo de datos.
// Un respaldo parcial (claves ausentes) es válido al importar, pero la
// exportación siempre emite las cuatro familias: una colección vacía viaja
// como lista vacía, nunca como clave ausente, para que restaurar el respaldo
// reproduzca el estado exportado también cuando una familia no tiene registros.
type Snapshot struct {
	Users      []User    `json:"users"`
	Products   []Product `json:"products"`
	Sales      []Sale    `json:"sales"`
	Settings   *Settings `json:"settings,omitempty"`
	ExportDate time.Time `json:"exportDate"`
}
