package catalog

import "time"

// AnimalRecord es una ficha del catálogo de adopción.
// Se crea solo por un envío exitoso (o por el seed) y no se modifica después.
type AnimalRecord struct {
	ID string

	Name     string
	AgeLabel string // en el seed texto libre ("2 anos"); desde el intake, el age group crudo
	SexLabel string // "Macho" / "Fêmea"
	Story    string
	PhotoURL string

	CreatedAt time.Time
}
