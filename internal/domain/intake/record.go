package intake

import (
	"fmt"

	"pet-adoption/internal/domain/catalog"
)

var sexLabels = map[Sex]string{
	SexMale:   "Macho",
	SexFemale: "Fêmea",
}

// BuildRecord arma la ficha del catálogo a partir del formulario.
// El id lo provee quien llama (la secuencia del catálogo) para garantizar unicidad.
func BuildRecord(f FieldSet, id string) catalog.AnimalRecord {
	sexLabel, ok := sexLabels[f.Sex]
	if !ok {
		sexLabel = string(f.Sex)
	}

	return catalog.AnimalRecord{
		ID:       id,
		Name:     f.Name,
		AgeLabel: string(f.AgeGroup),
		SexLabel: sexLabel,
		Story:    fmt.Sprintf("Pet cadastrado por %s, porte %s.", f.Name, f.Size),
		PhotoURL: PhotoURLFor(f.Species),
	}
}

// PhotoURLFor elige el placeholder por especie: uno para gato, otro para perro.
func PhotoURLFor(s Species) string {
	if s == SpeciesCat {
		return catalog.PhotoCat
	}
	return catalog.PhotoDog
}
