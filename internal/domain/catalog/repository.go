package catalog

import "context"

// Repository guarda las fichas en orden de inserción. Solo se agrega, nunca se borra.
type Repository interface {
	Append(ctx context.Context, r AnimalRecord) error
	GetByID(ctx context.Context, id string) (AnimalRecord, error)
	List(ctx context.Context) ([]AnimalRecord, error)
}
