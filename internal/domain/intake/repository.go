package intake

import "context"

// DraftRepository guarda formularios en curso. Update serializa las mutaciones
// de un mismo draft: fn corre con el lock tomado y, si devuelve error, no se aplica nada.
type DraftRepository interface {
	Create(ctx context.Context, d Draft) error
	GetByID(ctx context.Context, id string) (Draft, error)
	Update(ctx context.Context, id string, fn func(d *Draft) error) (Draft, error)
	Delete(ctx context.Context, id string) error
}
