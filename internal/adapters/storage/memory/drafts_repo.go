package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-adoption/internal/domain/intake"
)

type draftsRepo struct {
	mu   sync.Mutex
	byID map[string]intake.Draft
}

func NewDraftsRepo() intake.DraftRepository {
	return &draftsRepo{
		byID: make(map[string]intake.Draft),
	}
}

func (r *draftsRepo) Create(ctx context.Context, d intake.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(d.ID) == "" {
		return errors.New("draft id required")
	}
	if _, exists := r.byID[d.ID]; exists {
		return errors.New("draft already exists")
	}
	r.byID[d.ID] = d
	return nil
}

func (r *draftsRepo) GetByID(ctx context.Context, id string) (intake.Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.byID[id]
	if !ok {
		return intake.Draft{}, intake.ErrNotFound
	}
	return d, nil
}

// Update corre fn con el lock tomado sobre una copia; solo si fn no falla se guarda.
// fn corre con el lock del repo tomado: no debe bloquear.
func (r *draftsRepo) Update(ctx context.Context, id string, fn func(d *intake.Draft) error) (intake.Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.byID[id]
	if !ok {
		return intake.Draft{}, intake.ErrNotFound
	}
	if err := fn(&d); err != nil {
		return intake.Draft{}, err
	}
	r.byID[id] = d
	return d, nil
}

func (r *draftsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return intake.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
