package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"pet-adoption/internal/domain/catalog"
)

// catalogRepo mantiene el orden de inserción en un slice y un índice por id.
type catalogRepo struct {
	mu    sync.RWMutex
	items []catalog.AnimalRecord
	byID  map[string]int
}

func NewCatalogRepo() catalog.Repository {
	return &catalogRepo{
		byID: make(map[string]int),
	}
}

func (r *catalogRepo) Append(ctx context.Context, rec catalog.AnimalRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.ID) == "" {
		return fmt.Errorf("%w: record id required", catalog.ErrInvalidInput)
	}
	if _, exists := r.byID[rec.ID]; exists {
		return fmt.Errorf("%w: %s", catalog.ErrDuplicateID, rec.ID)
	}
	r.byID[rec.ID] = len(r.items)
	r.items = append(r.items, rec)
	return nil
}

func (r *catalogRepo) GetByID(ctx context.Context, id string) (catalog.AnimalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return catalog.AnimalRecord{}, catalog.ErrNotFound
	}
	return r.items[i], nil
}

func (r *catalogRepo) List(ctx context.Context) ([]catalog.AnimalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// copia: quien lista no puede mutar el catálogo
	out := make([]catalog.AnimalRecord, len(r.items))
	copy(out, r.items)
	return out, nil
}
