package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrDuplicateID  = errors.New("duplicate id")
)

// Recorder recibe el tamaño del catálogo después de cada alta.
type Recorder interface {
	SetCatalogSize(n int)
}

type nopRecorder struct{}

func (nopRecorder) SetCatalogSize(int) {}

// Service es el dueño del catálogo: el listado solo lee, el intake solo agrega
// a través de Append.
type Service struct {
	repo    Repository
	seq     *Sequence
	metrics Recorder
	now     func() time.Time
}

type Option func(*Service)

func WithMetrics(m Recorder) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:    repo,
		seq:     &Sequence{},
		metrics: nopRecorder{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append reserva un id, construye la ficha con build y la agrega al final.
// La reserva del id es atómica, así que dos altas simultáneas nunca comparten id.
func (s *Service) Append(ctx context.Context, build func(id string) AnimalRecord) (AnimalRecord, error) {
	if build == nil {
		return AnimalRecord{}, ErrInvalidInput
	}

	id := s.seq.Next()
	r := build(id)
	if r.ID != id || r.Name == "" {
		return AnimalRecord{}, ErrInvalidInput
	}
	r.CreatedAt = s.now()

	if err := s.repo.Append(ctx, r); err != nil {
		return AnimalRecord{}, fmt.Errorf("append %s: %w", id, err)
	}
	s.refreshSize(ctx)
	return r, nil
}

// Seed carga fichas con id ya asignado (catálogo inicial) y adelanta la secuencia.
func (s *Service) Seed(ctx context.Context, records []AnimalRecord) error {
	for _, r := range records {
		if strings.TrimSpace(r.ID) == "" || r.Name == "" {
			return ErrInvalidInput
		}
		if r.CreatedAt.IsZero() {
			r.CreatedAt = s.now()
		}
		if err := s.repo.Append(ctx, r); err != nil {
			return fmt.Errorf("seed %s: %w", r.ID, err)
		}
		s.seq.AdvancePast(r.ID)
	}
	s.refreshSize(ctx)
	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (AnimalRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return AnimalRecord{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// List devuelve una copia del catálogo en orden de inserción.
func (s *Service) List(ctx context.Context) ([]AnimalRecord, error) {
	return s.repo.List(ctx)
}

func (s *Service) refreshSize(ctx context.Context) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return
	}
	s.metrics.SetCatalogSize(len(items))
}
