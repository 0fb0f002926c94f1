package intake

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption/internal/domain/catalog"
	"pet-adoption/internal/platform/logger"

	"github.com/google/uuid"
)

// Catalog es lo que el intake necesita del catálogo: agregar y leer.
type Catalog interface {
	Append(ctx context.Context, build func(id string) catalog.AnimalRecord) (catalog.AnimalRecord, error)
	List(ctx context.Context) ([]catalog.AnimalRecord, error)
}

// Recorder recibe los eventos que interesan a métricas.
type Recorder interface {
	FieldChanged(kind string)
	SubmissionAccepted(species string)
	SubmissionRejected()
}

type nopRecorder struct{}

func (nopRecorder) FieldChanged(string)       {}
func (nopRecorder) SubmissionAccepted(string) {}
func (nopRecorder) SubmissionRejected()       {}

type Service struct {
	drafts  DraftRepository
	catalog Catalog
	metrics Recorder
	log     logger.Logger
	now     func() time.Time
}

type Option func(*Service)

func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func WithMetrics(m Recorder) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

func NewService(drafts DraftRepository, cat Catalog, opts ...Option) *Service {
	s := &Service{
		drafts:  drafts,
		catalog: cat,
		metrics: nopRecorder{},
		log:     logger.Nop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitResult es lo que produce un envío: la ficha nueva, el catálogo resultante
// y el formulario ya limpio.
type SubmitResult struct {
	Record  catalog.AnimalRecord
	Catalog []catalog.AnimalRecord
	Fields  FieldSet
}

// Submit agrega al catálogo la ficha construida desde f y devuelve los campos vacíos.
// Si f no es submittable devuelve *InvalidStateError sin tocar el catálogo.
func (s *Service) Submit(ctx context.Context, f FieldSet) (SubmitResult, error) {
	if missing := Missing(f); len(missing) > 0 {
		s.metrics.SubmissionRejected()
		s.log.Warn("intake submit rejected", map[string]any{"missing": joinFields(missing)})
		return SubmitResult{}, &InvalidStateError{Missing: missing}
	}

	rec, err := s.catalog.Append(ctx, func(id string) catalog.AnimalRecord {
		return BuildRecord(f, id)
	})
	if err != nil {
		return SubmitResult{}, fmt.Errorf("intake submit: %w", err)
	}

	items, err := s.catalog.List(ctx)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("intake submit: list catalog: %w", err)
	}

	s.metrics.SubmissionAccepted(string(f.Species))
	s.log.Info("intake submitted", map[string]any{
		"record_id": rec.ID,
		"species":   string(f.Species),
	})

	return SubmitResult{
		Record:  rec,
		Catalog: items,
		Fields:  FieldSet{},
	}, nil
}

// Report es la validez derivada de un FieldSet.
type Report struct {
	Submittable bool
	State       State
	Missing     []Field
}

func Evaluate(f FieldSet) Report {
	missing := Missing(f)
	st := StateEditing
	if len(missing) == 0 {
		st = StateReady
	}
	return Report{Submittable: len(missing) == 0, State: st, Missing: missing}
}

// Validate normaliza un formulario completo y calcula su validez.
func (s *Service) Validate(f FieldSet) (FieldSet, Report, error) {
	n, err := Normalize(f)
	if err != nil {
		return FieldSet{}, Report{}, err
	}
	return n, Evaluate(n), nil
}

// ---- drafts ----

func (s *Service) CreateDraft(ctx context.Context) (Draft, error) {
	now := s.now()
	d := Draft{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.drafts.Create(ctx, d); err != nil {
		return Draft{}, err
	}
	return d, nil
}

func (s *Service) GetDraft(ctx context.Context, id string) (Draft, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Draft{}, ErrNotFound
	}
	return s.drafts.GetByID(ctx, id)
}

func (s *Service) DeleteDraft(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}
	return s.drafts.Delete(ctx, id)
}

// FieldChange es la respuesta a un cambio de campo: el valor ya formateado y
// la validez recalculada.
type FieldChange struct {
	Field  Field
	Value  string
	Report Report
}

// ChangeField aplica onFieldChange sobre un draft.
func (s *Service) ChangeField(ctx context.Context, id string, name Field, raw string) (FieldChange, error) {
	kind, err := KindOf(name)
	if err != nil {
		return FieldChange{}, err
	}

	var value string
	d, err := s.drafts.Update(ctx, id, func(d *Draft) error {
		next, v, err := d.Fields.With(name, raw)
		if err != nil {
			return err
		}
		d.Fields = next
		d.UpdatedAt = s.now()
		value = v
		return nil
	})
	if err != nil {
		return FieldChange{}, err
	}

	s.metrics.FieldChanged(kind.String())
	return FieldChange{Field: name, Value: value, Report: Evaluate(d.Fields)}, nil
}

// SubmitDraft envía el draft y lo deja vacío (vuelve a editing).
// Dos envíos simultáneos del mismo draft generan una sola ficha: el segundo
// encuentra el formulario ya limpio.
func (s *Service) SubmitDraft(ctx context.Context, id string) (SubmitResult, Draft, error) {
	var res SubmitResult
	d, err := s.drafts.Update(ctx, id, func(d *Draft) error {
		r, err := s.Submit(ctx, d.Fields)
		if err != nil {
			return err
		}
		d.Fields = r.Fields
		d.UpdatedAt = s.now()
		res = r
		return nil
	})
	if err != nil {
		var invalid *InvalidStateError
		if errors.As(err, &invalid) || errors.Is(err, ErrNotFound) {
			return SubmitResult{}, Draft{}, err
		}
		return SubmitResult{}, Draft{}, fmt.Errorf("submit draft %s: %w", id, err)
	}
	return res, d, nil
}

func joinFields(fs []Field) string {
	parts := make([]string, 0, len(fs))
	for _, f := range fs {
		parts = append(parts, string(f))
	}
	return strings.Join(parts, ",")
}
