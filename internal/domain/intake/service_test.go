package intake

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"pet-adoption/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// -------------------------
// Test repos (in-memory)
// -------------------------

type testDrafts struct {
	mu   sync.Mutex
	byID map[string]Draft
}

func newTestDrafts() *testDrafts {
	return &testDrafts{byID: map[string]Draft{}}
}

func (r *testDrafts) Create(ctx context.Context, d Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[d.ID] = d
	return nil
}

func (r *testDrafts) GetByID(ctx context.Context, id string) (Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.byID[id]
	if !ok {
		return Draft{}, ErrNotFound
	}
	return d, nil
}

func (r *testDrafts) Update(ctx context.Context, id string, fn func(*Draft) error) (Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.byID[id]
	if !ok {
		return Draft{}, ErrNotFound
	}
	if err := fn(&d); err != nil {
		return Draft{}, err
	}
	r.byID[id] = d
	return d, nil
}

func (r *testDrafts) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type testCatalogRepo struct {
	mu    sync.Mutex
	items []catalog.AnimalRecord
}

func (r *testCatalogRepo) Append(ctx context.Context, rec catalog.AnimalRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.ID == rec.ID {
			return catalog.ErrDuplicateID
		}
	}
	r.items = append(r.items, rec)
	return nil
}

func (r *testCatalogRepo) GetByID(ctx context.Context, id string) (catalog.AnimalRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return catalog.AnimalRecord{}, catalog.ErrNotFound
}

func (r *testCatalogRepo) List(ctx context.Context) ([]catalog.AnimalRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]catalog.AnimalRecord(nil), r.items...), nil
}

type countingRecorder struct {
	mu       sync.Mutex
	changes  map[string]int
	accepted map[string]int
	rejected int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{changes: map[string]int{}, accepted: map[string]int{}}
}

func (c *countingRecorder) FieldChanged(kind string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.changes[kind]++
}

func (c *countingRecorder) SubmissionAccepted(species string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accepted[species]++
}

func (c *countingRecorder) SubmissionRejected() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rejected++
}

func newTestService(t *testing.T, opts ...Option) (*Service, *catalog.Service) {
	t.Helper()
	cat := catalog.NewService(&testCatalogRepo{})
	svc := NewService(newTestDrafts(), cat, opts...)

	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	return svc, cat
}

// -------------------------
// Tests
// -------------------------

func TestService_Submit_AppendsRecordAndClearsFields(t *testing.T) {
	svc, _ := newTestService(t)

	res, err := svc.Submit(context.Background(), validFields())
	require.NoError(t, err)

	require.Len(t, res.Catalog, 1)
	rec := res.Catalog[0]
	assert.Equal(t, "1", rec.ID)
	assert.Equal(t, "Ana", rec.Name)
	assert.Equal(t, "adult", rec.AgeLabel)
	assert.Equal(t, "Fêmea", rec.SexLabel)
	assert.Equal(t, "Pet cadastrado por Ana, porte small.", rec.Story)
	assert.Equal(t, catalog.PhotoCat, rec.PhotoURL)
	assert.Equal(t, rec, res.Record)

	assert.Equal(t, FieldSet{}, res.Fields)
	assert.Equal(t, StateEditing, StateOf(res.Fields))
}

func TestService_Submit_DogMale(t *testing.T) {
	svc, _ := newTestService(t)

	f := validFields()
	f.Name = "Bob"
	f.Species = SpeciesDog
	f.Sex = SexMale
	f.AgeGroup = AgePuppy
	f.Size = SizeLarge

	res, err := svc.Submit(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, "Macho", res.Record.SexLabel)
	assert.Equal(t, "puppy", res.Record.AgeLabel)
	assert.Equal(t, catalog.PhotoDog, res.Record.PhotoURL)
	assert.Equal(t, "Pet cadastrado por Bob, porte large.", res.Record.Story)
}

func TestService_Submit_NotSubmittable(t *testing.T) {
	rec := newCountingRecorder()
	svc, cat := newTestService(t, WithMetrics(rec))

	f := validFields()
	f.Phone = "(11) 98765-432"

	_, err := svc.Submit(context.Background(), f)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidState))

	var invalid *InvalidStateError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, []Field{FieldPhone}, invalid.Missing)
	assert.Contains(t, err.Error(), "phone")

	items, err := cat.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 1, rec.rejected)
}

func TestService_Submit_BlankNameIsAccepted(t *testing.T) {
	svc, cat := newTestService(t)

	f := validFields()
	f.Name = "   "
	require.True(t, IsSubmittable(f))

	res, err := svc.Submit(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, "1", res.Record.ID)
	assert.Equal(t, "   ", res.Record.Name)

	items, err := cat.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestService_Submit_RejectsSelectorOutsideEnum(t *testing.T) {
	svc, cat := newTestService(t)

	f := validFields()
	f.Species = "bird"

	_, err := svc.Submit(context.Background(), f)
	require.ErrorIs(t, err, ErrInvalidState)

	var invalid *InvalidStateError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, []Field{FieldSpecies}, invalid.Missing)

	items, err := cat.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)

	// el id no se consumió
	res, err := svc.Submit(context.Background(), validFields())
	require.NoError(t, err)
	assert.Equal(t, "1", res.Record.ID)
}

func TestService_Submit_AppendsAfterSeed(t *testing.T) {
	svc, cat := newTestService(t)
	require.NoError(t, cat.Seed(context.Background(), catalog.DefaultSeed()))

	res, err := svc.Submit(context.Background(), validFields())
	require.NoError(t, err)
	require.Len(t, res.Catalog, 4)
	assert.Equal(t, "4", res.Record.ID)

	// los anteriores quedan intactos y en orden
	assert.Equal(t, []string{"Rex", "Luna", "Thor", "Ana"}, names(res.Catalog))
}

func TestService_Submit_ConcurrentIDsAreUnique(t *testing.T) {
	rec := newCountingRecorder()
	svc, cat := newTestService(t, WithMetrics(rec))

	const n = 50
	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			_, err := svc.Submit(context.Background(), validFields())
			return err
		})
	}
	require.NoError(t, g.Wait())

	items, err := cat.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, n)

	seen := map[string]bool{}
	for _, it := range items {
		assert.False(t, seen[it.ID], "duplicate id %s", it.ID)
		seen[it.ID] = true
	}
	assert.Equal(t, n, rec.accepted["cat"])
}

func TestService_Validate(t *testing.T) {
	svc, _ := newTestService(t)

	in := validFields()
	in.Phone = "11987654321"
	in.BirthDate = "01021990"

	out, rep, err := svc.Validate(in)
	require.NoError(t, err)
	assert.Equal(t, "(11) 98765-4321", out.Phone)
	assert.True(t, rep.Submittable)
	assert.Equal(t, StateReady, rep.State)
	assert.Empty(t, rep.Missing)

	_, _, err = svc.Validate(FieldSet{Sex: "other"})
	assert.ErrorIs(t, err, ErrInvalidSelection)
}

func TestService_Drafts_FullFlow(t *testing.T) {
	rec := newCountingRecorder()
	svc, cat := newTestService(t, WithMetrics(rec))
	ctx := context.Background()

	d, err := svc.CreateDraft(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, d.ID)
	assert.Equal(t, StateEditing, d.State())

	changes := []struct {
		field Field
		raw   string
		want  string
	}{
		{FieldName, "Ana", "Ana"},
		{FieldEmail, "a@b.c", "a@b.c"},
		{FieldPhone, "11987654321", "(11) 98765-4321"},
		{FieldBirthDate, "01021990", "01/02/1990"},
		{FieldPassword, "p", "p"},
		{FieldPasswordConfirm, "p", "p"},
		{FieldSpecies, "cat", "cat"},
		{FieldSex, "female", "female"},
		{FieldAgeGroup, "adult", "adult"},
		{FieldSize, "small", "small"},
	}
	var last FieldChange
	for _, c := range changes {
		last, err = svc.ChangeField(ctx, d.ID, c.field, c.raw)
		require.NoError(t, err, "field %s", c.field)
		assert.Equal(t, c.want, last.Value)
	}
	assert.True(t, last.Report.Submittable)
	assert.Equal(t, map[string]int{
		"plain_text":    4,
		"phone_masked":  1,
		"date_masked":   1,
		"selector_enum": 4,
	}, rec.changes)

	got, err := svc.GetDraft(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, StateReady, got.State())

	res, after, err := svc.SubmitDraft(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", res.Record.Name)
	assert.Equal(t, FieldSet{}, after.Fields)
	assert.Equal(t, StateEditing, after.State())

	// segundo envío: el draft quedó vacío
	_, _, err = svc.SubmitDraft(ctx, d.ID)
	assert.ErrorIs(t, err, ErrInvalidState)

	items, err := cat.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	require.NoError(t, svc.DeleteDraft(ctx, d.ID))
	_, err = svc.GetDraft(ctx, d.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_ChangeField_Errors(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.ChangeField(ctx, "missing", FieldName, "Ana")
	assert.ErrorIs(t, err, ErrNotFound)

	d, err := svc.CreateDraft(ctx)
	require.NoError(t, err)

	_, err = svc.ChangeField(ctx, d.ID, "nickname", "x")
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = svc.ChangeField(ctx, d.ID, FieldSize, "huge")
	assert.ErrorIs(t, err, ErrInvalidSelection)

	// el cambio rechazado no tocó el draft
	got, err := svc.GetDraft(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, FieldSet{}, got.Fields)
}

func TestService_SubmitDraft_ConcurrentSameDraft(t *testing.T) {
	svc, cat := newTestService(t)
	ctx := context.Background()

	d, err := svc.CreateDraft(ctx)
	require.NoError(t, err)
	f := validFields()
	for _, name := range Fields() {
		raw, _ := f.Get(name)
		_, err := svc.ChangeField(ctx, d.ID, name, raw)
		require.NoError(t, err)
	}

	const n = 10
	var (
		g        errgroup.Group
		mu       sync.Mutex
		ok, fail int
	)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			_, _, err := svc.SubmitDraft(ctx, d.ID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, ErrInvalidState):
				fail++
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, fail)

	items, err := cat.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestService_GetDraft_BlankID(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.GetDraft(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.DeleteDraft(context.Background(), ""), ErrNotFound)
}

func names(items []catalog.AnimalRecord) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}
