package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/swiftcargo/tracking-api/internal/core/domain"
	"github.com/swiftcargo/tracking-api/internal/core/ports"
)

type stubQuoteRepo struct {
	byID   map[string]*domain.Quote
	nextID int
}

func newStubQuoteRepo() *stubQuoteRepo {
	return &stubQuoteRepo{byID: make(map[string]*domain.Quote)}
}

func (r *stubQuoteRepo) Insert(_ context.Context, q *domain.Quote) (*domain.Quote, error) {
	r.nextID++
	c := *q
	c.ID = fmt.Sprintf("q_%d", r.nextID)
	r.byID[c.ID] = &c
	clone := c
	return &clone, nil
}

func (r *stubQuoteRepo) FindByID(_ context.Context, id string) (*domain.Quote, error) {
	q, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrQuoteNotFound
	}
	c := *q
	return &c, nil
}

func (r *stubQuoteRepo) FindAll(_ context.Context) ([]*domain.Quote, error) {
	out := make([]*domain.Quote, 0, len(r.byID))
	for _, q := range r.byID {
		c := *q
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubQuoteRepo) Replace(_ context.Context, q *domain.Quote) error {
	if _, ok := r.byID[q.ID]; !ok {
		return domain.ErrQuoteNotFound
	}
	c := *q
	r.byID[q.ID] = &c
	return nil
}

func (r *stubQuoteRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func TestQuoteService_Create_ForcesStatusAndCreatedAt(t *testing.T) {
	svc := NewQuoteService(newStubQuoteRepo(), discardLogger)

	q, err := svc.Create(context.Background(), ports.CreateQuoteInput{
		Name:   "Jordan",
		Email:  "jordan@example.com",
		Origin: "LA",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Status != domain.QuoteStatusNew {
		t.Errorf("expected status %q, got %q", domain.QuoteStatusNew, q.Status)
	}
	if q.CreatedAt.IsZero() {
		t.Error("createdAt must be assigned")
	}
	if q.ID == "" {
		t.Error("store must assign an id")
	}
}

func TestQuoteService_Patch_MergesAndPreserves(t *testing.T) {
	svc := NewQuoteService(newStubQuoteRepo(), discardLogger)
	created, _ := svc.Create(context.Background(), ports.CreateQuoteInput{Name: "Jordan", Email: "j@example.com"})

	q, err := svc.Patch(context.Background(), created.ID, ports.QuotePatch{Status: strptr("quoted")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Status != "quoted" {
		t.Errorf("expected status updated, got %q", q.Status)
	}
	if q.Name != "Jordan" || q.Email != "j@example.com" {
		t.Errorf("unpatched fields must survive: %+v", q)
	}
	if !q.CreatedAt.Equal(created.CreatedAt) {
		t.Error("createdAt is immutable")
	}
}

func TestQuoteService_Patch_UnknownID(t *testing.T) {
	svc := NewQuoteService(newStubQuoteRepo(), discardLogger)

	_, err := svc.Patch(context.Background(), "missing", ports.QuotePatch{Status: strptr("quoted")})
	if !errors.Is(err, domain.ErrQuoteNotFound) {
		t.Fatalf("expected ErrQuoteNotFound, got %v", err)
	}
}

func TestQuoteService_Delete_Idempotent(t *testing.T) {
	svc := NewQuoteService(newStubQuoteRepo(), discardLogger)
	created, _ := svc.Create(context.Background(), ports.CreateQuoteInput{Name: "Jordan"})

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("second delete must be a no-op: %v", err)
	}
}

func TestQuoteService_List_NewestFirst(t *testing.T) {
	repo := newStubQuoteRepo()
	svc := NewQuoteService(repo, discardLogger)

	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, _ = repo.Insert(context.Background(), &domain.Quote{
			Name:      fmt.Sprintf("q%d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(list); i++ {
		if list[i].CreatedAt.After(list[i-1].CreatedAt) {
			t.Fatalf("list not sorted newest first")
		}
	}
}
