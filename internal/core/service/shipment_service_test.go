package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/swiftcargo/tracking-api/internal/core/domain"
	"github.com/swiftcargo/tracking-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubShipmentRepo struct {
	byID      map[string]*domain.Shipment
	nextID    int
	findCalls int // FindByTrackingNumber invocations
}

func newStubShipmentRepo() *stubShipmentRepo {
	return &stubShipmentRepo{byID: make(map[string]*domain.Shipment)}
}

func cloneShipment(s *domain.Shipment) *domain.Shipment {
	c := *s
	c.Events = append([]domain.Event(nil), s.Events...)
	return &c
}

func (r *stubShipmentRepo) Insert(_ context.Context, s *domain.Shipment) (*domain.Shipment, error) {
	r.nextID++
	c := cloneShipment(s)
	c.ID = fmt.Sprintf("id_%d", r.nextID)
	r.byID[c.ID] = c
	return cloneShipment(c), nil
}

func (r *stubShipmentRepo) FindByID(_ context.Context, id string) (*domain.Shipment, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrShipmentNotFound
	}
	return cloneShipment(s), nil
}

func (r *stubShipmentRepo) FindByTrackingNumber(_ context.Context, tn string) (*domain.Shipment, error) {
	r.findCalls++
	for _, s := range r.byID {
		if s.TrackingNumber == tn {
			return cloneShipment(s), nil
		}
	}
	return nil, domain.ErrShipmentNotFound
}

func (r *stubShipmentRepo) FindAll(_ context.Context) ([]*domain.Shipment, error) {
	out := make([]*domain.Shipment, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, cloneShipment(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubShipmentRepo) Replace(_ context.Context, s *domain.Shipment) error {
	if _, ok := r.byID[s.ID]; !ok {
		return domain.ErrShipmentNotFound
	}
	r.byID[s.ID] = cloneShipment(s)
	return nil
}

func (r *stubShipmentRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

// ---------------------------------------------------------------------------
// Counting stub cache
// ---------------------------------------------------------------------------

type stubCache struct {
	entries       map[string]*domain.Shipment
	sets, gets    int
	invalidations int
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string]*domain.Shipment)}
}

func (c *stubCache) Get(_ context.Context, tn string) (*domain.Shipment, error) {
	c.gets++
	s, ok := c.entries[tn]
	if !ok {
		return nil, nil
	}
	return cloneShipment(s), nil
}

func (c *stubCache) Set(_ context.Context, s *domain.Shipment) error {
	c.sets++
	c.entries[s.TrackingNumber] = cloneShipment(s)
	return nil
}

func (c *stubCache) Invalidate(_ context.Context, tn string) error {
	c.invalidations++
	delete(c.entries, tn)
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

func newTestService() (*ShipmentService, *stubShipmentRepo) {
	repo := newStubShipmentRepo()
	return NewShipmentService(repo, nil, discardLogger), repo
}

func minimalInput() ports.CreateShipmentInput {
	return ports.CreateShipmentInput{
		Customer:    "X",
		Email:       "x@example.com",
		Origin:      "LA",
		Destination: "NYC",
		Service:     "freight",
		Weight:      "120kg",
	}
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestShipmentService_Create_Defaults(t *testing.T) {
	svc, _ := newTestService()

	s, err := svc.Create(context.Background(), minimalInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(s.TrackingNumber, "SC") {
		t.Errorf("tracking number format wrong: %s", s.TrackingNumber)
	}
	if s.Status != domain.StatusCreated {
		t.Errorf("expected status %q, got %q", domain.StatusCreated, s.Status)
	}
	if len(s.Events) != 1 {
		t.Fatalf("expected 1 seeded event, got %d", len(s.Events))
	}
	if s.Events[0].Status != domain.StatusCreated {
		t.Errorf("seeded event status: got %q", s.Events[0].Status)
	}
	if s.Events[0].Location != "LA" {
		t.Errorf("seeded event must sit at origin, got %q", s.Events[0].Location)
	}
	if s.Events[0].ID == "" {
		t.Error("seeded event must have an id")
	}
	if s.CreatedAt.IsZero() || !s.CreatedAt.Equal(s.UpdatedAt) {
		t.Errorf("expected createdAt == updatedAt, got %v / %v", s.CreatedAt, s.UpdatedAt)
	}
}

func TestShipmentService_Create_SuppliedEventsKept(t *testing.T) {
	svc, _ := newTestService()

	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	input := minimalInput()
	input.Status = "Queued"
	input.Events = []ports.EventInput{
		{Status: "Queued", Location: "Dock 4", Time: ts},
		{Status: "Created", Location: "LA", Time: ts.Add(-time.Hour)},
	}

	s, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Status != "Queued" {
		t.Errorf("supplied status must win, got %q", s.Status)
	}
	if len(s.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(s.Events))
	}
	if s.Events[0].Status != "Queued" || s.Events[1].Status != "Created" {
		t.Errorf("event order must be preserved as supplied: %+v", s.Events)
	}
	if s.Events[0].ID == "" || s.Events[1].ID == "" {
		t.Error("events without ids must be assigned one")
	}
}

// ---------------------------------------------------------------------------
// AppendEvent
// ---------------------------------------------------------------------------

func TestShipmentService_AppendEvent_FrontInsertAndStatus(t *testing.T) {
	svc, _ := newTestService()
	created, _ := svc.Create(context.Background(), minimalInput())

	s, err := svc.AppendEvent(context.Background(), created.ID, ports.AppendEventInput{
		Status:   "Delivered",
		Location: "NYC",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Status != "Delivered" {
		t.Errorf("expected shipment status overwritten, got %q", s.Status)
	}
	if len(s.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(s.Events))
	}
	if s.Events[0].Status != "Delivered" || s.Events[0].Location != "NYC" {
		t.Errorf("newest event must be first: %+v", s.Events[0])
	}
	if s.Events[1].Status != domain.StatusCreated {
		t.Errorf("seeded event must remain second: %+v", s.Events[1])
	}
	if s.Events[0].Time.IsZero() {
		t.Error("event time must default to append time")
	}
	if s.UpdatedAt.Before(s.CreatedAt) {
		t.Error("updatedAt must not precede createdAt")
	}
}

func TestShipmentService_AppendEvent_NoStatusLeavesShipmentStatus(t *testing.T) {
	svc, _ := newTestService()
	created, _ := svc.Create(context.Background(), minimalInput())

	s, err := svc.AppendEvent(context.Background(), created.ID, ports.AppendEventInput{Location: "Phoenix"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Status != domain.StatusCreated {
		t.Errorf("shipment status must be untouched, got %q", s.Status)
	}
	if s.Events[0].Status != domain.StatusInTransit {
		t.Errorf("event status must default to %q, got %q", domain.StatusInTransit, s.Events[0].Status)
	}
}

func TestShipmentService_AppendEvent_UnknownShipment(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.AppendEvent(context.Background(), "missing", ports.AppendEventInput{Status: "X"})
	if !errors.Is(err, domain.ErrShipmentNotFound) {
		t.Fatalf("expected ErrShipmentNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// RemoveEvent
// ---------------------------------------------------------------------------

func TestShipmentService_RemoveEvent_PreservesOrderAndStatus(t *testing.T) {
	svc, _ := newTestService()
	created, _ := svc.Create(context.Background(), minimalInput())
	s1, _ := svc.AppendEvent(context.Background(), created.ID, ports.AppendEventInput{Status: "Picked Up"})
	s2, _ := svc.AppendEvent(context.Background(), created.ID, ports.AppendEventInput{Status: "Delivered"})

	// Remove the middle entry ("Picked Up").
	s, err := svc.RemoveEvent(context.Background(), created.ID, s1.Events[0].ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(s.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(s.Events))
	}
	if s.Events[0].ID != s2.Events[0].ID || s.Events[1].Status != domain.StatusCreated {
		t.Errorf("relative order must be preserved: %+v", s.Events)
	}
	if s.Status != "Delivered" {
		t.Errorf("removal must never change shipment status, got %q", s.Status)
	}
}

func TestShipmentService_RemoveEvent_UnknownEventIsNoop(t *testing.T) {
	svc, _ := newTestService()
	created, _ := svc.Create(context.Background(), minimalInput())

	s, err := svc.RemoveEvent(context.Background(), created.ID, "NOSUCHEVENT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Events) != 1 || s.Events[0].ID != created.Events[0].ID {
		t.Errorf("ledger must be unchanged: %+v", s.Events)
	}
	if s.UpdatedAt.Before(created.UpdatedAt) {
		t.Error("updatedAt must still be refreshed")
	}
}

func TestShipmentService_RemoveEvent_UnknownShipment(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.RemoveEvent(context.Background(), "missing", "ev")
	if !errors.Is(err, domain.ErrShipmentNotFound) {
		t.Fatalf("expected ErrShipmentNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Patch
// ---------------------------------------------------------------------------

func strptr(s string) *string { return &s }

func TestShipmentService_Patch_ShallowMerge(t *testing.T) {
	svc, _ := newTestService()
	created, _ := svc.Create(context.Background(), minimalInput())

	s, err := svc.Patch(context.Background(), created.ID, ports.ShipmentPatch{
		Destination: strptr("Boston"),
		Status:      strptr("On Hold"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Destination != "Boston" || s.Status != "On Hold" {
		t.Errorf("patched fields not applied: %+v", s)
	}
	if s.Customer != "X" || s.Origin != "LA" {
		t.Errorf("unpatched fields must survive: %+v", s)
	}
	if s.TrackingNumber != created.TrackingNumber {
		t.Error("tracking number is immutable")
	}
	if !s.CreatedAt.Equal(created.CreatedAt) {
		t.Error("createdAt is immutable")
	}
	if s.UpdatedAt.Before(created.UpdatedAt) {
		t.Error("updatedAt must be refreshed")
	}
}

func TestShipmentService_Patch_OverwritesEventsWholesale(t *testing.T) {
	svc, _ := newTestService()
	created, _ := svc.Create(context.Background(), minimalInput())

	events := []ports.EventInput{{Status: "Rewritten", Location: "Depot"}}
	s, err := svc.Patch(context.Background(), created.ID, ports.ShipmentPatch{Events: &events})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(s.Events) != 1 || s.Events[0].Status != "Rewritten" {
		t.Errorf("events must be replaced wholesale: %+v", s.Events)
	}
	if s.Status != domain.StatusCreated {
		t.Errorf("patching events must not derive a status, got %q", s.Status)
	}
}

func TestShipmentService_Patch_UnknownShipment(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Patch(context.Background(), "missing", ports.ShipmentPatch{Status: strptr("X")})
	if !errors.Is(err, domain.ErrShipmentNotFound) {
		t.Fatalf("expected ErrShipmentNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Track
// ---------------------------------------------------------------------------

func TestShipmentService_Track_CaseInsensitive(t *testing.T) {
	svc, _ := newTestService()
	created, _ := svc.Create(context.Background(), minimalInput())

	s, err := svc.Track(context.Background(), strings.ToLower(created.TrackingNumber))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.ID != created.ID {
		t.Errorf("expected shipment %s, got %s", created.ID, s.ID)
	}
}

func TestShipmentService_Track_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Track(context.Background(), "SCNOPE")
	if !errors.Is(err, domain.ErrShipmentNotFound) {
		t.Fatalf("expected ErrShipmentNotFound, got %v", err)
	}
}

func TestShipmentService_Track_ServedFromCache(t *testing.T) {
	repo := newStubShipmentRepo()
	cache := newStubCache()
	svc := NewShipmentService(repo, cache, discardLogger)

	created, _ := svc.Create(context.Background(), minimalInput())

	if _, err := svc.Track(context.Background(), created.TrackingNumber); err != nil {
		t.Fatalf("first lookup: %v", err)
	}
	if _, err := svc.Track(context.Background(), created.TrackingNumber); err != nil {
		t.Fatalf("second lookup: %v", err)
	}

	if repo.findCalls != 1 {
		t.Errorf("expected 1 store lookup, got %d", repo.findCalls)
	}
	if cache.sets != 1 {
		t.Errorf("expected 1 cache fill, got %d", cache.sets)
	}
}

func TestShipmentService_Mutation_InvalidatesCache(t *testing.T) {
	repo := newStubShipmentRepo()
	cache := newStubCache()
	svc := NewShipmentService(repo, cache, discardLogger)

	created, _ := svc.Create(context.Background(), minimalInput())
	_, _ = svc.Track(context.Background(), created.TrackingNumber)

	if _, err := svc.AppendEvent(context.Background(), created.ID, ports.AppendEventInput{Status: "Delivered"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	s, err := svc.Track(context.Background(), created.TrackingNumber)
	if err != nil {
		t.Fatalf("lookup after append: %v", err)
	}
	if s.Status != "Delivered" {
		t.Errorf("cache must not serve stale status, got %q", s.Status)
	}
	if cache.invalidations == 0 {
		t.Error("mutation must invalidate the cache")
	}
}

// ---------------------------------------------------------------------------
// Delete / List
// ---------------------------------------------------------------------------

func TestShipmentService_Delete_Idempotent(t *testing.T) {
	svc, _ := newTestService()
	created, _ := svc.Create(context.Background(), minimalInput())

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("second delete must be a no-op: %v", err)
	}

	_, err := svc.Get(context.Background(), created.ID)
	if !errors.Is(err, domain.ErrShipmentNotFound) {
		t.Fatalf("expected ErrShipmentNotFound after delete, got %v", err)
	}
}

func TestShipmentService_List_NewestFirst(t *testing.T) {
	repo := newStubShipmentRepo()
	svc := NewShipmentService(repo, nil, discardLogger)

	old := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, _ = repo.Insert(context.Background(), &domain.Shipment{
			TrackingNumber: fmt.Sprintf("SCLIST%d", i),
			CreatedAt:      old.Add(time.Duration(i) * time.Hour),
		})
	}

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 shipments, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i].CreatedAt.After(list[i-1].CreatedAt) {
			t.Fatalf("list not sorted newest first: %v then %v", list[i-1].CreatedAt, list[i].CreatedAt)
		}
	}
}
