package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/mazag-backend/internal/domain"
	"golang.org/x/sync/singleflight"
)

type catalogSource interface {
	Load(ctx context.Context) (*domain.Catalog, error)
}

// CacheConfig sizes the filtered-result caches.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

type snapshot struct {
	catalog    domain.Catalog
	therapists map[string]int
	exercises  map[string]int
	options    FilterOptions
}

// Service serves the therapist and exercise catalogs. It owns the loaded
// snapshot and a result cache; Invalidate drops both.
type Service struct {
	source catalogSource
	log    *slog.Logger

	mu         sync.RWMutex
	snap       *snapshot
	generation uint64
	loads      singleflight.Group

	therapistResults *resultCache[domain.Therapist]
	exerciseResults  *resultCache[domain.Exercise]
}

// NewService creates a new catalog service.
func NewService(log *slog.Logger, source catalogSource, cfg CacheConfig) *Service {
	return newService(log, source, cfg, time.Now)
}

func newService(log *slog.Logger, source catalogSource, cfg CacheConfig, now func() time.Time) *Service {
	return &Service{
		source:           source,
		log:              log.With("service", "catalog"),
		therapistResults: newResultCache[domain.Therapist](cfg.Size, cfg.TTL, now),
		exerciseResults:  newResultCache[domain.Exercise](cfg.Size, cfg.TTL, now),
	}
}

// Warm loads the catalog eagerly so the first request does not pay for it.
func (s *Service) Warm(ctx context.Context) error {
	_, _, err := s.current(ctx)
	return err
}

// Invalidate drops the loaded catalog and every cached result.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.snap = nil
	s.generation++
	s.mu.Unlock()

	s.therapistResults.purge()
	s.exerciseResults.purge()
	s.log.Info("catalog invalidated")
}

// Therapists filters the therapist catalog. c.Search is the free-text query.
func (s *Service) Therapists(ctx context.Context, c domain.FilterCriteria) ([]domain.Therapist, error) {
	snap, gen, err := s.current(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.Therapists: %w", err)
	}
	return filterCached(s.therapistResults, gen, snap.catalog.Therapists, c), nil
}

// Exercises filters the exercise catalog. c.Search is the free-text query.
func (s *Service) Exercises(ctx context.Context, c domain.FilterCriteria) ([]domain.Exercise, error) {
	snap, gen, err := s.current(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.Exercises: %w", err)
	}
	return filterCached(s.exerciseResults, gen, snap.catalog.Exercises, c), nil
}

// Therapist returns a single therapist by id.
func (s *Service) Therapist(ctx context.Context, id string) (*domain.Therapist, error) {
	snap, _, err := s.current(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.Therapist: %w", err)
	}
	idx, ok := snap.therapists[id]
	if !ok {
		return nil, fmt.Errorf("catalog.Therapist: therapist %q: %w", id, domain.ErrNotFound)
	}
	t := snap.catalog.Therapists[idx]
	return &t, nil
}

// Exercise returns a single exercise by id.
func (s *Service) Exercise(ctx context.Context, id string) (*domain.Exercise, error) {
	snap, _, err := s.current(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.Exercise: %w", err)
	}
	idx, ok := snap.exercises[id]
	if !ok {
		return nil, fmt.Errorf("catalog.Exercise: exercise %q: %w", id, domain.ErrNotFound)
	}
	e := snap.catalog.Exercises[idx]
	return &e, nil
}

// TherapistFilterOptions returns the values a therapist filter can take.
func (s *Service) TherapistFilterOptions(ctx context.Context) (*FilterOptions, error) {
	snap, _, err := s.current(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.TherapistFilterOptions: %w", err)
	}
	opts := snap.options.clone()
	return &opts, nil
}

// RecommendedTherapists returns therapists whose specialization is one of
// specializations, in catalog order.
func (s *Service) RecommendedTherapists(ctx context.Context, specializations []string) ([]domain.Therapist, error) {
	if len(specializations) == 0 {
		return []domain.Therapist{}, nil
	}
	c := domain.FilterCriteria{}
	for _, spec := range specializations {
		c = c.AddFilterValue(domain.FilterFieldSpecialization, spec)
	}
	return s.Therapists(ctx, c)
}

// current returns the loaded snapshot, loading it once when absent.
func (s *Service) current(ctx context.Context) (*snapshot, uint64, error) {
	s.mu.RLock()
	snap, gen := s.snap, s.generation
	s.mu.RUnlock()
	if snap != nil {
		return snap, gen, nil
	}

	// The load is shared by every waiting caller, so one caller's
	// cancellation must not fail the others.
	loadCtx := context.WithoutCancel(ctx)
	v, err, _ := s.loads.Do("catalog", func() (any, error) {
		cat, err := s.source.Load(loadCtx)
		if err != nil {
			return nil, err
		}
		loaded := newSnapshot(*cat)

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.generation == gen {
			s.snap = loaded
		}
		s.log.Info("catalog loaded",
			slog.Int("therapists", len(cat.Therapists)),
			slog.Int("exercises", len(cat.Exercises)),
		)
		return loaded, nil
	})
	if err != nil {
		s.log.ErrorContext(ctx, "catalog load failed", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("load catalog: %w", err)
	}
	return v.(*snapshot), gen, nil
}

func newSnapshot(cat domain.Catalog) *snapshot {
	snap := &snapshot{
		catalog:    cat,
		therapists: make(map[string]int, len(cat.Therapists)),
		exercises:  make(map[string]int, len(cat.Exercises)),
		options:    buildOptions(cat),
	}
	for i, t := range cat.Therapists {
		snap.therapists[t.ID] = i
	}
	for i, e := range cat.Exercises {
		snap.exercises[e.ID] = i
	}
	return snap
}

func filterCached[T Filterable](cache *resultCache[T], gen uint64, items []T, c domain.FilterCriteria) []T {
	key := fmt.Sprintf("%d|%s", gen, c.Key())
	if cached, ok := cache.get(key); ok {
		return clone(cached)
	}
	result := Filter(items, c.Search, c)
	cache.put(key, result)
	return clone(result)
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
