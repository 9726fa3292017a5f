// Package fixtures supplies the static therapist and exercise catalogs from
// JSON files, falling back to the copies embedded in the binary.
package fixtures

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/mazag-backend/internal/config"
	"github.com/heartmarshall/mazag-backend/internal/domain"
)

//go:embed data/*.json
var embedded embed.FS

const (
	therapistsFile = "data/therapists.json"
	exercisesFile  = "data/exercises.json"
)

// Source loads the catalog. Empty paths select the embedded fixtures.
type Source struct {
	therapistsPath string
	exercisesPath  string
	log            *slog.Logger
}

func NewSource(cfg config.CatalogConfig, logger *slog.Logger) *Source {
	return &Source{
		therapistsPath: cfg.TherapistsPath,
		exercisesPath:  cfg.ExercisesPath,
		log:            logger.With("adapter", "fixtures"),
	}
}

// Load reads both collections concurrently.
func (s *Source) Load(ctx context.Context) (*domain.Catalog, error) {
	var cat domain.Catalog

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var raw []domain.Therapist
		if err := s.read(ctx, s.therapistsPath, therapistsFile, &raw); err != nil {
			return err
		}
		cat.Therapists = s.cleanTherapists(raw)
		return nil
	})
	g.Go(func() error {
		var raw []domain.Exercise
		if err := s.read(ctx, s.exercisesPath, exercisesFile, &raw); err != nil {
			return err
		}
		cat.Exercises = s.cleanExercises(raw)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "catalog loaded",
		slog.Int("therapists", len(cat.Therapists)),
		slog.Int("exercises", len(cat.Exercises)),
	)
	return &cat, nil
}

func (s *Source) read(ctx context.Context, path, fallback string, dst any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if path != "" {
		data, err = os.ReadFile(path)
	} else {
		path = "embedded:" + fallback
		data, err = embedded.ReadFile(fallback)
	}
	if err != nil {
		return fmt.Errorf("fixtures: read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("fixtures: decode %s: %w: %w", path, domain.ErrMalformed, err)
	}
	return nil
}

// cleanTherapists drops records without an id or with a repeated id and
// clamps ratings into [0,5] with one decimal.
func (s *Source) cleanTherapists(raw []domain.Therapist) []domain.Therapist {
	out := make([]domain.Therapist, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for i, t := range raw {
		if !s.keep(t.ID, i, "therapist", seen) {
			continue
		}
		if t.Rating != nil {
			r := domain.ClampRating(*t.Rating)
			t.Rating = &r
		}
		out = append(out, t)
	}
	return out
}

func (s *Source) cleanExercises(raw []domain.Exercise) []domain.Exercise {
	out := make([]domain.Exercise, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for i, e := range raw {
		if !s.keep(e.ID, i, "exercise", seen) {
			continue
		}
		if e.Category != "" && !e.Category.IsValid() {
			s.log.Warn("unknown exercise category", slog.String("id", e.ID), slog.String("category", e.Category.String()))
		}
		out = append(out, e)
	}
	return out
}

func (s *Source) keep(id string, idx int, kind string, seen map[string]struct{}) bool {
	if id == "" {
		s.log.Warn("skipping record without id", slog.String("kind", kind), slog.Int("index", idx))
		return false
	}
	if _, dup := seen[id]; dup {
		s.log.Warn("skipping duplicate record", slog.String("kind", kind), slog.String("id", id))
		return false
	}
	seen[id] = struct{}{}
	return true
}
