package rest

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/heartmarshall/mazag-backend/internal/domain"
	"github.com/heartmarshall/mazag-backend/internal/service/catalog"
)

type catalogService interface {
	Therapists(ctx context.Context, c domain.FilterCriteria) ([]domain.Therapist, error)
	Exercises(ctx context.Context, c domain.FilterCriteria) ([]domain.Exercise, error)
	Therapist(ctx context.Context, id string) (*domain.Therapist, error)
	Exercise(ctx context.Context, id string) (*domain.Exercise, error)
	TherapistFilterOptions(ctx context.Context) (*catalog.FilterOptions, error)
}

// CatalogHandler serves therapist and exercise browsing.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

type listResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// Therapists handles GET /therapists.
func (h *CatalogHandler) Therapists(w http.ResponseWriter, r *http.Request) {
	criteria, err := therapistCriteria(r.URL.Query())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items, err := h.svc.Therapists(r.Context(), criteria)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse[domain.Therapist]{Items: items, Total: len(items)})
}

// TherapistOptions handles GET /therapists/options.
func (h *CatalogHandler) TherapistOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := h.svc.TherapistFilterOptions(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, opts)
}

// Therapist handles GET /therapists/{id}.
func (h *CatalogHandler) Therapist(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.Therapist(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, t)
}

// Exercises handles GET /exercises. Exercises carry no rating, so minRating
// is not read here.
func (h *CatalogHandler) Exercises(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	actions := []domain.FilterAction{domain.Search{Query: q.Get("q")}}
	for _, c := range q["category"] {
		actions = append(actions, domain.AddValue{Field: domain.FilterFieldSpecialization, Value: c})
	}
	criteria := domain.FilterCriteria{}.Reduce(actions...)

	items, err := h.svc.Exercises(r.Context(), criteria)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse[domain.Exercise]{Items: items, Total: len(items)})
}

// Exercise handles GET /exercises/{id}.
func (h *CatalogHandler) Exercise(w http.ResponseWriter, r *http.Request) {
	e, err := h.svc.Exercise(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, e)
}

// therapistCriteria builds filter criteria from query parameters. Multi-value
// parameters repeat (?language=English&language=Arabic). A price range with
// only one bound is open on the other side.
func therapistCriteria(q url.Values) (domain.FilterCriteria, error) {
	actions := []domain.FilterAction{domain.Search{Query: q.Get("q")}}

	multi := []struct {
		param string
		field domain.FilterField
	}{
		{"specialization", domain.FilterFieldSpecialization},
		{"language", domain.FilterFieldLanguage},
		{"gender", domain.FilterFieldGender},
		{"ageGroup", domain.FilterFieldAgeGroup},
	}
	for _, m := range multi {
		for _, v := range q[m.param] {
			actions = append(actions, domain.AddValue{Field: m.field, Value: v})
		}
	}

	var errs []domain.FieldError
	minPrice, hasMin, err := parseFloatParam(q, "minPrice")
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "minPrice", Message: "must be a number"})
	}
	maxPrice, hasMax, err := parseFloatParam(q, "maxPrice")
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "maxPrice", Message: "must be a number"})
	}
	minRating, hasRating, err := parseFloatParam(q, "minRating")
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "minRating", Message: "must be a number"})
	}
	if len(errs) > 0 {
		return domain.FilterCriteria{}, domain.NewValidationErrors(errs)
	}

	if hasMin || hasMax {
		if !hasMax {
			maxPrice = math.MaxFloat64
		}
		actions = append(actions, domain.SetRange{Range: &domain.PriceRange{Min: minPrice, Max: maxPrice}})
	}
	if hasRating {
		actions = append(actions, domain.SetRating{Min: &minRating})
	}

	return domain.FilterCriteria{}.Reduce(actions...), nil
}

func parseFloatParam(q url.Values, name string) (float64, bool, error) {
	raw := q.Get(name)
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, domain.ErrValidation
	}
	return v, true, nil
}
