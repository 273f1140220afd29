package service

import (
	"context"
	"sort"
	"strings"
	"sync"

	"medistay/infras/otel"
	"medistay/internal/domains/location/model"
	"medistay/internal/domains/location/repository"
	"medistay/shared/constant"
)

const maxCandidates = 10

// Match weights, summed per entry and sorted descending. A city hit always
// outranks any combination of state and country hits.
const (
	scoreCityExact     = 100
	scoreCityPrefix    = 80
	scoreCitySubstring = 60

	scoreStateExact     = 40
	scoreStatePrefix    = 30
	scoreStateSubstring = 20

	scoreCountryExact     = 10
	scoreCountryPrefix    = 5
	scoreCountrySubstring = 1
)

type Location interface {
	Filter(ctx context.Context, query string) []model.Candidate
}

type serviceImpl struct {
	repo repository.Location
	otel otel.Otel
}

func New(repo repository.Location, otel otel.Otel) Location {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Filter(ctx context.Context, query string) []model.Candidate {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Filter")
	defer scope.End()

	key := model.Fold(strings.TrimSpace(query))
	if key == constant.Empty {
		return []model.Candidate{}
	}

	candidates := []model.Candidate{}

	for _, entry := range s.repo.Entries() {
		score := scoreField(entry.CityKey, key, scoreCityExact, scoreCityPrefix, scoreCitySubstring) +
			scoreField(entry.StateKey, key, scoreStateExact, scoreStatePrefix, scoreStateSubstring) +
			scoreField(entry.CountryKey, key, scoreCountryExact, scoreCountryPrefix, scoreCountrySubstring)

		if score == 0 {
			continue
		}

		candidates = append(candidates, model.Candidate{
			City:        entry.City,
			State:       entry.State,
			StateCode:   entry.StateCode,
			Country:     entry.Country,
			CountryCode: entry.CountryCode,
			Score:       score,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}

	return candidates
}

func scoreField(field, key string, exact, prefix, substring int) int {
	switch {
	case field == key:
		return exact
	case strings.HasPrefix(field, key):
		return prefix
	case strings.Contains(field, key):
		return substring
	default:
		return 0
	}
}

// Session serializes concurrent lookups for one caller: every Search bumps a
// generation counter and a result is only delivered when its generation is
// still the latest, so a slow stale lookup can never overwrite a newer one.
type Session struct {
	service Location

	mu  sync.Mutex
	gen uint64
}

func NewSession(service Location) *Session {
	return &Session{service: service}
}

func (s *Session) Search(ctx context.Context, query string, deliver func([]model.Candidate)) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	candidates := s.service.Filter(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return
	}

	deliver(candidates)
}
