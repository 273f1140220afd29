package repository

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"medistay/internal/domains/location/model"
)

//go:embed locations.json
var dataset []byte

// Entry is one city flattened out of the country → state → cities dataset,
// with folded search keys precomputed at load time. Codes are the ISO 3166
// identifiers carried alongside the display names.
type Entry struct {
	City        string
	State       string
	StateCode   string
	Country     string
	CountryCode string

	CityKey    string
	StateKey   string
	CountryKey string
}

type countryRecord struct {
	Name   string                 `json:"name"`
	States map[string]stateRecord `json:"states"`
}

type stateRecord struct {
	Name   string   `json:"name"`
	Cities []string `json:"cities"`
}

type Location interface {
	Entries() []Entry
}

type repositoryImpl struct {
	once    sync.Once
	entries []Entry
	loadErr error
}

func New() (Location, error) {
	repo := &repositoryImpl{}
	if err := repo.load(); err != nil {
		return nil, err
	}

	return repo, nil
}

func (r *repositoryImpl) load() error {
	r.once.Do(func() {
		raw := map[string]countryRecord{}
		if err := json.Unmarshal(dataset, &raw); err != nil {
			r.loadErr = fmt.Errorf("failed to decode embedded location dataset: %w", err)

			return
		}

		for countryCode, country := range raw {
			for stateCode, state := range country.States {
				for _, city := range state.Cities {
					r.entries = append(r.entries, Entry{
						City:        city,
						State:       state.Name,
						StateCode:   stateCode,
						Country:     country.Name,
						CountryCode: countryCode,
						CityKey:     model.Fold(city),
						StateKey:    model.Fold(state.Name),
						CountryKey:  model.Fold(country.Name),
					})
				}
			}
		}

		sort.Slice(r.entries, func(i, j int) bool {
			if r.entries[i].Country != r.entries[j].Country {
				return r.entries[i].Country < r.entries[j].Country
			}
			if r.entries[i].State != r.entries[j].State {
				return r.entries[i].State < r.entries[j].State
			}

			return r.entries[i].City < r.entries[j].City
		})
	})

	return r.loadErr
}

func (r *repositoryImpl) Entries() []Entry {
	return r.entries
}
