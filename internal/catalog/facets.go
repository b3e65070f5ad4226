package catalog

import (
	"sort"

	"alcyxob/exercise-catalog/internal/domain"
)

// ExtractFacets collects the distinct categories, equipment items and primary
// muscles of the catalog. Each list is sorted ascending; empty values are skipped.
func ExtractFacets(exercises []domain.Exercise) domain.Facets {
	categories := newValueSet()
	equipment := newValueSet()
	muscles := newValueSet()

	for _, ex := range exercises {
		categories.add(ex.Category)
		for _, item := range ex.Equipment {
			equipment.add(item)
		}
		for _, m := range ex.PrimaryMuscles {
			muscles.add(m)
		}
	}

	return domain.Facets{
		Categories:     categories.sorted(),
		Equipment:      equipment.sorted(),
		PrimaryMuscles: muscles.sorted(),
	}
}

type valueSet map[string]struct{}

func newValueSet() valueSet {
	return make(valueSet)
}

func (s valueSet) add(v string) {
	if v == "" {
		return
	}
	s[v] = struct{}{}
}

func (s valueSet) sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
