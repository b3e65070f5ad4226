package catalog

import (
	"strings"

	"alcyxob/exercise-catalog/internal/domain"
)

// Filter returns the exercises of the catalog that satisfy every present
// criterion of the filter, in catalog order. It never returns nil.
func Filter(exercises []domain.Exercise, filter domain.SearchFilter) []domain.Exercise {
	result := make([]domain.Exercise, 0, len(exercises))
	if filter.IsEmpty() {
		return append(result, exercises...)
	}

	term := strings.ToLower(filter.Term())
	for _, ex := range exercises {
		if term != "" && !matchesTerm(ex, term) {
			continue
		}
		if filter.Category != "" && ex.Category != filter.Category {
			continue
		}
		if !containsAll(ex.Equipment, filter.Equipment) {
			continue
		}
		if filter.PrimaryMuscle != "" && !contains(ex.PrimaryMuscles, filter.PrimaryMuscle) {
			continue
		}
		result = append(result, ex)
	}

	return result
}

// matchesTerm checks the lower-cased term against the name, muscles and equipment.
func matchesTerm(ex domain.Exercise, term string) bool {
	if strings.Contains(strings.ToLower(ex.Name), term) {
		return true
	}
	for _, group := range [][]string{ex.PrimaryMuscles, ex.SecondaryMuscles, ex.Equipment} {
		for _, v := range group {
			if strings.Contains(strings.ToLower(v), term) {
				return true
			}
		}
	}
	return false
}

// containsAll reports whether every required item is present in have.
// An empty requirement always matches, even when have is empty too.
func containsAll(have, required []string) bool {
	for _, r := range required {
		if !contains(have, r) {
			return false
		}
	}
	return true
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
