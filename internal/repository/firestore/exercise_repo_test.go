package firestore

import (
	"testing"
	"time"

	"alcyxob/exercise-catalog/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestDocID(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Bench Press", "bench press"},
		{"  Push-up ", "push-up"},
		{"Clean/Jerk", "clean-jerk"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, docID(tt.name))
	}
}

func TestDocumentConversion(t *testing.T) {
	ex := domain.Exercise{
		Name:           "Push-up",
		Category:       "strength",
		PrimaryMuscles: []string{"chest"},
		Description:    "bodyweight press",
	}

	doc := toDocument(3, ex, time.Now())
	assert.Equal(t, 3, doc.Position)
	assert.NotNil(t, doc.Equipment)
	assert.NotNil(t, doc.SecondaryMuscles)

	back := doc.toDomain()
	assert.Equal(t, ex.Name, back.Name)
	assert.Equal(t, ex.PrimaryMuscles, back.PrimaryMuscles)
	assert.Equal(t, []string{}, back.Equipment)
	assert.Equal(t, "bodyweight press", back.Description)
}
