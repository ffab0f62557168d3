package onboarding_test

import (
	"errors"
	"testing"
	"time"

	"school-onboarding/feature/onboarding"

	"github.com/stretchr/testify/assert"
)

func TestKeyOfNormalization(t *testing.T) {
	t.Run("NumericTypesCollapse", func(t *testing.T) {
		// Sheet cells, Go values and driver scans spell the same number
		// differently; the key must not care.
		assert.Equal(t, onboarding.KeyOf(5, "A"), onboarding.KeyOf(int64(5), "A"))
		assert.Equal(t, onboarding.KeyOf(5, "A"), onboarding.KeyOf(float64(5), "A"))
		assert.Equal(t, onboarding.KeyOf(5, "A"), onboarding.KeyOf(uint32(5), "A"))
	})

	t.Run("DatesCollapseToDayPrecision", func(t *testing.T) {
		day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, onboarding.KeyOf(1, day), onboarding.KeyOf(1, "2024-01-10 00:00:00+00:00"))
		assert.Equal(t, onboarding.KeyOf(1, day), onboarding.KeyOf(1, "2024-01-10 15:30:00"))
		assert.Equal(t, onboarding.KeyOf(1, day), onboarding.KeyOf(1, []byte("2024-01-10 00:00:00+00:00")))
	})

	t.Run("PlainStringsPassThrough", func(t *testing.T) {
		// A numeric-looking string part must not be mistaken for a date.
		assert.Equal(t, onboarding.KeyOf("Monday", 5), onboarding.KeyOf("Monday", "5"))
		assert.NotEqual(t, onboarding.KeyOf("Grade 1"), onboarding.KeyOf("Grade 2"))
	})

	t.Run("TupleBoundariesPreserved", func(t *testing.T) {
		assert.NotEqual(t, onboarding.KeyOf("ab", "c"), onboarding.KeyOf("a", "bc"))
	})
}

func TestOptionalKey(t *testing.T) {
	assert.Nil(t, onboarding.OptionalKey(false, 1, "Maths"))

	k := onboarding.OptionalKey(true, 1, "Maths")
	assert.NotNil(t, k)
	assert.Equal(t, onboarding.KeyOf(1, "Maths"), *k)
}

func TestResolver(t *testing.T) {
	r := onboarding.NewResolver()

	t.Run("ResolveUnknown", func(t *testing.T) {
		_, err := r.Resolve(onboarding.EntityGrade, onboarding.KeyOf(1, "Grade 9"))
		assert.Error(t, err)

		var unresolved *onboarding.UnresolvedReferenceError
		assert.True(t, errors.As(err, &unresolved))
		assert.Equal(t, onboarding.EntityGrade, unresolved.Entity)
	})

	t.Run("RegisterAndResolve", func(t *testing.T) {
		r.Register(onboarding.EntityGrade, onboarding.KeyOf(1, "Grade 1"), 42)

		id, err := r.Resolve(onboarding.EntityGrade, onboarding.KeyOf(1, "Grade 1"))
		assert.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("RegisterIsIdempotent", func(t *testing.T) {
		r.Register(onboarding.EntityGrade, onboarding.KeyOf(1, "Grade 1"), 42)
		r.Register(onboarding.EntityGrade, onboarding.KeyOf(1, "Grade 1"), 42)
		assert.Equal(t, 1, r.Len(onboarding.EntityGrade))
	})

	t.Run("EntitiesAreScoped", func(t *testing.T) {
		// The same key under a different entity stays unknown.
		_, err := r.Resolve(onboarding.EntitySection, onboarding.KeyOf(1, "Grade 1"))
		assert.Error(t, err)
	})

	t.Run("ResolveOptional", func(t *testing.T) {
		id, err := r.ResolveOptional(onboarding.EntityGrade, nil)
		assert.NoError(t, err)
		assert.Nil(t, id)

		k := onboarding.KeyOf(1, "Grade 1")
		id, err = r.ResolveOptional(onboarding.EntityGrade, &k)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), id)

		missing := onboarding.KeyOf(1, "Grade 9")
		_, err = r.ResolveOptional(onboarding.EntityGrade, &missing)
		assert.Error(t, err)
	})
}
