package guard_test

import (
	"errors"
	"testing"

	"dronedash/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_with_nil_error_returns_default", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsagePattern demonstrates the intended embedding pattern
// with a domain-style value object.
func TestConstructorGuardUsagePattern(t *testing.T) {
	errTagNotConstructed := errors.New("Tag must be created via newTag")

	type Tag struct {
		value string
		guard guard.ConstructorGuard
	}

	newTag := func(value string) (Tag, error) {
		if value == "" {
			return Tag{}, errors.New("value is required")
		}
		return Tag{value: value, guard: guard.NewConstructorGuard()}, nil
	}

	validateTag := func(tag Tag) error {
		return tag.guard.Validate(errTagNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		tag, err := newTag("express")

		require.NoError(t, err)
		require.NoError(t, validateTag(tag))
		assert.Equal(t, "express", tag.value)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var tag Tag // zero value

		err := validateTag(tag)

		require.Error(t, err)
		assert.Equal(t, errTagNotConstructed, err)
	})
}
