package guard_test

import (
	"errors"
	"testing"

	"deliveryquery/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("test object not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}

type cargoLabel struct {
	value string
	guard guard.ConstructorGuard
}

var errCargoLabelIsNotConstructed = errors.New("cargoLabel must be created via newCargoLabel")

func newCargoLabel(value string) (cargoLabel, error) {
	if value == "" {
		return cargoLabel{}, errors.New("label is required")
	}
	return cargoLabel{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (l cargoLabel) Validate() error {
	return l.guard.Validate(errCargoLabelIsNotConstructed)
}

func TestConstructorGuardUsageExample(t *testing.T) {
	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		label, err := newCargoLabel("fragile")

		require.NoError(t, err)
		require.NoError(t, label.Validate())
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		label := cargoLabel{value: "fragile"}

		require.ErrorIs(t, label.Validate(), errCargoLabelIsNotConstructed)
	})

	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		label, _ := newCargoLabel("bulk")
		copied := label

		require.NoError(t, copied.Validate())
	})
}
