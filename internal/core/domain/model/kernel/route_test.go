package kernel_test

import (
	"testing"

	"deliveryquery/internal/core/domain/model/kernel"
	"deliveryquery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoute(t *testing.T) {
	t.Run("should create route with valid cities", func(t *testing.T) {
		route, err := kernel.NewRoute("Kyiv", "Lviv")

		require.NoError(t, err)
		require.NoError(t, route.Validate())
		assert.Equal(t, "Kyiv", route.StartCity())
		assert.Equal(t, "Lviv", route.EndCity())
		assert.Equal(t, "Kyiv -> Lviv", route.String())
	})

	t.Run("should allow same start and end city", func(t *testing.T) {
		route, err := kernel.NewRoute("Odesa", "Odesa")

		require.NoError(t, err)
		assert.Equal(t, route.StartCity(), route.EndCity())
	})

	testCases := []struct {
		name      string
		startCity string
		endCity   string
		params    []string
	}{
		{"empty start city", "", "Lviv", []string{"startCity"}},
		{"empty end city", "Kyiv", "", []string{"endCity"}},
		{"both cities empty", "", "", []string{"startCity", "endCity"}},
	}

	for _, tc := range testCases {
		t.Run("should reject "+tc.name, func(t *testing.T) {
			route, err := kernel.NewRoute(tc.startCity, tc.endCity)

			require.ErrorIs(t, err, errs.ErrValueIsRequired)
			for _, param := range tc.params {
				assert.Contains(t, err.Error(), param)
			}
			require.ErrorIs(t, route.Validate(), kernel.ErrRouteIsNotConstructed)
		})
	}
}

func TestRoute_Equality(t *testing.T) {
	kyivLviv, _ := kernel.NewRoute("Kyiv", "Lviv")
	sameKyivLviv, _ := kernel.NewRoute("Kyiv", "Lviv")
	lvivKyiv, _ := kernel.NewRoute("Lviv", "Kyiv")
	lowerKyivLviv, _ := kernel.NewRoute("kyiv", "Lviv")

	t.Run("should be equal for same direction", func(t *testing.T) {
		assert.True(t, kyivLviv.IsEqual(sameKyivLviv))
		assert.Equal(t, kyivLviv, sameKyivLviv)
	})

	t.Run("should differ for reversed direction", func(t *testing.T) {
		assert.False(t, kyivLviv.IsEqual(lvivKyiv))
	})

	t.Run("should compare city names case-sensitively", func(t *testing.T) {
		assert.False(t, kyivLviv.IsEqual(lowerKyivLviv))
	})

	t.Run("should work as map key", func(t *testing.T) {
		counts := map[kernel.Route]int{}
		counts[kyivLviv]++
		counts[sameKyivLviv]++
		counts[lvivKyiv]++

		assert.Len(t, counts, 2)
		assert.Equal(t, 2, counts[kyivLviv])
	})
}

func TestRoute_StartsIn(t *testing.T) {
	route, _ := kernel.NewRoute("Kyiv", "Lviv")

	assert.True(t, route.StartsIn("Kyiv"))
	assert.False(t, route.StartsIn("Lviv"))
	assert.False(t, route.StartsIn("KYIV"))
}
