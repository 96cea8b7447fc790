package queries_test

import (
	"testing"

	"deliveryquery/internal/core/application/usecases/queries"
	"deliveryquery/internal/core/domain/model/delivery"
	"deliveryquery/internal/core/domain/services"
	"deliveryquery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetClientDeliveriesQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		query, err := queries.NewGetClientDeliveriesQuery("client-1")

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, "client-1", query.ClientID())
	})

	t.Run("empty client", func(t *testing.T) {
		_, err := queries.NewGetClientDeliveriesQuery("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("not constructed via constructor", func(t *testing.T) {
		query := queries.GetClientDeliveriesQuery{}

		require.ErrorIs(t, query.Validate(), queries.ErrGetClientDeliveriesQueryIsNotConstructed)
	})
}

func TestNewGetDeliveriesByCityAndTypeQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		query, err := queries.NewGetDeliveriesByCityAndTypeQuery("Kyiv", delivery.Express)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, "Kyiv", query.CityName())
		assert.Equal(t, delivery.Express, query.DeliveryType())
	})

	t.Run("reports every invalid parameter", func(t *testing.T) {
		_, err := queries.NewGetDeliveriesByCityAndTypeQuery("", delivery.UnknownType)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("not constructed via constructor", func(t *testing.T) {
		query := queries.GetDeliveriesByCityAndTypeQuery{}

		require.ErrorIs(t, query.Validate(), queries.ErrGetDeliveriesByCityAndTypeQueryIsNotConstructed)
	})
}

func TestNewGetDeliveriesPageQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		page, _ := services.NewPage(10, 3)

		query, err := queries.NewGetDeliveriesPageQuery(page, true, false)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, page, query.Page())
		assert.True(t, query.OnlyPaid())
		assert.False(t, query.OnlyNotFinished())
	})

	t.Run("invalid page", func(t *testing.T) {
		_, err := queries.NewGetDeliveriesPageQuery(services.Page{CountOnPage: 10}, false, false)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("not constructed via constructor", func(t *testing.T) {
		query := queries.GetDeliveriesPageQuery{}

		require.ErrorIs(t, query.Validate(), queries.ErrGetDeliveriesPageQueryIsNotConstructed)
	})
}

func TestNewGetDeliveryStatisticsQuery(t *testing.T) {
	require.NoError(t, queries.NewGetDeliveryStatisticsQuery().Validate())

	query := queries.GetDeliveryStatisticsQuery{}
	require.ErrorIs(t, query.Validate(), queries.ErrGetDeliveryStatisticsQueryIsNotConstructed)
}
