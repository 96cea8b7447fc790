package cmd

import "deliveryquery/internal/core/domain/services"

// DefaultMaxCountOnPage caps the page size accepted by the page query.
const DefaultMaxCountOnPage = 10 * services.DefaultCountOnPage

type Config struct {
	// MaxCountOnPage is the largest page size the page query accepts.
	// Zero or negative disables the limit.
	MaxCountOnPage int
}

// DefaultConfig returns the configuration used when the caller has no preferences.
func DefaultConfig() Config {
	return Config{
		MaxCountOnPage: DefaultMaxCountOnPage,
	}
}
