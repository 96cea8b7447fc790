package queries

import (
	"errors"

	"deliveryquery/internal/pkg/errs"
	"deliveryquery/internal/pkg/guard"
)

var (
	ErrGetClientDeliveriesQueryIsNotConstructed = errors.New(
		"GetClientDeliveriesQuery must be created via NewGetClientDeliveriesQuery constructor",
	)
)

// GetClientDeliveriesQuery lists the deliveries booked by one client as short info.
//
// Example:
//
//	query, err := NewGetClientDeliveriesQuery("client-42")
//	if err != nil {
//	    return fmt.Errorf("invalid client: %w", err)
//	}
//
//	infos, err := handler.Handle(ctx, query)
//	for _, info := range infos {
//	    fmt.Printf("%s %s: %s -> %s\n", info.ID, info.Status, info.StartCity, info.EndCity)
//	}
type GetClientDeliveriesQuery struct {
	clientID string

	guard guard.ConstructorGuard
}

// NewGetClientDeliveriesQuery creates a query for the deliveries of clientID.
// Returns an error if clientID is empty.
func NewGetClientDeliveriesQuery(clientID string) (GetClientDeliveriesQuery, error) {
	if clientID == "" {
		return GetClientDeliveriesQuery{}, errs.NewValueIsRequiredError("clientID")
	}

	return GetClientDeliveriesQuery{
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetClientDeliveriesQueryIsNotConstructed if validation fails.
func (q GetClientDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetClientDeliveriesQueryIsNotConstructed)
}

// ClientID returns the client whose deliveries are listed.
func (q GetClientDeliveriesQuery) ClientID() string {
	return q.clientID
}
