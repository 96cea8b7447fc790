package kernel

import (
	"errors"
	"fmt"

	"deliveryquery/internal/pkg/errs"
	"deliveryquery/internal/pkg/guard"
)

// ErrRouteIsNotConstructed is returned when attempting to use an improperly initialized Route.
var ErrRouteIsNotConstructed = errs.NewValueIsRequiredError("route must be created via NewRoute constructor")

// Route is the direction of a delivery: the city where loading starts and the
// city of arrival. Route is an immutable, comparable value object, so two routes
// built from the same cities are equal with == and can key a map.
//
// City names are compared exactly (case-sensitive, no trimming).
//
// Example:
//
//	route, err := kernel.NewRoute("Kyiv", "Lviv")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(route) // Output: Kyiv -> Lviv
type Route struct { //nolint:recvcheck //using for validation
	startCity string
	endCity   string
	guard     guard.ConstructorGuard
}

// NewRoute creates a Route between two cities.
// Both city names are required.
//
// Returns:
//   - Route: A valid route instance
//   - error: Joined validation errors for every empty city
func NewRoute(startCity, endCity string) (Route, error) {
	route := Route{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(route.setStartCity(startCity), route.setEndCity(endCity)); err != nil {
		return Route{}, err
	}

	return route, nil
}

// Validate checks if the Route was properly constructed using NewRoute.
func (r Route) Validate() error {
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

// StartCity returns the city where the delivery is loaded.
func (r Route) StartCity() string {
	return r.startCity
}

// EndCity returns the destination city.
func (r Route) EndCity() string {
	return r.endCity
}

// StartsIn reports whether the route starts in exactly the given city.
func (r Route) StartsIn(city string) bool {
	return r.startCity == city
}

// IsEqual reports whether both routes connect the same cities in the same direction.
func (r Route) IsEqual(other Route) bool {
	return r.startCity == other.startCity && r.endCity == other.endCity
}

// String returns the human-readable representation "Start -> End".
func (r Route) String() string {
	return fmt.Sprintf("%s -> %s", r.startCity, r.endCity)
}

func (r *Route) setStartCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("startCity")
	}

	r.startCity = city
	return nil
}

func (r *Route) setEndCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("endCity")
	}

	r.endCity = city
	return nil
}
