package services

import (
	"cmp"
	"slices"

	"deliveryquery/internal/core/domain/model/delivery"
	"deliveryquery/internal/core/domain/model/kernel"
)

// CityAndTypeLimit is the maximum number of deliveries returned by DeliveriesByCityAndType.
const CityAndTypeLimit = 10

// DeliveryQueryService answers read-only questions about a set of deliveries.
//
// Conventions shared by every method:
//   - a nil slice is treated as an empty one
//   - nil entries are skipped
//   - slices are returned non-nil and preserve input order unless stated otherwise
//
// Example usage:
//
//	svc := services.NewDeliveryQueryService()
//	active := svc.NotFinished(svc.Paid(deliveries))
//	for status, n := range svc.CountsByDeliveryStatus(active) {
//	    fmt.Printf("%s: %d\n", status, n)
//	}
type DeliveryQueryService struct{}

// NewDeliveryQueryService creates a new DeliveryQueryService instance.
func NewDeliveryQueryService() DeliveryQueryService {
	return DeliveryQueryService{}
}

// Paid returns the deliveries that have been paid.
func (s DeliveryQueryService) Paid(deliveries []*delivery.Delivery) []*delivery.Delivery {
	return where(deliveries, (*delivery.Delivery).IsPaid)
}

// NotFinished returns the deliveries still being processed, i.e. neither Done nor Canceled.
func (s DeliveryQueryService) NotFinished(deliveries []*delivery.Delivery) []*delivery.Delivery {
	return where(deliveries, func(d *delivery.Delivery) bool {
		return !d.IsFinished()
	})
}

// DeliveryInfosByClient returns the short info of every delivery booked by clientID.
// Client IDs are matched exactly.
func (s DeliveryQueryService) DeliveryInfosByClient(
	deliveries []*delivery.Delivery,
	clientID string,
) []delivery.ShortInfo {
	infos := make([]delivery.ShortInfo, 0)
	for _, d := range deliveries {
		if d != nil && d.ClientID() == clientID {
			infos = append(infos, d.ShortInfo())
		}
	}
	return infos
}

// DeliveriesByCityAndType returns the first CityAndTypeLimit deliveries, in input order,
// that start in cityName and have the given type.
func (s DeliveryQueryService) DeliveriesByCityAndType(
	deliveries []*delivery.Delivery,
	cityName string,
	deliveryType delivery.Type,
) []*delivery.Delivery {
	result := make([]*delivery.Delivery, 0, min(len(deliveries), CityAndTypeLimit))
	for _, d := range deliveries {
		if len(result) == CityAndTypeLimit {
			break
		}
		if d != nil && d.Route().StartsIn(cityName) && d.Type() == deliveryType {
			result = append(result, d)
		}
	}
	return result
}

// OrderByStatusThenByStartLoading returns a copy of deliveries sorted by status rank,
// then by the start of loading. Equal keys keep their input order.
func (s DeliveryQueryService) OrderByStatusThenByStartLoading(deliveries []*delivery.Delivery) []*delivery.Delivery {
	ordered := where(deliveries, func(*delivery.Delivery) bool { return true })
	slices.SortStableFunc(ordered, func(a, b *delivery.Delivery) int {
		if c := cmp.Compare(a.Status().Rank(), b.Status().Rank()); c != 0 {
			return c
		}
		return a.Schedule().StartTime().Compare(b.Schedule().StartTime())
	})
	return ordered
}

// CountUniqCargoTypes returns the number of distinct cargo types.
func (s DeliveryQueryService) CountUniqCargoTypes(deliveries []*delivery.Delivery) int {
	cargoTypes := make(map[string]struct{})
	for _, d := range deliveries {
		if d != nil {
			cargoTypes[d.CargoType()] = struct{}{}
		}
	}
	return len(cargoTypes)
}

// CountsByDeliveryStatus returns the number of deliveries per status.
// Only statuses present in the input appear as keys.
func (s DeliveryQueryService) CountsByDeliveryStatus(deliveries []*delivery.Delivery) map[delivery.Status]int {
	counts := make(map[delivery.Status]int)
	for _, d := range deliveries {
		if d != nil {
			counts[d.Status()]++
		}
	}
	return counts
}

// AverageTravelTimePerDirection returns, for every distinct (start city, end city) pair,
// the mean gap in minutes between the end of loading and the arrival.
// Directions are listed in order of first appearance.
func (s DeliveryQueryService) AverageTravelTimePerDirection(deliveries []*delivery.Delivery) []delivery.AverageGapsInfo {
	type gapTotal struct {
		minutes float64
		count   int
	}

	var (
		order  []kernel.Route
		totals = make(map[kernel.Route]*gapTotal)
	)

	for _, d := range deliveries {
		if d == nil {
			continue
		}

		total, ok := totals[d.Route()]
		if !ok {
			total = &gapTotal{}
			totals[d.Route()] = total
			order = append(order, d.Route())
		}
		total.minutes += d.Schedule().TravelMinutes()
		total.count++
	}

	infos := make([]delivery.AverageGapsInfo, 0, len(order))
	for _, route := range order {
		total := totals[route]
		infos = append(infos, delivery.AverageGapsInfo{
			StartCity:  route.StartCity(),
			EndCity:    route.EndCity(),
			AverageGap: total.minutes / float64(total.count),
		})
	}
	return infos
}

// where returns the non-nil deliveries matching predicate in a new slice.
func where(deliveries []*delivery.Delivery, predicate func(*delivery.Delivery) bool) []*delivery.Delivery {
	result := make([]*delivery.Delivery, 0)
	for _, d := range deliveries {
		if d != nil && predicate(d) {
			result = append(result, d)
		}
	}
	return result
}
