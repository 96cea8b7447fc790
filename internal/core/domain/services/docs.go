// Package services provides domain services of the delivery query module.
//
// The package includes:
//   - DeliveryQueryService: stateless filtering, projection, grouping, counting,
//     averaging and ordering over a slice of deliveries
//   - Paging: a generic filter/order/window helper over any element type
//
// Every operation is a pure function of its arguments. Inputs are never
// modified and results are freshly allocated, so the same input slice may be
// queried from several goroutines as long as nobody mutates it meanwhile.
package services
