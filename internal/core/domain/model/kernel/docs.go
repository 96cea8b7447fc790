// Package kernel provides the shared value objects of the delivery domain.
//
// The package includes:
//   - UUID: the identifier of a delivery
//   - Route: the start/end city pair a delivery travels along
//
// Both are immutable and comparable, so they can be used as map keys when
// grouping deliveries.
package kernel
