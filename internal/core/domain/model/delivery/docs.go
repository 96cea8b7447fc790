// Package delivery provides the Delivery aggregate and the read models derived
// from it.
//
// The package includes:
//   - Delivery: an immutable shipment record with routing, timing, payment and
//     classification attributes
//   - Status: the lifecycle state of a delivery with an explicit sort rank
//   - Type: the service category of a delivery
//   - Schedule: loading and arrival timestamps
//   - ShortInfo and AverageGapsInfo: projections produced by queries
//
// Key business rules:
//   - Deliveries must have a valid identifier, client, route, type, status and cargo type
//   - Done and Canceled are finished statuses
//   - Schedule timestamps are stored as given; their ordering is not enforced
package delivery
