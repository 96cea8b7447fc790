// Package queries implements the read side of the delivery query module.
//
// Each query is an immutable value created by its constructor, which validates
// the parameters and embeds a guard.ConstructorGuard. Each handler validates the
// query, loads deliveries through ports.DeliverySource and delegates to
// services.DeliveryQueryService:
//   - GetClientDeliveriesQuery: short info of one client's deliveries
//   - GetDeliveriesByCityAndTypeQuery: first deliveries from a city with a type
//   - GetDeliveriesPageQuery: a page of deliveries ordered by start of loading
//   - GetDeliveryStatisticsQuery: counts, average travel gaps and the processing queue
package queries
