// Package services provides domain services that implement business logic
// spanning more than one aggregate or deriving values an aggregate stores.
//
// The package includes:
//   - TotalsReconciler: compares an order's stored total against the figure
//     derived from its line items and reports disagreements as warnings
package services
