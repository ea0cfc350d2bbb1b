// Package restaurant provides the restaurant catalog entities: priced menu
// items, the menu itself and the Restaurant aggregate. Restaurants are
// created once during data loading and read-only afterwards; the order
// workflow only resolves prices against them.
//
// Key business rules:
//   - Item prices are non-negative integers in minor currency units
//   - Menu item ids are unique within a menu
//   - A restaurant must have a valid identifier and a non-empty name
package restaurant
