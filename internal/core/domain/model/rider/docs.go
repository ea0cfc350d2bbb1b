// Package rider provides the domain entity for delivery riders.
// It implements the Rider aggregate with its availability lifecycle.
//
// Key business rules:
//   - A rider starts available with an unknown location
//   - Location updates never change availability
//   - Accepting a delivery requires availability and a known location,
//     makes the rider unavailable and records the delivery target
//   - Completing a delivery clears the target and returns the rider
//     to the available pool
//   - A rider carries at most one active delivery target at a time
package rider
