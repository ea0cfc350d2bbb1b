// Package customer provides the Customer entity: an identity, a display name
// and a current delivery location. Everything else in the system references a
// customer by id only.
package customer
