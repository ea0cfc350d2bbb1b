// Package inmem provides the in-memory adapters behind the core's ports:
// capability registries, the customer directory, the restaurant catalog,
// the cart store, a wallet payment account, an email notification channel
// and the notification retry queue. The fulfillment operator runs as a
// single process with in-memory state, so these adapters are the production
// wiring, not test doubles. All of them are safe for concurrent use.
package inmem
