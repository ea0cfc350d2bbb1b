package inmem

import (
	"sync"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Registry is a concurrency-safe map from customer id to exactly one
// capability instance. Attach replaces any previously attached instance;
// Get fails with an errs.ObjectNotFoundError when nothing is attached.
//
// The same generic implementation backs the cart, payment and notification
// registries; the instantiating type parameter is the capability interface.
type Registry[T any] struct {
	mu        sync.RWMutex
	paramName string
	instances map[kernel.UUID]T
}

// NewRegistry creates an empty registry. paramName names the missing
// capability in not-found errors (e.g. "paymentAccount").
func NewRegistry[T any](paramName string) *Registry[T] {
	return &Registry[T]{
		paramName: paramName,
		instances: make(map[kernel.UUID]T),
	}
}

// Attach binds instance to customerID, overwriting any prior instance.
func (r *Registry[T]) Attach(customerID kernel.UUID, instance T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.instances[customerID] = instance
}

// Get returns the instance attached to customerID.
func (r *Registry[T]) Get(customerID kernel.UUID) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	instance, ok := r.instances[customerID]
	if !ok {
		var zero T
		return zero, errs.NewObjectNotFoundError(r.paramName, customerID.String())
	}
	return instance, nil
}
