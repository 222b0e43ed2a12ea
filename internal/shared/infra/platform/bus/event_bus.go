package bus

import "context"

// Keyer permite a un evento aportar su clave de partición.
type Keyer interface {
	PartitionKey() string
}

// EventBus publica eventos de integración. El formato del payload y la
// semántica del topic los decide cada adapter.
type EventBus interface {
	Publish(ctx context.Context, event interface{}) error
}
