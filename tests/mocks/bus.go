package mocks

import (
	"context"
	"errors"
	"sync"

	sharedDomain "github.com/davicafu/mirtech-api/internal/shared/domain"
	sharedBus "github.com/davicafu/mirtech-api/internal/shared/infra/platform/bus"

	"github.com/google/uuid"
)

// DummyPublisher acumula los eventos publicados. FailTimes hace fallar las
// primeras N publicaciones para probar los reintentos del relayer.
type DummyPublisher struct {
	Published []interface{}
	FailTimes int
	mu        sync.Mutex
}

var _ sharedBus.EventBus = (*DummyPublisher)(nil)

var ErrPublishFailed = errors.New("publish failed")

func (p *DummyPublisher) Publish(ctx context.Context, event interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.FailTimes > 0 {
		p.FailTimes--
		return ErrPublishFailed
	}
	p.Published = append(p.Published, event)
	return nil
}

// InMemoryOutboxRepo simula la tabla outbox para tests del relayer.
type InMemoryOutboxRepo struct {
	Events []sharedDomain.OutboxEvent
	mu     sync.Mutex
}

var _ sharedDomain.OutboxRepository = (*InMemoryOutboxRepo)(nil)

func (r *InMemoryOutboxRepo) Add(evt sharedDomain.OutboxEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, evt)
}

func (r *InMemoryOutboxRepo) FetchPendingOutbox(ctx context.Context, limit int) ([]sharedDomain.OutboxEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var pending []sharedDomain.OutboxEvent
	for _, evt := range r.Events {
		if evt.Processed {
			continue
		}
		pending = append(pending, evt)
		if len(pending) == limit {
			break
		}
	}
	return pending, nil
}

func (r *InMemoryOutboxRepo) MarkOutboxProcessed(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.Events {
		if r.Events[i].ID == id {
			r.Events[i].Processed = true
			return nil
		}
	}
	return nil
}

// PendingCount cuenta los eventos aún no procesados.
func (r *InMemoryOutboxRepo) PendingCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, evt := range r.Events {
		if !evt.Processed {
			n++
		}
	}
	return n
}
