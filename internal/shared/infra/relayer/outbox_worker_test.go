package relayer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	sharedDomain "github.com/davicafu/mirtech-api/internal/shared/domain"
	sharedEvents "github.com/davicafu/mirtech-api/internal/shared/events"
	"github.com/davicafu/mirtech-api/tests/mocks"
)

func TestOutboxWorker_ProcessBatch_PublishesAndMarks(t *testing.T) {
	repo := &mocks.InMemoryOutboxRepo{}
	publisher := &mocks.DummyPublisher{}

	evt := sharedDomain.NewOutboxEvent("order", "1", "order.created",
		map[string]interface{}{"id": 1, "user_id": 7})
	repo.Add(evt)

	worker := NewOutboxWorker(repo, publisher, time.Second, 10, zap.NewNop())
	worker.ProcessBatch(context.Background())

	assert.Len(t, publisher.Published, 1)
	assert.Equal(t, 0, repo.PendingCount())

	integration, ok := publisher.Published[0].(sharedEvents.IntegrationEvent)
	assert.True(t, ok)
	assert.Equal(t, "order.created", integration.Type)
	assert.JSONEq(t, `{"id":1,"user_id":7}`, string(integration.Data))
}

func TestOutboxWorker_ProcessBatch_PublisherFailureKeepsEventPending(t *testing.T) {
	repo := &mocks.InMemoryOutboxRepo{}
	publisher := &mocks.DummyPublisher{FailTimes: 1}

	repo.Add(sharedDomain.NewOutboxEvent("user", "1", "user.created", map[string]interface{}{}))

	worker := NewOutboxWorker(repo, publisher, time.Second, 10, zap.NewNop())

	// Primer ciclo: el publish falla y el evento sigue pendiente.
	worker.ProcessBatch(context.Background())
	assert.Len(t, publisher.Published, 0)
	assert.Equal(t, 1, repo.PendingCount())

	// Siguiente ciclo: se reintenta y sale.
	worker.ProcessBatch(context.Background())
	assert.Len(t, publisher.Published, 1)
	assert.Equal(t, 0, repo.PendingCount())
}

func TestOutboxWorker_ProcessBatch_RespectsBatchSize(t *testing.T) {
	repo := &mocks.InMemoryOutboxRepo{}
	publisher := &mocks.DummyPublisher{}

	for i := 0; i < 5; i++ {
		repo.Add(sharedDomain.NewOutboxEvent("user", "1", "user.created", map[string]interface{}{}))
	}

	worker := NewOutboxWorker(repo, publisher, time.Second, 2, zap.NewNop())
	worker.ProcessBatch(context.Background())

	assert.Len(t, publisher.Published, 2)
	assert.Equal(t, 3, repo.PendingCount())
}
