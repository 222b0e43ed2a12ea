package relayer

import (
	"context"
	"encoding/json"
	"time"

	sharedDomain "github.com/davicafu/mirtech-api/internal/shared/domain"
	sharedEvents "github.com/davicafu/mirtech-api/internal/shared/events"
	sharedBus "github.com/davicafu/mirtech-api/internal/shared/infra/platform/bus"
	"go.uber.org/zap"
)

// Worker publica los eventos pendientes de la tabla outbox.
type Worker struct {
	repo      sharedDomain.OutboxRepository
	publisher sharedBus.EventBus
	interval  time.Duration
	batchSize int
	log       *zap.Logger
}

func NewOutboxWorker(
	repo sharedDomain.OutboxRepository,
	publisher sharedBus.EventBus,
	interval time.Duration,
	batchSize int,
	log *zap.Logger,
) *Worker {
	return &Worker{
		repo:      repo,
		publisher: publisher,
		interval:  interval,
		batchSize: batchSize,
		log:       log,
	}
}

// Start inicia el bucle de polling del worker en una goroutine propia.
func (w *Worker) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.log.Info("🚀 Outbox worker iniciado", zap.Duration("interval", w.interval))

		for {
			select {
			case <-ctx.Done():
				w.log.Info("🛑 Outbox worker detenido")
				return
			case <-ticker.C:
				w.ProcessBatch(ctx)
			}
		}
	}()
}

// ProcessBatch procesa hasta batchSize eventos pendientes.
func (w *Worker) ProcessBatch(ctx context.Context) {
	events, err := w.repo.FetchPendingOutbox(ctx, w.batchSize)
	if err != nil {
		w.log.Warn("⚠️ Error al obtener eventos pendientes", zap.Error(err))
		return
	}

	for _, evt := range events {
		w.publishAndMark(ctx, evt)
	}
}

func (w *Worker) publishAndMark(ctx context.Context, evt sharedDomain.OutboxEvent) {
	payload, err := json.Marshal(evt.Payload)
	if err != nil {
		w.log.Error("Payload de outbox no serializable",
			zap.String("event_id", evt.ID.String()),
			zap.Error(err))
		return
	}

	integration := sharedEvents.IntegrationEvent{
		Type:      evt.EventType,
		Timestamp: evt.CreatedAt,
		Data:      payload,
	}

	if err := w.publisher.Publish(ctx, integration); err != nil {
		// Se reintentará en el siguiente ciclo de polling.
		w.log.Warn("⚠️ Fallo publicando evento, se mantiene pendiente",
			zap.String("event_id", evt.ID.String()),
			zap.String("event_type", evt.EventType),
			zap.Error(err))
		return
	}

	if err := w.repo.MarkOutboxProcessed(ctx, evt.ID); err != nil {
		w.log.Error("Fallo al marcar evento como procesado",
			zap.String("event_id", evt.ID.String()),
			zap.Error(err))
	}
}
