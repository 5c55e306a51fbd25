package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/commonmodel/sync-engine/internal/infra/checkpoint"
	"github.com/commonmodel/sync-engine/internal/infra/http/middleware"
	"github.com/commonmodel/sync-engine/internal/usecase"
)

// AlertSender notifies operators when a run is given up on.
type AlertSender interface {
	SendSyncFailure(event usecase.TriggerEvent, runErr error) error
}

// Worker is the checkpointed-execution collaborator: it re-invokes the
// whole run on transient failure and relies on the engine's idempotent
// effects. One consumer per deployment; runs for the same scope are
// serialized by the single queue. Scaling consumers out needs a per-scope
// lock first, which the engine does not provide yet.
type Worker struct {
	Channel     *amqp.Channel
	Transform   *usecase.TransformSyncUseCase
	Checkpoints *checkpoint.Store
	Alerts      AlertSender // optional
}

func NewWorker(ch *amqp.Channel, transform *usecase.TransformSyncUseCase, checkpoints *checkpoint.Store, alerts AlertSender) *Worker {
	return &Worker{
		Channel:     ch,
		Transform:   transform,
		Checkpoints: checkpoints,
		Alerts:      alerts,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual, we only ack applied runs)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ [WORKER] Failed to register consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var event usecase.TriggerEvent
			if err := json.Unmarshal(d.Body, &event); err != nil {
				log.Printf("❌ [WORKER] Malformed event: %s", err)
				// Rotten message, straight to the DLQ.
				d.Nack(false, false)
				continue
			}

			w.handle(d, event)
		}
	}()

	log.Printf(" [*] Worker waiting on queue %q", queueName)
	<-forever
}

func (w *Worker) handle(d amqp.Delivery, event usecase.TriggerEvent) {
	ctx := context.Background()
	runner := checkpoint.NewRunner(w.Checkpoints, event.RunID)

	out, err := w.Transform.Execute(ctx, event, runner)
	if err != nil {
		middleware.RecordSyncRun(event.ProviderName, event.Object, "error")
		log.Printf("❌ [WORKER] Run %s failed: %s", event.RunID, err)

		if d.Redelivered {
			// Second strike: park it on the DLQ and tell someone.
			if w.Alerts != nil {
				if alertErr := w.Alerts.SendSyncFailure(event, err); alertErr != nil {
					log.Printf("⚠️ [WORKER] Alert send failed: %s", alertErr)
				}
			}
			w.Checkpoints.Drop(event.RunID)
			d.Nack(false, false)
			return
		}

		// Completed steps stay cached; the retry resumes after them.
		d.Nack(false, true)
		return
	}

	if out.Skipped {
		middleware.RecordSyncRun(event.ProviderName, event.Object, "skipped")
		log.Printf("⏭️ [WORKER] Run %s skipped: %s", event.RunID, out.Reason)
	} else {
		middleware.RecordSyncRun(event.ProviderName, event.Object, "success")
		middleware.RecordRowsApplied(event.ProviderName, event.Object, out.RowsAffected)
	}

	w.Checkpoints.Drop(event.RunID)
	d.Ack(false)
}
