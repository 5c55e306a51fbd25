package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/commonmodel/sync-engine/internal/usecase"
)

type QueueProducerInterface interface {
	PublishSyncEvent(ctx context.Context, event usecase.TriggerEvent) error
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Conn: conn, Ch: ch}
}

func (p *RabbitMQProducer) PublishSyncEvent(ctx context.Context, event usecase.TriggerEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding sync event: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    event.RunID,
			Body:         body,
			DeliveryMode: amqp.Persistent, // survives a broker restart
		},
	)

	if err != nil {
		return fmt.Errorf("publishing sync event: %w", err)
	}

	return nil
}
