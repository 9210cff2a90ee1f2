package rabbitmq

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/muhammadheryan/roadside-assistance/model"
	"github.com/rabbitmq/amqp091-go"
)

// RequestEventPublisher hands committed request status changes to the broker.
type RequestEventPublisher interface {
	PublishRequestStatus(ctx context.Context, event model.RequestStatusEvent) error
}

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	// amqp channels are not safe for concurrent publishing
	mu sync.Mutex
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel}, nil
}

func (p *Publisher) PublishRequestStatus(ctx context.Context, event model.RequestStatusEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.channel.PublishWithContext(ctx,
		RequestExchange,          // exchange
		RoutingKey(event.Status), // routing key
		false,                    // mandatory
		false,                    // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    event.OccurredAt,
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}

// NoopPublisher drops every event. It stands in when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishRequestStatus(context.Context, model.RequestStatusEvent) error {
	return nil
}
