package rabbitmq

import (
	"fmt"

	"github.com/muhammadheryan/roadside-assistance/constant"
	"github.com/rabbitmq/amqp091-go"
)

const (
	RequestExchange    = "request_topic"
	RequestStatusQueue = "request_status_queue"
	// RequestStatusBinding matches every routing key produced by RoutingKey.
	RequestStatusBinding = "request.status.*"
)

// RoutingKey is the topic a status event is published under.
func RoutingKey(status constant.RequestStatus) string {
	return "request.status." + string(status)
}

func dial(host string, port int, user, password string) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}
	return conn, channel, nil
}

// declareTopology is idempotent; publisher and consumer both run it.
func declareTopology(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		RequestExchange, // name
		"topic",         // type
		true,            // durable
		false,           // auto-delete
		false,           // internal
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(
		RequestStatusQueue, // name
		true,               // durable
		false,              // auto-delete
		false,              // exclusive
		false,              // no-wait
		nil,                // arguments
	)
	if err != nil {
		return err
	}

	return channel.QueueBind(
		RequestStatusQueue,   // queue name
		RequestStatusBinding, // routing key
		RequestExchange,      // exchange
		false,                // no-wait
		nil,                  // arguments
	)
}
