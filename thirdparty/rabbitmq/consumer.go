package rabbitmq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/muhammadheryan/roadside-assistance/model"
	"github.com/muhammadheryan/roadside-assistance/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// errEventRejected marks an event the API refused as invalid.
var errEventRejected = errors.New("event rejected by API")

// Consumer forwards request status events to the API's internal notification endpoint.
type Consumer struct {
	conn       *amqp091.Connection
	channel    *amqp091.Channel
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

func NewConsumer(host string, port int, user, password, apiURL, apiKey string) (*Consumer, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		conn:       conn,
		channel:    channel,
		apiURL:     apiURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// Start consumes until ctx is done or the channel closes. The returned channel is closed when consumption stops.
func (c *Consumer) Start(ctx context.Context) (<-chan struct{}, error) {
	// Set QoS to 1 - process one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return nil, err
	}

	msgs, err := c.channel.Consume(
		RequestStatusQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					logger.Warn("[Consumer] delivery channel closed")
					return
				}
				c.handleDelivery(ctx, msg)
			}
		}
	}()

	return done, nil
}

func (c *Consumer) handleDelivery(ctx context.Context, msg amqp091.Delivery) {
	var event model.RequestStatusEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		logger.Error("[Consumer] unmarshal event", zap.String("error", err.Error()))
		// a malformed message will never succeed
		_ = msg.Ack(false)
		return
	}

	err := c.callRecordNotificationAPI(ctx, &event)
	if errors.Is(err, errEventRejected) {
		_ = msg.Ack(false)
		logger.Warn("[Consumer] notification dropped",
			zap.Uint64("request_id", event.RequestID),
			zap.String("status", string(event.Status)),
			zap.String("error", err.Error()))
		return
	}
	if err != nil {
		logger.Error("[Consumer] record notification",
			zap.Uint64("request_id", event.RequestID),
			zap.String("status", string(event.Status)),
			zap.String("error", err.Error()))
		// Negative ack to requeue
		_ = msg.Nack(false, true)
		return
	}

	_ = msg.Ack(false)
	logger.Info("[Consumer] notification recorded",
		zap.Uint64("request_id", event.RequestID),
		zap.String("status", string(event.Status)))
}

func (c *Consumer) callRecordNotificationAPI(ctx context.Context, event *model.RequestStatusEvent) error {
	url := fmt.Sprintf("%s/internal/v1/notifications", c.apiURL)

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}

	// Add authorization header using the API key (internal service key)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Service", "request-status-notifier")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: status %d: %s", errEventRejected, resp.StatusCode, string(body))
	default:
		// auth failures and missing routes are configuration problems; keep the event
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
