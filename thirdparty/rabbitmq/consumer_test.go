package rabbitmq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/muhammadheryan/roadside-assistance/constant"
	"github.com/muhammadheryan/roadside-assistance/model"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAcknowledger struct {
	acked   bool
	nacked  bool
	requeue bool
}

func (f *fakeAcknowledger) Ack(uint64, bool) error {
	f.acked = true
	return nil
}

func (f *fakeAcknowledger) Nack(_ uint64, _ bool, requeue bool) error {
	f.nacked = true
	f.requeue = requeue
	return nil
}

func (f *fakeAcknowledger) Reject(_ uint64, requeue bool) error {
	f.nacked = true
	f.requeue = requeue
	return nil
}

func TestRoutingKey(t *testing.T) {
	assert.Equal(t, "request.status.accepted", RoutingKey(constant.RequestStatusAccepted))
	assert.Equal(t, "request.status.in_progress", RoutingKey(constant.RequestStatusInProgress))
}

func TestConsumer_HandleDelivery(t *testing.T) {
	mechanicID := uint64(7)
	event := model.RequestStatusEvent{
		RequestID:  3,
		ClientID:   1,
		MechanicID: &mechanicID,
		Status:     constant.RequestStatusAccepted,
		ActorID:    7,
		ActorRole:  constant.RoleMechanic,
		Title:      "Flat tire",
		OccurredAt: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
	}
	body, err := json.Marshal(event)
	require.NoError(t, err)

	tests := []struct {
		name        string
		body        []byte
		status      int
		wantCalled  bool
		wantAck     bool
		wantRequeue bool
	}{
		{name: "recorded", body: body, status: http.StatusOK, wantCalled: true, wantAck: true},
		{name: "client error is not retried", body: body, status: http.StatusBadRequest, wantCalled: true, wantAck: true},
		{name: "unprocessable event is not retried", body: body, status: http.StatusUnprocessableEntity, wantCalled: true, wantAck: true},
		{name: "unauthorized requeues", body: body, status: http.StatusUnauthorized, wantCalled: true, wantRequeue: true},
		{name: "forbidden requeues", body: body, status: http.StatusForbidden, wantCalled: true, wantRequeue: true},
		{name: "missing route requeues", body: body, status: http.StatusNotFound, wantCalled: true, wantRequeue: true},
		{name: "server error requeues", body: body, status: http.StatusInternalServerError, wantCalled: true, wantRequeue: true},
		{name: "malformed body is dropped", body: []byte("{"), status: http.StatusOK, wantAck: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			called := false
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				assert.Equal(t, "/internal/v1/notifications", r.URL.Path)
				assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

				var got model.RequestStatusEvent
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				assert.Equal(t, event.RequestID, got.RequestID)
				assert.Equal(t, constant.RoleMechanic, got.ActorRole)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := &Consumer{apiURL: srv.URL, apiKey: "secret", httpClient: srv.Client()}
			ack := &fakeAcknowledger{}

			c.handleDelivery(context.Background(), amqp091.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: tt.body})

			assert.Equal(t, tt.wantCalled, called)
			assert.Equal(t, tt.wantAck, ack.acked)
			assert.Equal(t, tt.wantRequeue, ack.requeue)
			assert.Equal(t, tt.wantRequeue, ack.nacked)
		})
	}
}
