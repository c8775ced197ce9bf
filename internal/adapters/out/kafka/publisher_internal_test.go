package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"printdrop/internal/core/domain/model/kernel"
	"printdrop/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWriter struct{ mock.Mock }

func (m *MockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockWriter) Close() error {
	return m.Called().Error(0)
}

func TestPublishStatusChanged(t *testing.T) {
	courier := kernel.NewUUID()
	event := order.StatusChanged{
		OrderID:   kernel.NewUUID(),
		OwnerID:   kernel.NewUUID(),
		Status:    order.Picked,
		CourierID: &courier,
		At:        time.Date(2025, 7, 25, 10, 0, 0, 0, time.UTC),
	}

	var sent []kafka.Message
	writer := new(MockWriter)
	writer.On("WriteMessages", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).([]kafka.Message) }).
		Return(nil).Once()

	require.NoError(t, newPublisher(writer).Publish(context.Background(), event))

	require.Len(t, sent, 1)
	assert.Equal(t, event.OrderID.String(), string(sent[0].Key))
	assert.Equal(t, order.StatusChangedEventName, string(sent[0].Headers[0].Value))

	var body map[string]any
	require.NoError(t, json.Unmarshal(sent[0].Value, &body))
	assert.Equal(t, "order.status_changed", body["event"])
	payload := body["payload"].(map[string]any)
	assert.Equal(t, "picked", payload["status"])
	assert.Equal(t, courier.String(), payload["courierId"])
	assert.Equal(t, event.OwnerID.String(), payload["ownerId"])
}

func TestPublishWithoutEventsSkipsWriter(t *testing.T) {
	writer := new(MockWriter)

	require.NoError(t, newPublisher(writer).Publish(context.Background()))

	writer.AssertNotCalled(t, "WriteMessages", mock.Anything, mock.Anything)
}

func TestPublishReturnsWriterError(t *testing.T) {
	writer := new(MockWriter)
	writer.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("leader not available"))

	err := newPublisher(writer).Publish(context.Background(), order.StatusChanged{
		OrderID: kernel.NewUUID(),
		OwnerID: kernel.NewUUID(),
		Status:  order.Ordered,
		At:      time.Now(),
	})

	require.EqualError(t, err, "leader not available")
}

func TestParseBrokers(t *testing.T) {
	assert.Equal(t, []string{"a:9092", "b:9092"}, ParseBrokers(" a:9092, ,b:9092 "))
	assert.Empty(t, ParseBrokers(""))
}
