package facades

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/safedrive-rewards/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func testEvent() models.PointsEvent {
	return models.PointsEvent{
		EventID:   "evt-1",
		Timestamp: 1700000000,
		UserID:    42,
		Username:  "alice",
		Operation: models.OperationHazardReported,
		Points:    50,
		Balance:   150,
	}
}

func TestPointsEventPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockKafkaWriter(ctrl)
	event := testEvent()

	writer.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, msgs ...kafka.Message) error {
			assert.Len(t, msgs, 1)
			assert.Equal(t, "42", string(msgs[0].Key))

			var got models.PointsEvent
			assert.NoError(t, json.Unmarshal(msgs[0].Value, &got))
			assert.Equal(t, event, got)
			return nil
		})

	NewPointsEventPublisher(writer).Publish(context.Background(), event)
}

func TestPointsEventPublisher_WriteErrorIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockKafkaWriter(ctrl)
	writer.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		Return(errors.New("broker down"))

	assert.NotPanics(t, func() {
		NewPointsEventPublisher(writer).Publish(context.Background(), testEvent())
	})
}

func TestPointsEventPublisher_NilWriter(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPointsEventPublisher(nil).Publish(context.Background(), testEvent())
	})
}

func TestFanoutPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := NewMockEventPublisher(ctrl)
	second := NewMockEventPublisher(ctrl)
	event := testEvent()

	gomock.InOrder(
		first.EXPECT().Publish(gomock.Any(), event),
		second.EXPECT().Publish(gomock.Any(), event),
	)

	FanoutPublisher{first, second}.Publish(context.Background(), event)
}

func TestNewKafkaWriter(t *testing.T) {
	w := NewKafkaWriter([]string{"localhost:9092"}, "points-events")
	assert.Equal(t, "points-events", w.Topic)
	assert.Equal(t, "localhost:9092", w.Addr.String())
	assert.Equal(t, kafkaBatchTimeout, w.BatchTimeout)
	assert.False(t, w.Async)
	assert.NoError(t, w.Close())
}
