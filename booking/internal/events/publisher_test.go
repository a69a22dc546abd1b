package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Astemirdum/lab-booking/pkg/circuit_breaker"
	"github.com/Astemirdum/lab-booking/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPublisher_Publish(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, nil)
	event := kafka.EventBooking{
		Timestamp:  time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		EventType:  kafka.EventApproved,
		BookingIDs: []int64{4, 5},
		SeriesCode: "abc",
		RoomID:     2,
		ActorID:    1,
		Source:     "node-a",
	}
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got kafka.EventBooking
		if err := json.Unmarshal(val, &got); err != nil {
			return err
		}
		require.Equal(t, event, got)
		return nil
	})

	p := NewPublisher(producer, kafka.BookingTopic, zap.NewNop())
	require.NoError(t, p.Publish(context.Background(), event))
	require.NoError(t, producer.Close())
}

func TestPublisher_BreakerOpens(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, nil)
	for i := 0; i < 10; i++ {
		producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	}

	p := NewPublisher(producer, kafka.BookingTopic, zap.NewNop())
	var lastErr error
	for i := 0; i < 11; i++ {
		lastErr = p.Publish(context.Background(), kafka.EventBooking{EventType: kafka.EventCreated, RoomID: 1})
		require.Error(t, lastErr)
	}
	require.ErrorIs(t, lastErr, circuit_breaker.ErrOpenCB)
}

func TestNoop(t *testing.T) {
	t.Parallel()
	require.NoError(t, Noop().Publish(context.Background(), kafka.EventBooking{}))
}
