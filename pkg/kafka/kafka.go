package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

const (
	BookingTopic         = "booking-events"
	BookingConsumerGroup = "booking-cache"
)

type Config struct {
	Addrs  []string `envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
	Enable bool     `envconfig:"KAFKA_ENABLE" default:"false"`
	// Group is unique per instance so that every instance sees every event.
	Group string `envconfig:"KAFKA_GROUP" default:"booking-cache"`
}

type EventType string

const (
	EventCreated   EventType = "CREATED"
	EventApproved  EventType = "APPROVED"
	EventRejected  EventType = "REJECTED"
	EventCompleted EventType = "COMPLETED"
)

// EventBooking is published after every committed booking mutation.
type EventBooking struct {
	Timestamp  time.Time `json:"timestamp"`
	EventType  EventType `json:"eventType"`
	BookingIDs []int64   `json:"bookingIds"`
	SeriesCode string    `json:"seriesCode,omitempty"`
	RoomID     int64     `json:"roomId"`
	ActorID    int64     `json:"actorId"`
	Source     string    `json:"source"`
}

func NewSyncProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Timeout = time.Second * 5

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()
	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetNewest
	defaultCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume blocks until ctx is done, rejoining the group after every rebalance.
func Consume(ctx context.Context, consumer sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, topics ...string) error {
	for {
		if err := consumer.Consume(ctx, topics, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			return errors.Wrap(err, "consumer.Consume")
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

func CreateTopics(cfg Config, topics ...string) error {
	admin, err := sarama.NewClusterAdmin(cfg.Addrs, sarama.NewConfig())
	if err != nil {
		return errors.Wrap(err, "sarama.NewClusterAdmin")
	}
	defer admin.Close()

	existing, err := admin.ListTopics()
	if err != nil {
		return errors.Wrap(err, "admin.ListTopics")
	}
	for _, topic := range topics {
		if _, ok := existing[topic]; ok {
			continue
		}
		detail := &sarama.TopicDetail{NumPartitions: 1, ReplicationFactor: 1}
		if err := admin.CreateTopic(topic, detail, false); err != nil {
			return errors.Wrapf(err, "create topic %s", topic)
		}
	}
	return nil
}
