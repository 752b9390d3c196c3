package rental

import (
	"context"

	"drivio/config"
	"drivio/infras/kafka"
	rentalModel "drivio/internal/domains/rental/model"
	notificationService "drivio/internal/domains/notification/service"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Consumer reads rental status events and fans them out to the notification
// feed. Delivery is at-least-once; notification creation is idempotent
// enough in practice since each event carries a fresh occurrence.
type Consumer struct {
	cfg          *config.Config
	kafka        kafka.Client
	notification notificationService.Notification
}

func NewConsumer(cfg *config.Config, kafkaClient kafka.Client, notification notificationService.Notification) *Consumer {
	return &Consumer{
		cfg:          cfg,
		kafka:        kafkaClient,
		notification: notification,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	go c.kafka.Consume(ctx, c.cfg.Kafka.ConsumerGroup, c.cfg.Kafka.Topics.RentalEvents, c.handle)
}

func (c *Consumer) handle(msg kafkaGo.Message) {
	decoded, err := kafka.DecodeKafkaMessage[rentalModel.StatusEvent](msg)
	if err != nil {
		log.Error().Err(err).Str("key", string(msg.Key)).Msg("failed to decode rental status event")

		return
	}

	event, ok := decoded.Value.(rentalModel.StatusEvent)
	if !ok {
		log.Error().Str("key", decoded.Key).Msg("unexpected rental status event payload")

		return
	}

	if err := c.notification.CreateFromEvent(context.Background(), event); err != nil {
		log.Error().Err(err).Str("rental_id", event.RentalID).Msg("failed to handle rental status event")
	}
}
