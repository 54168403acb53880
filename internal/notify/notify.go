package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront-api/internal/broker"
	"storefront-api/internal/models"
	"storefront-api/internal/util"
)

// Notifier emits the order-created side effect. No real email is delivered;
// the default implementation only logs, matching the storefront's intended
// behavior.
type Notifier interface {
	OrderCreated(ctx context.Context, order *models.Order) error
}

// LogNotifier writes the notification to the log.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{logger: util.GetLogger()}
}

func (n *LogNotifier) OrderCreated(ctx context.Context, order *models.Order) error {
	n.logger.Info("Order notification sent",
		zap.String("order_id", order.ID),
		zap.String("user_email", order.UserEmail))
	return nil
}

// EventNotifier additionally publishes an OrderCreated event to Kafka, for
// deployments where downstream consumers handle delivery.
type EventNotifier struct {
	producer *broker.Producer
	logger   *zap.Logger
}

func NewEventNotifier(producer *broker.Producer) *EventNotifier {
	return &EventNotifier{
		producer: producer,
		logger:   util.GetLogger(),
	}
}

func (n *EventNotifier) OrderCreated(ctx context.Context, order *models.Order) error {
	n.logger.Info("Order notification sent",
		zap.String("order_id", order.ID),
		zap.String("user_email", order.UserEmail))

	event := &models.OrderCreatedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeOrderCreated,
			Timestamp: time.Now().UTC(),
		},
		OrderID:   order.ID,
		UserEmail: order.UserEmail,
		UserName:  order.UserName,
		Total:     order.Total,
		Status:    order.Status,
	}

	key := fmt.Sprintf("order-%s", order.ID)
	return n.producer.PublishEvent(ctx, key, event)
}
