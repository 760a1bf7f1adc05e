package events

import (
	"context"
	"log"

	"pagove/internal/domain/entities"
	"pagove/internal/usecase/interfaces"
)

// LogPublisher is the fallback notifier used when Kafka is not configured.
// Events end up in the service log only.

type LogPublisher struct{}

var _ interfaces.ISettlementNotifier = (*LogPublisher)(nil)
var _ interfaces.INotificationDispatcher = (*LogPublisher)(nil)

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (p *LogPublisher) OnPaymentCompleted(ctx context.Context, serviceType entities.ServiceType, serviceID string) error {
	log.Printf("[events][log] payment completed service_type=%s service_id=%s", serviceType, serviceID)
	return nil
}

func (p *LogPublisher) Notify(ctx context.Context, userID, notificationType, title, message string, data map[string]interface{}, channels []string) error {
	log.Printf("[events][log] notify user_id=%s type=%s title=%q channels=%v", userID, notificationType, title, channels)
	return nil
}
