package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"pagove/internal/domain/entities"
	"pagove/internal/usecase/interfaces"

	"github.com/IBM/sarama"
)

const (
	settlementTopic   = "payments.settled"
	notificationTopic = "notifications.dispatch"
)

// KafkaPublisher emits settlement and notification events to Kafka.
//
// Delivery is fire-and-forget from the payment flow's point of view: the
// publisher returns errors so callers can log them, but no payment state
// depends on a publish succeeding.

type KafkaPublisher struct {
	producer sarama.SyncProducer
}

var _ interfaces.ISettlementNotifier = (*KafkaPublisher)(nil)
var _ interfaces.INotificationDispatcher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(brokers []string) (*KafkaPublisher, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	log.Printf("[events][kafka] producer connected brokers=%v", brokers)
	return &KafkaPublisher{producer: producer}, nil
}

func (p *KafkaPublisher) OnPaymentCompleted(ctx context.Context, serviceType entities.ServiceType, serviceID string) error {
	event := map[string]interface{}{
		"event_type":   "payment_completed",
		"service_type": serviceType,
		"service_id":   serviceID,
		"completed_at": time.Now().UTC().Format(time.RFC3339Nano),
	}
	return p.publish(settlementTopic, serviceID, event)
}

func (p *KafkaPublisher) Notify(ctx context.Context, userID, notificationType, title, message string, data map[string]interface{}, channels []string) error {
	event := map[string]interface{}{
		"event_type": notificationType,
		"user_id":    userID,
		"title":      title,
		"message":    message,
		"data":       data,
		"channels":   channels,
		"sent_at":    time.Now().UTC().Format(time.RFC3339Nano),
	}
	return p.publish(notificationTopic, userID, event)
}

func (p *KafkaPublisher) publish(topic, key string, event map[string]interface{}) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(payload),
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return err
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
