package interfaces

import (
	"context"

	"pagove/internal/domain/entities"
)

// ISettlementNotifier tells the owning domain service that a charge is fully
// paid. Invoked exactly once per standalone confirmation or group completion.
type ISettlementNotifier interface {
	OnPaymentCompleted(ctx context.Context, serviceType entities.ServiceType, serviceID string) error
}

// INotificationDispatcher delivers user-facing notifications. Dispatch is
// fire-and-forget: callers log failures and never fail the payment flow.
type INotificationDispatcher interface {
	Notify(ctx context.Context, userID, notificationType, title, message string, data map[string]interface{}, channels []string) error
}
