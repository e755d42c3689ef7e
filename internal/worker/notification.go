package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Skyedown/pohoda-skalite/internal/domain"
	"github.com/Skyedown/pohoda-skalite/internal/notify"
	"github.com/Skyedown/pohoda-skalite/internal/queue"
	"go.uber.org/zap"
)

// NotificationWorker consumes order-placed events and dispatches the
// confirmation emails. Dispatch failures are logged and the message is still
// acknowledged: the order already succeeded, and the broker routes the
// payload to the DLQ for manual follow-up.
type NotificationWorker struct {
	dispatcher notify.Dispatcher
	broker     queue.Broker
	logger     *zap.SugaredLogger
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewNotificationWorker(
	dispatcher notify.Dispatcher,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *NotificationWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &NotificationWorker{
		dispatcher: dispatcher,
		broker:     broker,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
	}
}

func (w *NotificationWorker) Start() error {
	w.logger.Info("starting order notification worker")

	return w.broker.Subscribe(w.ctx, queue.QueueOrderNotifications, w.handleMessage)
}

func (w *NotificationWorker) Stop() {
	w.logger.Info("stopping order notification worker")
	w.cancel()
}

func (w *NotificationWorker) handleMessage(ctx context.Context, message []byte) error {
	var event domain.OrderPlacedEvent
	if err := json.Unmarshal(message, &event); err != nil {
		w.logger.Errorw("failed to unmarshal order event", "error", err)
		return fmt.Errorf("failed to unmarshal order event: %w", err)
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	w.logger.Infow("dispatching order emails", "order_id", event.OrderID, "email", event.Order.Delivery.Email)

	if err := w.dispatcher.SendOrderEmails(ctx, event.Order); err != nil {
		w.logger.Errorw("failed to dispatch order emails", "order_id", event.OrderID, "error", err)
		return err
	}

	w.logger.Infow("order emails dispatched", "order_id", event.OrderID)

	return nil
}
