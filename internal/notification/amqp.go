package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stpnv0/EventZone/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const (
	KindRegistered     = "registration.created"
	KindReminder       = "event.reminder"
	KindEnquiryReplied = "enquiry.replied"
)

// Message is the body published for every notification.
type Message struct {
	Kind       string    `json:"kind"`
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	EventID    string    `json:"event_id"`
	EventTitle string    `json:"event_title"`
	StartsAt   string    `json:"starts_at"`
	EnquiryID  string    `json:"enquiry_id,omitempty"`
	Reply      string    `json:"reply,omitempty"`
	SentAt     time.Time `json:"sent_at"`
}

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQPNotifier publishes notifications to a durable queue for downstream mailers.
type AMQPNotifier struct {
	ch     publisher
	queue  string
	logger logger.Logger
	now    func() time.Time
}

// DialAMQP opens a connection and channel and declares the queue.
// The returned close func releases both.
func DialAMQP(url, queue string, logger logger.Logger) (*AMQPNotifier, func() error, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("dial amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("open channel: %w", err)
	}

	if _, err = ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}

	closeFn := func() error {
		_ = ch.Close()
		return conn.Close()
	}
	return NewAMQPNotifier(ch, queue, logger), closeFn, nil
}

func NewAMQPNotifier(ch publisher, queue string, logger logger.Logger) *AMQPNotifier {
	return &AMQPNotifier{ch: ch, queue: queue, logger: logger, now: time.Now}
}

func (n *AMQPNotifier) NotifyRegistered(ctx context.Context, user *domain.User, event *domain.Event) {
	n.publish(ctx, n.message(KindRegistered, user, event))
}

func (n *AMQPNotifier) NotifyReminder(ctx context.Context, user *domain.User, event *domain.Event) {
	n.publish(ctx, n.message(KindReminder, user, event))
}

func (n *AMQPNotifier) NotifyEnquiryReplied(ctx context.Context, user *domain.User, event *domain.Event, enquiry domain.Enquiry) {
	msg := n.message(KindEnquiryReplied, user, event)
	msg.EnquiryID = enquiry.ID
	msg.Reply = enquiry.Reply
	n.publish(ctx, msg)
}

func (n *AMQPNotifier) message(kind string, user *domain.User, event *domain.Event) Message {
	return Message{
		Kind:       kind,
		UserID:     user.ID,
		Email:      user.Email,
		EventID:    event.ID,
		EventTitle: event.Title,
		StartsAt:   event.Date + " " + event.Time,
		SentAt:     n.now().UTC(),
	}
}

func (n *AMQPNotifier) publish(ctx context.Context, msg Message) {
	body, err := json.Marshal(msg)
	if err != nil {
		n.logger.Error("failed to marshal notification",
			logger.String("kind", msg.Kind),
			logger.String("error", err.Error()),
		)
		return
	}

	err = n.ch.PublishWithContext(ctx, "", n.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    msg.SentAt,
		Body:         body,
	})
	if err != nil {
		n.logger.Error("failed to publish notification",
			logger.String("kind", msg.Kind),
			logger.String("queue", n.queue),
			logger.String("error", err.Error()),
		)
	}
}
