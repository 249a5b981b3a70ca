package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Consumer фоновый потребитель очереди уведомлений.
// Каждое событие записывается в журнал отправки: строка на письмо,
// по образцу журнала исходящей почты. Сбойное сообщение отклоняется
// без повторной постановки, чтобы не зациклить очередь.
type Consumer struct {
	url      string
	queue    string
	auditLog string
	log      Logger
}

// NewConsumer создает новый экземпляр потребителя уведомлений
func NewConsumer(url string, queue string, auditLog string, log Logger) *Consumer {
	return &Consumer{
		url:      url,
		queue:    queue,
		auditLog: auditLog,
		log:      log,
	}
}

// Run подключается к брокеру и потребляет события до отмены контекста.
// При обрыве соединения переподключается с экспоненциальной задержкой.
func (c *Consumer) Run(ctx context.Context) {
	backoff := time.Second

	for {
		select {
		case <-ctx.Done():
			c.log.Info("notification consumer: stopped")
			return
		default:
		}

		conn, err := amqp.Dial(c.url)
		if err != nil {
			c.log.Warn("notification consumer: dial failed: %v; retrying in %s", err, backoff)
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if err := c.consumeLoop(ctx, conn); err != nil {
			c.log.Warn("notification consumer: consume loop ended: %v; reconnecting", err)
		}
		_ = conn.Close()
	}
}

func (c *Consumer) consumeLoop(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		c.log.Warn("notification consumer: set QoS failed: %v", err)
	}

	if _, err := ch.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return fmt.Errorf("deliveries channel closed")
			}
			if err := c.handleMessage(d.Body); err != nil {
				c.log.Error("notification consumer: handle message failed: %v", err)
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

// handleMessage записывает событие в журнал отправки
func (c *Consumer) handleMessage(body []byte) error {
	var event ReservationEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(c.auditLog), 0o755); err != nil {
		return fmt.Errorf("mkdir audit dir: %w", err)
	}

	f, err := os.OpenFile(c.auditLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	recipients := ""
	for i, r := range event.Recipients {
		if i > 0 {
			recipients += ","
		}
		recipients += r
	}

	line := fmt.Sprintf("[%s] %s reservation_id=%d | to=%s | subject=%q | venue=%q | date=%s | total=%s\n",
		event.OccurredAt, event.Kind, event.ReservationID, recipients, event.Subject, event.VenueName, event.EventDate, event.Total)

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write audit log: %w", err)
	}

	c.log.Info("notification consumer: recorded %s event for reservation id=%d", event.Kind, event.ReservationID)
	return nil
}
