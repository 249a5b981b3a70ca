package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/clubelmeta/CEM-SalonService/internal/domain"
	"github.com/clubelmeta/CEM-SalonService/pkg/metrics"
)

// Client издатель событий резерваций.
// События публикуются в долговечную очередь RabbitMQ; доставку
// писем выполняет фоновый потребитель.
type Client struct {
	url        string
	queue      string
	adminEmail string
	metrics    *metrics.Metrics
	log        Logger
}

// NewClient создает новый экземпляр издателя уведомлений.
// adminEmail получает копию писем о новых заявках; пустая строка
// отключает копию.
func NewClient(url string, queue string, adminEmail string, m *metrics.Metrics, log Logger) *Client {
	return &Client{
		url:        url,
		queue:      queue,
		adminEmail: adminEmail,
		metrics:    m,
		log:        log,
	}
}

// ReservationSubmitted публикует событие приёма заявки.
// Письмо уходит клиенту, персонал получает копию. Заявка уже создана:
// ошибка публикации возвращается вызывающему, который волен её
// проигнорировать.
func (c *Client) ReservationSubmitted(ctx context.Context, reservation *domain.Reservation, config *domain.VenueConfiguration) error {
	event := c.buildEvent(EventSubmitted, reservation, config)
	if c.adminEmail != "" {
		event.Recipients = append(event.Recipients, c.adminEmail)
	}
	return c.dispatch(ctx, event)
}

// ReservationConfirmed публикует событие подтверждения резервации.
// Подтверждение уже состоялось: ошибка публикации не откатывает переход.
func (c *Client) ReservationConfirmed(ctx context.Context, reservation *domain.Reservation, config *domain.VenueConfiguration) error {
	event := c.buildEvent(EventConfirmed, reservation, config)
	return c.dispatch(ctx, event)
}

// buildEvent собирает данные события из резервации и конфигурации
func (c *Client) buildEvent(kind EventKind, reservation *domain.Reservation, config *domain.VenueConfiguration) *ReservationEvent {
	event := &ReservationEvent{
		Kind:          kind,
		ReservationID: reservation.ID,
		ClientName:    reservation.ClientName,
		EventDate:     reservation.EventDate.Format(domain.DateFormat),
		Duration:      string(reservation.Duration),
		PartySize:     reservation.PartySize,
		Total:         reservation.TotalCents.String(),
		Recipients:    []string{reservation.ClientEmail},
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	}

	if !reservation.StartTime.IsZero() {
		event.StartTime = reservation.StartTime.String()
	}

	// Конфигурация может быть недоступна, письмо уходит без названия салона
	if config != nil {
		event.VenueName = config.VenueName
		event.Arrangement = string(config.Arrangement)
	}

	return event
}

// dispatch рендерит письмо и публикует событие, считая результат
func (c *Client) dispatch(ctx context.Context, event *ReservationEvent) error {
	if err := renderMessage(event); err != nil {
		c.countResult("failed")
		return err
	}

	if err := c.publish(ctx, event); err != nil {
		c.countResult("failed")
		return err
	}

	c.countResult("published")
	c.log.Info("notifier: %s event published for reservation id=%d", event.Kind, event.ReservationID)
	return nil
}

// publish отправляет событие в очередь одним соединением.
// Объём уведомлений небольшой, держать постоянное соединение незачем.
func (c *Client) publish(ctx context.Context, event *ReservationEvent) error {
	conn, err := amqp.Dial(c.url)
	if err != nil {
		return fmt.Errorf("%w: dial: %v", ErrPublishFailed, err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("%w: channel open: %v", ErrPublishFailed, err)
	}
	defer func() { _ = ch.Close() }()

	// Долговечная очередь, сообщения переживают перезапуск брокера
	if _, err := ch.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("%w: queue declare: %v", ErrPublishFailed, err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal event: %v", ErrInternal, err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", c.queue, false, false, pub); err != nil {
		return fmt.Errorf("%w: publish: %v", ErrPublishFailed, err)
	}

	return nil
}

func (c *Client) countResult(result string) {
	if c.metrics != nil {
		c.metrics.NotificationsTotal.WithLabelValues(result).Inc()
	}
}
