package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// CampaignStartPayload is what hits the queue when a campaign goes ACTIVE.
// The consumer fans it out to the external channel engine.
type CampaignStartPayload struct {
	CampaignID   string `json:"campaign_id"`
	UserID       string `json:"user_id"`
	CampaignName string `json:"campaign_name"`
	Offer        string `json:"offer"`
	CalendarLink string `json:"calendar_link,omitempty"`
	LeadCount    int    `json:"lead_count"`
	Origin       string `json:"origin"` // API, RETRY
}

type ProducerInterface interface {
	PublishCampaignStart(ctx context.Context, payload CampaignStartPayload) error
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Conn: conn, Ch: ch}
}

func (p *RabbitMQProducer) PublishCampaignStart(ctx context.Context, payload CampaignStartPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshalling payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // survives broker restarts
		},
	)
	if err != nil {
		return fmt.Errorf("publishing to RabbitMQ: %w", err)
	}

	return nil
}
