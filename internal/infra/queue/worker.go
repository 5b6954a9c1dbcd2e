package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/ligue-outreach/internal/infra/integration/automation"
)

// EngineTrigger is the slice of the automation client the worker needs.
type EngineTrigger interface {
	TriggerEngine(ctx context.Context, input automation.TriggerEngineInput) error
}

// Worker drains campaign.start events and pokes the external channel
// engine for each one. It never touches the database.
type Worker struct {
	Channel *amqp.Channel
	Engine  EngineTrigger
}

func NewWorker(ch *amqp.Channel, engine EngineTrigger) *Worker {
	return &Worker{Channel: ch, Engine: engine}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer tag
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		log.Fatalf("[WORKER] failed to register consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload CampaignStartPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("[WORKER] malformed message, dropping to DLQ: %s", err)
				d.Nack(false, false)
				continue
			}

			log.Printf("[WORKER] campaign start received: %s (%d leads)", payload.CampaignName, payload.LeadCount)

			err := w.Engine.TriggerEngine(context.Background(), automation.TriggerEngineInput{
				CampaignID: payload.CampaignID,
				UserID:     payload.UserID,
			})
			if err != nil {
				// Engine webhook is best-effort; the DLQ keeps the event
				// around for manual replay.
				log.Printf("[WORKER] engine trigger failed for %s: %s", payload.CampaignID, err)
				d.Nack(false, false)
				continue
			}

			log.Printf("[WORKER] engine triggered for campaign %s", payload.CampaignID)
			d.Ack(false)
		}
	}()

	log.Printf(" [*] Worker waiting on queue '%s'", queueName)
	<-forever
}
