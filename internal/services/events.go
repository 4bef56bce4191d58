package services

import (
	"context"
	"encoding/json"
	"time"

	"stylecurator/internal/logger"
)

// Routing keys of interaction events.
const (
	EventProductLiked = "product.liked"
	EventOutfitsMade  = "recommendation.generated"
)

// EventPublisher sends interaction events to a broker. *rabbitmq.Client implements it.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}

// InteractionEvent is the body of every published event.
type InteractionEvent struct {
	Type       string    `json:"type"`
	ProductID  string    `json:"product_id,omitempty"`
	TrendScore int       `json:"trend_score,omitempty"`
	RunID      string    `json:"run_id,omitempty"`
	Outfits    int       `json:"outfits,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// publish is best effort: events are skipped when no publisher is configured
// and failures are only logged.
func publish(ctx context.Context, pub EventPublisher, log *logger.Logger, event InteractionEvent) {
	if pub == nil {
		log.Debug("event publisher not configured, skipping event")
		return
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Error(err, "failed to marshal event")
		return
	}
	if err := pub.Publish(ctx, event.Type, body); err != nil {
		log.With("event", event.Type).Error(err, "failed to publish event")
	}
}
