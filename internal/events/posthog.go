package events

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/homework-evaluation/backend/ent"
	"github.com/posthog/posthog-go"
)

// PosthogForwarder sends committed events to PostHog.
type PosthogForwarder struct {
	posthogClient posthog.Client
}

// NewPosthogForwarder creates a new PosthogForwarder.
func NewPosthogForwarder(posthogClient posthog.Client) *PosthogForwarder {
	return &PosthogForwarder{posthogClient: posthogClient}
}

func (f *PosthogForwarder) HandleEvent(ctx context.Context, event *ent.Event) error {
	properties := posthog.NewProperties()
	for key, value := range event.Payload {
		properties.Set(key, value)
	}

	slog.Debug("sending event to PostHog", "event_type", event.Type, "account_id", event.AccountID)

	return f.posthogClient.Enqueue(posthog.Capture{
		DistinctId: strconv.Itoa(event.AccountID),
		Event:      event.Type,
		Timestamp:  event.TriggeredAt,
		Properties: properties,
	})
}

var _ EventHandler = (*PosthogForwarder)(nil)
