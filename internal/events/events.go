// Package events keeps the append-only audit trail of workflow mutations.
package events

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/internal/metrics"
	"github.com/homework-evaluation/backend/internal/workers"
)

// EventService records events and notifies handlers once they are committed.
type EventService struct {
	handlers []EventHandler
}

// NewEventService creates a new EventService.
func NewEventService(handlers ...EventHandler) *EventService {
	return &EventService{
		handlers: handlers,
	}
}

// Event is the event to be recorded.
type Event struct {
	Type EventType
	// AccountID is used when the context carries no actor.
	AccountID int
	Payload   map[string]any
}

// EventHandler is the handler for the event.
//
// Handlers run after the transaction commits and never see rolled back events.
type EventHandler interface {
	HandleEvent(ctx context.Context, event *ent.Event) error
}

// Record writes the event within tx, attributed to the actor in ctx.
// Handlers are triggered once tx commits.
func (s *EventService) Record(ctx context.Context, tx *ent.Tx, event Event) error {
	eventEntity, err := tx.Event.Create().
		SetType(string(event.Type)).
		SetAccountID(ActorFrom(ctx, event.AccountID)).
		SetPayload(event.Payload).
		SetTriggeredAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("record %s event: %w", event.Type, err)
	}

	tx.OnCommit(func(next ent.Committer) ent.Committer {
		return ent.CommitFunc(func(ctx context.Context, tx *ent.Tx) error {
			if err := next.Commit(ctx, tx); err != nil {
				return err
			}

			s.trigger(context.WithoutCancel(ctx), eventEntity)
			return nil
		})
	})

	return nil
}

func (s *EventService) trigger(ctx context.Context, event *ent.Event) {
	metrics.RecordEvent(event.Type)

	if len(s.handlers) == 0 {
		return
	}

	workers.Global.Go(func() {
		for _, handler := range s.handlers {
			if err := handler.HandleEvent(ctx, event); err != nil {
				slog.Error("failed to handle event", "type", event.Type, "error", err)
			}
		}
	})
}
