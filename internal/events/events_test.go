package events_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/internal/events"
	"github.com/homework-evaluation/backend/internal/store"
	"github.com/homework-evaluation/backend/internal/testhelper"
	"github.com/homework-evaluation/backend/internal/workers"
	"github.com/posthog/posthog-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	mu     sync.Mutex
	events []*ent.Event
}

func (h *recordingHandler) HandleEvent(ctx context.Context, event *ent.Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.events = append(h.events, event)
	return nil
}

func (h *recordingHandler) Events() []*ent.Event {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.events
}

func TestRecord_Committed(t *testing.T) {
	client := testhelper.NewEntSqliteClient(t)
	handler := &recordingHandler{}
	service := events.NewEventService(handler)
	ctx := context.Background()

	err := store.WithTx(ctx, client, func(tx *ent.Tx) error {
		return service.Record(ctx, tx, events.Event{
			Type:      events.EventTypeSubjectCreated,
			AccountID: 7,
			Payload:   map[string]any{"code": "MATH"},
		})
	})
	require.NoError(t, err)
	workers.Global.Wait()

	stored, err := client.Event.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, string(events.EventTypeSubjectCreated), stored.Type)
	assert.Equal(t, 7, stored.AccountID)
	assert.Equal(t, "MATH", stored.Payload["code"])

	require.Len(t, handler.Events(), 1)
	assert.Equal(t, stored.ID, handler.Events()[0].ID)
}

func TestRecord_RolledBack(t *testing.T) {
	client := testhelper.NewEntSqliteClient(t)
	handler := &recordingHandler{}
	service := events.NewEventService(handler)
	ctx := context.Background()

	errAbort := errors.New("abort")
	err := store.WithTx(ctx, client, func(tx *ent.Tx) error {
		if err := service.Record(ctx, tx, events.Event{Type: events.EventTypeSubjectDeleted, AccountID: 1}); err != nil {
			return err
		}
		return errAbort
	})
	require.ErrorIs(t, err, errAbort)
	workers.Global.Wait()

	count, err := client.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, handler.Events(), "handlers must not see rolled back events")
}

type fakePosthog struct {
	posthog.Client

	mu       sync.Mutex
	messages []posthog.Message
}

func (f *fakePosthog) Enqueue(msg posthog.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.messages = append(f.messages, msg)
	return nil
}

func TestPosthogForwarder(t *testing.T) {
	client := testhelper.NewEntSqliteClient(t)
	ph := &fakePosthog{}
	service := events.NewEventService(events.NewPosthogForwarder(ph))
	ctx := context.Background()

	err := store.WithTx(ctx, client, func(tx *ent.Tx) error {
		return service.Record(ctx, tx, events.Event{
			Type:      events.EventTypeSubmissionGraded,
			AccountID: 3,
			Payload:   map[string]any{"grade": 2},
		})
	})
	require.NoError(t, err)
	workers.Global.Wait()

	ph.mu.Lock()
	defer ph.mu.Unlock()

	require.Len(t, ph.messages, 1)
	capture, ok := ph.messages[0].(posthog.Capture)
	require.True(t, ok)
	assert.Equal(t, "3", capture.DistinctId)
	assert.Equal(t, string(events.EventTypeSubmissionGraded), capture.Event)
	assert.EqualValues(t, 2, capture.Properties["grade"])
}

func TestRecord_Actor(t *testing.T) {
	client := testhelper.NewEntSqliteClient(t)
	service := events.NewEventService()

	tests := []struct {
		name     string
		ctx      context.Context
		fallback int
		want     int
	}{
		{name: "actor in context", ctx: events.WithActor(context.Background(), 42), fallback: 3, want: 42},
		{name: "no actor", ctx: context.Background(), fallback: 3, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var recorded int
			err := store.WithTx(tt.ctx, client, func(tx *ent.Tx) error {
				if err := service.Record(tt.ctx, tx, events.Event{Type: events.EventTypeAnswerSubmitted, AccountID: tt.fallback}); err != nil {
					return err
				}
				last, err := tx.Event.Query().Order(ent.Desc("id")).First(tt.ctx)
				if err != nil {
					return err
				}
				recorded = last.AccountID
				return nil
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, recorded)
		})
	}
}
