// Package ledger tracks the answer and grade of every submission.
package ledger

import (
	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/internal/events"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("hwe.ledger")

type Context struct {
	entClient    *ent.Client
	eventService *events.EventService
}

func NewContext(entClient *ent.Client, eventService *events.EventService) *Context {
	return &Context{
		entClient:    entClient,
		eventService: eventService,
	}
}
