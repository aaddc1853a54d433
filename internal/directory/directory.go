// Package directory manages accounts and their credentials.
package directory

import (
	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/internal/events"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("hwe.directory")

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
