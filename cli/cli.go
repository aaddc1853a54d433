// Package cli provides the CLI service for the backend.
package cli

import (
	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/internal/catalog"
	"github.com/homework-evaluation/backend/internal/directory"
	"github.com/homework-evaluation/backend/internal/events"
)

// Context is the context for the CLI. It works on the store directly,
// without going through the access gate.
type Context struct {
	entClient *ent.Client
	directory *directory.Context
	catalog   *catalog.Context
}

// NewContext creates a new Context.
func NewContext(entClient *ent.Client, eventService *events.EventService) *Context {
	return &Context{
		entClient: entClient,
		directory: directory.NewContext(entClient, eventService),
		catalog:   catalog.NewContext(entClient, eventService),
	}
}
