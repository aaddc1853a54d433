package main

import (
	"context"
	"log"
	"os"

	hwecli "github.com/homework-evaluation/backend/cli"
	"github.com/homework-evaluation/backend/internal/deps"
	"github.com/homework-evaluation/backend/internal/events"
)

func main() {
	cfg, err := deps.Config()
	if err != nil {
		log.Fatal(err)
	}

	entClient, err := deps.EntClient(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer entClient.Close()

	c := hwecli.NewContext(entClient, events.NewEventService())

	rootCommand := newRootCommand(
		newMigrateCommand(c),
		newSetupCommand(c, cfg.Admin),
		newCreateSubjectCommand(c),
		newCreateAccountCommand(c),
		newDeleteAccountCommand(c),
		newSeedCommand(c),
	)

	if err := rootCommand.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
