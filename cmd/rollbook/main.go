package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rollbook/rollbook/cmd/rollbook/serve"
	"github.com/rollbook/rollbook/cmd/rollbook/students"
	"github.com/rollbook/rollbook/cmd/rollbook/users"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "rollbook",
		Usage: "Keep a student roster behind a password-protected web UI",
		Commands: []*cli.Command{
			serve.Cmd(),
			users.Cmd(),
			students.Cmd(),
		},
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	err := app.RunContext(ctx, os.Args)
	if err != nil {
		log.Error().Err(err).Msg("Application failed")
	}
}
