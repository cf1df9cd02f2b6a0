package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/fx"

	"github.com/hoseki-store/joyeria/internal/di"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The signal context is handed to the container so long-running
	// components (kafka producer, shipment dispatcher) can tie their
	// lifetime to it.
	app := fx.New(di.Module(
		fx.Provide(func() context.Context { return ctx }),
	))

	run(ctx, app)
}
