package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/fx"
)

// run drives the fx app until either the signal context fires or the app
// shuts itself down, then stops it with a fresh context so cleanup is not
// cut short by the already-cancelled signal context.
func run(ctx context.Context, app *fx.App) {
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "joyeria: start failed: %v\n", err)
		os.Exit(1)
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "joyeria: shutdown failed: %v\n", err)
		os.Exit(1)
	}
}
