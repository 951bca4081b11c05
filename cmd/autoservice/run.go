package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/fx"
)

// run starts the application and blocks until a signal arrives or fx requests shutdown.
func run(ctx context.Context, app *fx.App) {
	startCtx, cancel := context.WithTimeout(ctx, app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		fmt.Fprintf(os.Stderr, "autoservice: start failed: %v\n", err)
		os.Exit(1)
	}

	select {
	case <-ctx.Done():
	case sig := <-app.Wait():
		if sig.ExitCode != 0 {
			fmt.Fprintf(os.Stderr, "autoservice: shutdown requested with code %d\n", sig.ExitCode)
		}
	}

	stopCtx, cancelStop := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil {
		fmt.Fprintf(os.Stderr, "autoservice: stop failed: %v\n", err)
		os.Exit(1)
	}
}
