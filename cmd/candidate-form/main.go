// Command candidate-form collects a candidate application from the terminal
// and posts it to the assignment endpoint. It can also print the form as HTML
// and check a values file without submitting.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(defaultApp()).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
