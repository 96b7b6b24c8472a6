package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	e := newEnv()
	if err := execute(ctx, newRootCmd(e), e); err != nil {
		os.Exit(1)
	}
}
