package main

import (
	"context"
	"time"

	"github.com/niksmo/shopfront/config"
	"github.com/niksmo/shopfront/internal/app"
	"github.com/niksmo/shopfront/pkg/sigctx"
)

func main() {
	sigCtx, stopFn := sigctx.NotifyContext()
	defer stopFn()

	cfg := config.Load()
	cfg.Print()

	a := app.New(sigCtx, cfg)
	a.Run(stopFn)

	<-sigCtx.Done()

	closeCtx, cancelTimeout := context.WithTimeout(
		context.Background(), 10*time.Second,
	)
	defer cancelTimeout()

	a.Close(closeCtx)
}
