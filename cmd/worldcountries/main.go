package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"worldcountries/internal/util/logx"
)

func main() {
	logx.InitFromEnv()
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		logx.Sync()
		os.Exit(1)
	}
	logx.Sync()
}
