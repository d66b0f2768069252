package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"argus/internal/cli"
	"argus/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(cli.DefaultServiceFactory, os.Stdin, os.Stdout)
	if err := root.Execute(ctx, os.Args[1:]); err != nil {
		errHandler := cli.NewErrorHandler()
		logging.Debugf("command failed (%s): %v", errHandler.GetErrorCode(err), err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", errHandler.HandleSimple(err))
		stop()
		os.Exit(1)
	}
}
