package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Triva-Elevate/triva-datapublishagent/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	if err := newRootCmd(buildInfo).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
