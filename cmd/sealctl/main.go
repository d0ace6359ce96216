package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/MKhiriev/go-sealed-prefs/internal/app"
	"github.com/MKhiriev/go-sealed-prefs/internal/cli"
	"github.com/MKhiriev/go-sealed-prefs/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)); err != nil {
		fmt.Fprintf(os.Stderr, "%s %s: %v\n", color.RedString("✗"), app.UserMessage(err), err)
		stop()
		os.Exit(1)
	}
}
