package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/kasperdew/stroom/filesystem"
	"github.com/kasperdew/stroom/http"
	"github.com/kasperdew/stroom/telemetry"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const name = "github.com/kasperdew/stroom"

var directory = flag.String("directory", "", "root directory for the /files routes")

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalln(err)
	}
}

func run(ctx context.Context) error {
	flag.Parse()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = shutdownTelemetry(context.Background())
	}()

	slog.SetDefault(otelslog.NewLogger(name))

	server := http.NewServer("stroom")
	server.Config.Directory = *directory

	var store filesystem.Filesystem
	if *directory != "" {
		local := filesystem.NewLocal(*directory)
		cache, err := filesystem.NewCache(local, *directory)
		if err != nil {
			slog.Warn("file cache disabled", "error", err)
			store = local
		} else {
			defer cache.Close()
			store = cache
		}
	}

	registerRoutes(&server.Router, store)

	serverErrCh := make(chan error, 1)

	go func() {
		slog.Info("listening", "addr", http.DefaultAddr)
		serverErrCh <- server.ListenAndServe(http.DefaultAddr)
	}()

	select {
	case err := <-serverErrCh:
		return err
	case <-ctx.Done():
		stop()
	}

	return server.Shutdown(context.Background())
}
