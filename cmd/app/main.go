package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ordertracker/cmd"
	httpadapter "ordertracker/internal/adapters/in/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: config.LogLevel}))
	slog.SetDefault(logger)

	app, err := cmd.NewCompositionRoot(config, logger)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	e, err := newWebServer(app, config, logger)
	if err != nil {
		_ = app.Close(context.Background())
		log.Fatalf("Failed to build HTTP server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, e, app, config, logger); err != nil {
		log.Fatal(err)
	}
}

func newWebServer(app *cmd.CompositionRoot, config cmd.Config, logger *slog.Logger) (*echo.Echo, error) {
	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListOrdersQueryHandler(),
		logger,
	)

	return httpadapter.NewRouter(server, httpadapter.RouterConfig{StaticDir: config.StaticDir}, logger)
}

// run serves until ctx is cancelled, then drains in-flight requests and
// releases the store and publisher.
func run(ctx context.Context, e *echo.Echo, app *cmd.CompositionRoot, config cmd.Config, logger *slog.Logger) error {
	addr := fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server started", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		_ = app.Close(context.Background())
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down", "timeout", config.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	shutdownErr := e.Shutdown(shutdownCtx)
	return errors.Join(shutdownErr, app.Close(shutdownCtx))
}
