package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"match-gateway/auth"
	"match-gateway/gateway"
	"match-gateway/internal"
	"match-gateway/repositories"
	"match-gateway/runtime"
	"match-gateway/services"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes
// error reporting, so 'defer' cleanup (database close) always executes and the
// wiring stays testable outside of main.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Collaborators & shared state
	validator := auth.NewValidator(config.AuthSecret)
	chats := repositories.NewChatRepository(db, log)
	messages := repositories.NewMessageRepository(db, log)

	registry := runtime.NewRegistry()
	presence := runtime.NewPresence(log, registry)
	table := runtime.NewCallTable()
	coordinator := runtime.NewCoordinator(log, table, registry, chats)
	relay := services.NewMessageRelay(log, messages, chats, registry)

	dispatcher := gateway.NewDispatcher(log, relay, coordinator, presence, registry, chats)
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	server := gateway.NewServer(log, address, config.ConnectionBufferSize, config.SinkTimeout,
		validator, registry, presence, chats, coordinator, dispatcher)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Operational loops
	stats := func() map[string]any {
		return map[string]any{
			"connections": len(registry.Snapshot()),
			"activeCalls": table.Len(),
		}
	}
	if config.DebugPort != nil {
		internal.StartDebugServer(log, db, *config.DebugPort, stats)
	}
	go func() {
		_ = internal.NewHeartbeat(log, config.HeartbeatInterval, stats).Run(ctx)
	}()

	// 6. Serve until stop or error
	errChan := make(chan error, 1)
	go func() {
		if err := server.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 7. Final Cleanup
	if err := server.Shutdown(context.Background()); err != nil {
		log.Warn("Gateway shutdown", "err", err)
	}
	log.Info("Program stopped cleanly")

	return nil
}
