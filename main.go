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

	"github.com/arthurdotwork/chatroom/internal/adapters/primary/rest"
	"github.com/arthurdotwork/chatroom/internal/adapters/primary/ws"
	"github.com/arthurdotwork/chatroom/internal/adapters/secondary/store"
	"github.com/arthurdotwork/chatroom/internal/domain"
	"github.com/arthurdotwork/chatroom/internal/infrastructure/config"
	"github.com/arthurdotwork/chatroom/internal/infrastructure/log"
	"github.com/arthurdotwork/chatroom/internal/infrastructure/runner"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log.Config(ctx)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sig
		slog.DebugContext(ctx, "received signal, initiating shutdown")
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.ErrorContext(ctx, "error running server", "error", err)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(env("CONFIG_PATH", ""))
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	fileStore, err := store.Open(cfg.Storage.DataDir)
	if err != nil {
		return fmt.Errorf("store.Open: %w", err)
	}

	registry := domain.NewSessionRegistry()
	notifier := domain.NewFanout(registry)

	userService := domain.NewUserService(fileStore, notifier)
	messageService := domain.NewMessageService(fileStore, fileStore, notifier)
	roomService := domain.NewRoomService(fileStore, fileStore, fileStore, notifier)
	sessionService := domain.NewSessionService(registry, notifier)

	wsHandler := ws.NewHandler(sessionService, ws.Config{
		MaxMessageSize: cfg.WebSocket.MaxMessageSize,
		SendBuffer:     cfg.WebSocket.SendBuffer,
		WriteTimeout:   cfg.WebSocket.WriteTimeout,
		PongTimeout:    cfg.WebSocket.PongTimeout,
		PingInterval:   cfg.WebSocket.PingInterval,
	})

	server := rest.NewServer(userService, messageService, roomService)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: server.Router(cfg.Server.AllowedOrigins, wsHandler.Handle),
	}

	r := runner.New(ctx)
	r.Go(func() error {
		errCh := make(chan error, 1)

		go func() {
			slog.InfoContext(ctx, "starting server", "address", cfg.Server.Addr)

			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("srv.ListenAndServe: %w", err)
				return
			}

			errCh <- nil
		}()

		select {
		case <-r.Context().Done():
			slog.DebugContext(ctx, "context done, stopping server")
			return r.Context().Err()
		case err := <-errCh:
			return err
		}
	})

	if err := r.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("runner.Wait: %w", err)
	}

	slog.DebugContext(ctx, "initiating server shutdown")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	sessionService.Shutdown(shutdownCtx)

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "error shutting down server", "error", err)
		return fmt.Errorf("srv.Shutdown: %w", err)
	}

	return nil
}

func env(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}
