package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/inamate/easypaint/internal/config"
	"github.com/inamate/easypaint/internal/export"
	mw "github.com/inamate/easypaint/internal/middleware"
	"github.com/inamate/easypaint/internal/remote"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)

	hub := remote.NewHub()
	go hub.Run()

	wsHandler := remote.NewHandler(hub, remote.HandlerOptions{
		OriginPatterns: cfg.OriginPatterns(),
		SampleScene:    cfg.SampleScene,
		Logger:         logger,
	})
	exportHandler := export.NewHandler(hub, export.Options{
		Width:      cfg.CanvasWidth,
		Height:     cfg.CanvasHeight,
		Background: cfg.ExportBackground,
		Filename:   cfg.ExportFilename,
	})

	r := newRouter(cfg, wsHandler, exportHandler)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server")
		hub.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("server starting", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func newRouter(cfg *config.Config, ws http.Handler, exp *export.Handler) *mux.Router {
	r := mux.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS(cfg.Origins()))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Image export of a live session
	r.HandleFunc("/sessions/{sessionId}/export.png", exp.ExportPNG).Methods("GET", "OPTIONS")
	r.HandleFunc("/sessions/{sessionId}/export.pdf", exp.ExportPDF).Methods("GET", "OPTIONS")

	// WebSocket endpoint
	r.Handle("/ws/editor", ws)

	return r
}
