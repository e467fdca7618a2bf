package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"video-metadata-service/internal/adapters/inbound/rest"
	"video-metadata-service/internal/adapters/outbound/clock"
	"video-metadata-service/internal/adapters/outbound/identity"
	"video-metadata-service/internal/adapters/outbound/messaging"
	"video-metadata-service/internal/adapters/outbound/probe"
	"video-metadata-service/internal/adapters/outbound/repository"
	"video-metadata-service/internal/adapters/outbound/storage"
	"video-metadata-service/internal/core/ports"
	"video-metadata-service/internal/core/services"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	fmt.Println("🚀 Video Metadata Service starting...")

	// Start Prometheus metrics server
	go func() {
		addr := ":" + getEnv("METRICS_PORT", "9090")
		http.Handle("/metrics", promhttp.Handler())
		log.Printf("📊 Metrics server started on %s", addr)
		if err := http.ListenAndServe(addr, nil); err != nil {
			log.Printf("⚠️ Metrics server failed: %v", err)
		}
	}()

	// Create root context with cancellation for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Verify dependencies
	if _, err := exec.LookPath("ffprobe"); err != nil {
		log.Fatal("❌ Error: ffprobe not found in system")
	}

	// Initialize Adapters
	videoRepo := repository.NewMemoryVideoRepository()
	files := storage.NewFSStorage(getEnv("UPLOAD_DIR", "uploads"))
	prober := probe.NewFFprobeAdapter()

	// Upload event publishing is optional: without NATS the service
	// still serves requests, it just stops notifying workers.
	var events ports.EventPublisher
	natsURL := getEnv("NATS_URL", "nats://localhost:4222")
	publisher, err := messaging.NewNatsPublisherAdapter(natsURL)
	if err != nil {
		log.Printf("⚠️ Error connecting to NATS: %v. Upload events disabled.", err)
	} else {
		events = publisher
		defer publisher.Close()
	}

	// Initialize Core Service
	videos := services.NewVideoService(videoRepo, files, prober, events, clock.NewSystemClock(), identity.NewUUIDGenerator())

	mux := http.NewServeMux()
	rest.NewHandler(videos).Register(mux)

	port := getEnv("PORT", "5000")
	server := &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}

	go func() {
		log.Printf("✅ Server running on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	// Wait for termination signal
	<-ctx.Done()
	log.Println("👋 Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️ Shutdown error: %v", err)
	}

	log.Println("🛑 Server stopped.")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
