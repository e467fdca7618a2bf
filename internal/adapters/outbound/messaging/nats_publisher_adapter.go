package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/nats-io/nats.go"
)

// NatsPublisherAdapter emits an event on JetStream subject "upload" for
// every stored video so downstream processing workers can pick it up.
type NatsPublisherAdapter struct {
	nc *nats.Conn
	js nats.JetStreamContext
}

type uploadEvent struct {
	VideoID  string `json:"video_id"`
	Filename string `json:"filename"`
}

func NewNatsPublisherAdapter(url string) (*NatsPublisherAdapter, error) {
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("error connecting to NATS: %w", err)
	}

	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("error getting JetStream context: %w", err)
	}

	return &NatsPublisherAdapter{
		nc: nc,
		js: js,
	}, nil
}

func (a *NatsPublisherAdapter) PublishUploaded(ctx context.Context, videoID, filename string) error {
	data, err := json.Marshal(uploadEvent{VideoID: videoID, Filename: filename})
	if err != nil {
		return fmt.Errorf("error marshaling upload event: %w", err)
	}

	if _, err := a.js.Publish("upload", data, nats.Context(ctx)); err != nil {
		return fmt.Errorf("error publishing upload event: %w", err)
	}
	return nil
}

func (a *NatsPublisherAdapter) Close() {
	if err := a.nc.Drain(); err != nil {
		log.Printf("⚠️ Error draining NATS connection: %v", err)
	}
}
