package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/ecocollect/waste-service/internal/storage"
)

const (
	defaultBrokers = "localhost:9092"
	groupID        = "notification-consumer-group"
)

// The consumer drains the notifications topic and prints each event as
// the outbound email would be sent. The original delivery channel was a
// console stub too, so this is the full dev-mode pipeline.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		brokers = defaultBrokers
	}

	log.Println("Starting notification consumer...")

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        strings.Split(brokers, ","),
		GroupID:        groupID,
		Topic:          storage.TopicNotifications,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	defer func() {
		log.Println("Closing Kafka reader...")
		if err := r.Close(); err != nil {
			log.Printf("Error closing Kafka reader: %v", err)
		}
	}()

	log.Printf("Consumer connected to topic '%s' on brokers %s", storage.TopicNotifications, brokers)

	for {
		select {
		case <-ctx.Done():
			log.Println("Shutdown signal received, stopping consumer.")
			return
		default:
			m, err := r.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					log.Println("Context cancelled, exiting message loop.")
					return
				}
				log.Printf("Error reading message: %v", err)
				time.Sleep(5 * time.Second)
				continue
			}

			var event storage.NotificationEvent
			if err := json.Unmarshal(m.Value, &event); err != nil {
				log.Printf("Skipping malformed event at offset %d: %v", m.Offset, err)
				continue
			}

			fmt.Printf("\n--- OUTBOUND EMAIL (DEV) ---\n")
			fmt.Printf("To user:   %s\n", event.UserID)
			fmt.Printf("Type:      %s\n", event.Type)
			fmt.Printf("Subject:   %s\n", event.Title)
			fmt.Printf("Body:      %s\n", event.Message)
			fmt.Printf("Offset:    %d\n", m.Offset)
			fmt.Println("--- END EMAIL ---")
		}
	}
}
