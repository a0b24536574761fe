package kafka_client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/spacesedan/researchflow/internal/models"
)

// ReportProducer publishes finished research reports keyed by report ID.
type ReportProducer struct {
	producer *kafka.Producer
	topic    string
}

func NewReportProducer(cfg KafkaConfig) (*ReportProducer, error) {
	slog.Info("[KafkaClient] Initializing Kafka Producer...", slog.String("broker", cfg.Broker))

	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers":   cfg.Broker,
		"security.protocol":   "PLAINTEXT",
		"api.version.request": "true",
		"enable.idempotence":  true,
		"acks":                "all",
	})
	if err != nil {
		return nil, fmt.Errorf("[KafkaClient] Failed to create producer: %w", err)
	}

	slog.Info("[KafkaClient] Kafka Producer initialized successfully")
	return &ReportProducer{producer: p, topic: cfg.Topic}, nil
}

// PublishReport sends report and waits for its delivery report.
func (rp *ReportProducer) PublishReport(ctx context.Context, report models.ResearchReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("[KafkaClient] failed to marshal report: %w", err)
	}

	topic := rp.topic
	delivery := make(chan kafka.Event, 1)
	err = rp.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Key:            []byte(report.ID),
		Value:          payload,
	}, delivery)
	if err != nil {
		return fmt.Errorf("[KafkaClient] failed to produce report: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, DELIVERY_TIMEOUT)
	defer cancel()

	select {
	case e := <-delivery:
		msg, ok := e.(*kafka.Message)
		if !ok {
			return fmt.Errorf("[KafkaClient] unexpected delivery event %v", e)
		}
		if msg.TopicPartition.Error != nil {
			return fmt.Errorf("[KafkaClient] delivery failed: %w", msg.TopicPartition.Error)
		}
	case <-ctx.Done():
		return fmt.Errorf("[KafkaClient] waiting for delivery: %w", ctx.Err())
	}

	slog.Info("[KafkaClient] Published research report",
		slog.String("topic", topic),
		slog.String("report_id", report.ID))
	return nil
}

func (rp *ReportProducer) Close() {
	slog.Info("[KafkaClient] Flushing Kafka producer before shutdown...")
	if remaining := rp.producer.Flush(FLUSH_TIMEOUT_MS); remaining > 0 {
		slog.Warn("[KafkaClient] Not all messages were delivered before shutdown",
			slog.Int("remaining", remaining))
	}
	rp.producer.Close()
	slog.Info("[KafkaClient] Kafka producer shut down")
}
