package kafka_client

import (
	"testing"

	"github.com/spacesedan/researchflow/config"
	"github.com/stretchr/testify/assert"
)

func TestGetKafkaConfig(t *testing.T) {
	cfg := GetKafkaConfig(&config.Config{KafkaBroker: "kafka:9092"})
	assert.Equal(t, KafkaConfig{Broker: "kafka:9092", Topic: KAFKA_TOPIC_RESEARCH_REPORTS}, cfg)

	cfg = GetKafkaConfig(&config.Config{KafkaBroker: "kafka:9092", KafkaTopic: "custom"})
	assert.Equal(t, "custom", cfg.Topic)
}
