package kafka_client

import "github.com/spacesedan/researchflow/config"

type KafkaConfig struct {
	Broker string
	Topic  string
}

func GetKafkaConfig(cfg *config.Config) KafkaConfig {
	topic := cfg.KafkaTopic
	if topic == "" {
		topic = KAFKA_TOPIC_RESEARCH_REPORTS
	}
	return KafkaConfig{
		Broker: cfg.KafkaBroker,
		Topic:  topic,
	}
}
