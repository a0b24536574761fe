package kafka_client

import "time"

const (
	KAFKA_TOPIC_RESEARCH_REPORTS = "research.reports" // completed research runs
)

const (
	DELIVERY_TIMEOUT = 10 * time.Second
	FLUSH_TIMEOUT_MS = 5000
)
