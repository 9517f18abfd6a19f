package publisher

import (
	"time"

	"github.com/Shopify/sarama"
)

const kafkaNetTimeout = 2 * time.Second

type Option func(*sarama.Config)

// NewKafkaSyncProducer builds a sync producer with short network
// timeouts so a broker outage fails fast instead of stalling callers.
func NewKafkaSyncProducer(brokers []string, opts ...Option) (sarama.SyncProducer, error) {
	saramaCfg := sarama.NewConfig()
	saramaCfg.Producer.Return.Successes = true
	saramaCfg.Producer.Return.Errors = true
	saramaCfg.Producer.Timeout = kafkaNetTimeout
	saramaCfg.Net.DialTimeout = kafkaNetTimeout
	saramaCfg.Net.ReadTimeout = kafkaNetTimeout
	saramaCfg.Net.WriteTimeout = kafkaNetTimeout

	for _, opt := range opts {
		opt(saramaCfg)
	}

	return sarama.NewSyncProducer(brokers, saramaCfg)
}

// WithPartitioner overrides the default hash partitioner.
func WithPartitioner(constructor sarama.PartitionerConstructor) Option {
	return func(cfg *sarama.Config) {
		cfg.Producer.Partitioner = constructor
	}
}
