package rulerun

import (
	"context"

	dlqpublisher "github.com/mconway/firefly-iii/internal/common/dlq_publisher"
	"github.com/mconway/firefly-iii/internal/common/graceful"
	kafkacommon "github.com/mconway/firefly-iii/internal/common/kafka"
	"github.com/mconway/firefly-iii/internal/common/log"
	"github.com/mconway/firefly-iii/internal/common/metrics"
	"github.com/mconway/firefly-iii/internal/common/retry"
	"github.com/mconway/firefly-iii/internal/config"
	"github.com/mconway/firefly-iii/internal/services"

	"go.uber.org/zap"
)

const logMessage = "[KAFKA-CONSUMER] [RULE-RUN] "

type Consumer struct {
	*kafkacommon.BaseConsumer
	rbs services.RuleBatchService
	dlq dlqpublisher.Publisher
}

func New(ctx context.Context, cfg config.Config, rbs services.RuleBatchService, dlq dlqpublisher.Publisher, metrics metrics.Metrics) (*Consumer, error) {
	c := &Consumer{
		rbs: rbs,
		dlq: dlq,
	}

	retryer := retry.NewExponentialBackOff(&cfg.ExponentialBackoff)
	handler := NewRuleRunHandler("", rbs, dlq, retryer, nil)

	baseConsumer, err := kafkacommon.NewBaseConsumer(kafkacommon.BaseConsumerConfig{
		Ctx:           ctx,
		Config:        cfg,
		Metrics:       metrics,
		Handler:       handler,
		LogPrefix:     logMessage,
		Topic:         cfg.MessageBroker.KafkaConsumer.TopicRuleRun,
		ConsumerGroup: cfg.MessageBroker.KafkaConsumer.ConsumerGroupRuleRun,
	})
	if err != nil {
		return nil, err
	}

	c.BaseConsumer = baseConsumer

	log.Info(ctx, logMessage, zap.String("status", "success init kafka consumer"))

	return c, nil
}

func (c *Consumer) Start() graceful.ProcessStarter {
	return c.BaseConsumer.Start()
}

func (c *Consumer) Stop() graceful.ProcessStopper {
	return c.BaseConsumer.Stop()
}
