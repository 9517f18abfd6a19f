package consumer

import (
	"context"
	"fmt"

	"github.com/mconway/firefly-iii/cmd/setup"
	dlqpublisher "github.com/mconway/firefly-iii/internal/common/dlq_publisher"
	"github.com/mconway/firefly-iii/internal/common/graceful"
	"github.com/mconway/firefly-iii/internal/common/publisher"
	"github.com/mconway/firefly-iii/internal/config"
	"github.com/mconway/firefly-iii/internal/deliveries/consumer/rulerun"
	"github.com/mconway/firefly-iii/internal/services"
)

func NewKafkaConsumer(
	ctx context.Context,
	consumerName string,
	conf config.Config,
	svc *services.Services,
	contract *setup.Setup,
) (consumerProcess graceful.ProcessStartStopper, stoppers []graceful.ProcessStopper, err error) {
	switch consumerName {
	case "rule_run":
		producer, errProducer := publisher.NewKafkaSyncProducer(conf.MessageBroker.KafkaConsumer.Brokers)
		if errProducer != nil {
			err = fmt.Errorf("failed setup kafka dlq publisher : %w", errProducer)
			return
		}

		stoppers = append(stoppers, func(ctx context.Context) error { return producer.Close() })

		ruleRunDlq := dlqpublisher.New(producer, conf.MessageBroker.KafkaConsumer.TopicRuleRunDLQ, contract.Metrics)

		consumerProcess, err = rulerun.New(ctx, conf, svc.RuleBatch, ruleRunDlq, contract.Metrics)
	default:
		err = fmt.Errorf("consumer type name for %s not found", consumerName)
	}

	return
}
