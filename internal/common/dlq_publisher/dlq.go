package dlqpublisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mconway/firefly-iii/internal/common/log"
	"github.com/mconway/firefly-iii/internal/common/metrics"
	"github.com/mconway/firefly-iii/internal/models"

	"github.com/Shopify/sarama"
	"go.uber.org/zap"
)

const prefixLogMessage = "[DLQ]"

type Publisher interface {
	Publish(message models.FailedMessage) error
}

type kafkaDlq struct {
	producer sarama.SyncProducer
	topic    string
	metrics  metrics.Metrics
}

func New(p sarama.SyncProducer, topic string, metrics metrics.Metrics) Publisher {
	return kafkaDlq{p, topic, metrics}
}

func (d kafkaDlq) Publish(message models.FailedMessage) (err error) {
	startTime := time.Now()
	defer func() {
		if d.metrics != nil {
			d.metrics.GetPublisherPrometheus().GenerateMetrics(startTime, d.topic, err)
		}
	}()

	msg, err := d.prepareMessage(message)
	if err != nil {
		log.Error(
			context.Background(),
			prefixLogMessage,
			zap.String("status", "prepare kafkaDlq message failed"),
			zap.Error(err))
		return err
	}

	_, _, err = d.producer.SendMessage(msg)
	if err != nil {
		log.Error(
			context.Background(),
			prefixLogMessage,
			zap.String("status", "publish kafkaDlq failed"),
			zap.Error(err))
		return err
	}

	log.Info(context.Background(),
		prefixLogMessage,
		zap.String("status", "success publish kafkaDlq message"),
		zap.Time("timestamp", message.Timestamp),
		zap.String("topic", d.topic),
	)

	return nil
}

func (d kafkaDlq) prepareMessage(message models.FailedMessage) (*sarama.ProducerMessage, error) {
	if message.CauseError != nil && message.Error == "" {
		message.Error = message.CauseError.Error()
	}

	msgByte, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	return &sarama.ProducerMessage{
		Topic: d.topic,
		Value: sarama.ByteEncoder(msgByte),
	}, nil
}
