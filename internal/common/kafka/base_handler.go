package kafka

import (
	"context"
	"time"

	dlqpublisher "github.com/mconway/firefly-iii/internal/common/dlq_publisher"
	"github.com/mconway/firefly-iii/internal/common/log"
	"github.com/mconway/firefly-iii/internal/common/metrics"
	"github.com/mconway/firefly-iii/internal/models"

	"github.com/Shopify/sarama"
	"go.uber.org/zap"
)

type BaseHandler struct {
	ClientID        string
	ConsumerMetrics *metrics.ConsumerMetrics
	DLQ             dlqpublisher.Publisher
	LogPrefix       string
}

func (b *BaseHandler) CreateLogField(msg *sarama.ConsumerMessage) []zap.Field {
	return []zap.Field{
		zap.Time("timestamp", msg.Timestamp),
		zap.String("topic", msg.Topic),
		zap.String("key", string(msg.Key)),
		zap.Int32("partition", msg.Partition),
		zap.Int64("offset", msg.Offset),
		zap.String("message-claimed", string(msg.Value)),
	}
}

func (b *BaseHandler) Ack(session sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) {
	session.MarkMessage(message, "")
	log.Debug(
		context.Background(),
		b.LogPrefix+"[ACK]",
		zap.String("topic", message.Topic),
		zap.Int32("partition", message.Partition),
		zap.Int64("offset", message.Offset),
	)
}

func (b *BaseHandler) Nack(ctx context.Context, session sarama.ConsumerGroupSession, message *sarama.ConsumerMessage, causeErr error) {
	logField := b.CreateLogField(message)
	logField = append(logField, zap.Error(causeErr))

	err := b.DLQ.Publish(models.FailedMessage{
		Payload:    message.Value,
		Timestamp:  message.Timestamp,
		CauseError: causeErr,
	})

	if err != nil {
		logField = append(logField, zap.String("dlq_status", "failed"))
		log.Error(ctx, b.LogPrefix+"[NACK-DLQ-FAILED]", logField...)
	} else {
		logField = append(logField, zap.String("dlq_status", "success"))
		log.Info(ctx, b.LogPrefix+"[NACK-DLQ-SUCCESS]", logField...)
	}

	session.MarkMessage(message, "")
	log.Warn(ctx, b.LogPrefix+"[NACK]", logField...)
}

func (b *BaseHandler) RecordMetrics(startTime time.Time, message *sarama.ConsumerMessage, err error) {
	if b.ConsumerMetrics != nil {
		b.ConsumerMetrics.GenerateMetrics(startTime, message, err)
	}
}
