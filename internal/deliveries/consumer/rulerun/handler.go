package rulerun

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mconway/firefly-iii/internal/common"
	dlqpublisher "github.com/mconway/firefly-iii/internal/common/dlq_publisher"
	kafkacommon "github.com/mconway/firefly-iii/internal/common/kafka"
	"github.com/mconway/firefly-iii/internal/common/log"
	"github.com/mconway/firefly-iii/internal/common/metrics"
	"github.com/mconway/firefly-iii/internal/common/retry"
	"github.com/mconway/firefly-iii/internal/models"
	"github.com/mconway/firefly-iii/internal/services"

	"github.com/Shopify/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RuleRunHandler struct {
	kafkacommon.BaseHandler
	rbs     services.RuleBatchService
	ebRetry retry.Retryer
}

func NewRuleRunHandler(
	clientID string,
	rbs services.RuleBatchService,
	dlq dlqpublisher.Publisher,
	ebRetry retry.Retryer,
	consumerMetrics *metrics.ConsumerMetrics,
) sarama.ConsumerGroupHandler {
	return &RuleRunHandler{
		BaseHandler: kafkacommon.BaseHandler{
			ClientID:        clientID,
			ConsumerMetrics: consumerMetrics,
			DLQ:             dlq,
			LogPrefix:       logMessage,
		},
		rbs:     rbs,
		ebRetry: ebRetry,
	}
}

func (h RuleRunHandler) Setup(_ sarama.ConsumerGroupSession) error {
	return nil
}

func (h RuleRunHandler) Cleanup(_ sarama.ConsumerGroupSession) error {
	return nil
}

func (h RuleRunHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}

			ctx := log.ContextWithCorrelationID(session.Context(), uuid.NewString())
			start := time.Now()
			logField := h.CreateLogField(message)

			var operationErr error
			operation := func() error {
				operationErr = h.handler(ctx, message)
				if operationErr != nil {
					log.Warn(ctx, logMessage, append(logField,
						zap.Duration("response-time", time.Since(start)),
						zap.Error(operationErr))...)

					if isPermanent(operationErr) {
						return h.ebRetry.StopRetryWithErr(operationErr)
					}
					return operationErr
				}
				return nil
			}
			dlqCallback := func() error {
				h.Nack(ctx, session, message, operationErr)
				return operationErr
			}

			if err := h.ebRetry.Retry(ctx, operation, dlqCallback); err != nil {
				log.Warn(ctx, logMessage, append(logField,
					zap.Duration("response-time", time.Since(start)),
					zap.Error(err))...)
				continue
			}

			log.Info(ctx, logMessage, append(logField,
				zap.Duration("response-time", time.Since(start)))...)
			h.Ack(session, message)
		case <-session.Context().Done():
			return nil
		}
	}
}

// isPermanent reports whether retrying can ever succeed. A run that is
// already finished or a request pointing at a foreign group stays broken no
// matter how often it is replayed.
func isPermanent(err error) bool {
	return errors.Is(err, common.ErrRunAlreadyFinished) ||
		errors.Is(err, common.ErrRuleGroupNotFound) ||
		errors.Is(err, common.ErrRuleGroupNotOwned)
}

func (h RuleRunHandler) processMessage(ctx context.Context, message *sarama.ConsumerMessage) error {
	const logMsg = "[PROCESS-MESSAGE]"

	var req models.RuleRunRequest
	if err := json.Unmarshal(message.Value, &req); err != nil {
		log.Warn(ctx, logMsg, append(h.CreateLogField(message), zap.Error(err))...)
		return fmt.Errorf("error unmarshal rule run request: %w", err)
	}

	if req.TriggeredBy == "" {
		req.TriggeredBy = models.RuleRunTriggeredByQueue
	}

	if err := h.rbs.ExecuteRuleGroup(ctx, req); err != nil {
		err = fmt.Errorf("unable to execute rule group: %w", err)
		log.Warn(ctx, logMsg, append(h.CreateLogField(message), zap.Error(err))...)
		return err
	}

	log.Info(ctx, logMsg, h.CreateLogField(message)...)
	return nil
}

func (h RuleRunHandler) handler(ctx context.Context, message *sarama.ConsumerMessage) (err error) {
	startTime := time.Now()
	err = h.processMessage(ctx, message)
	h.RecordMetrics(startTime, message, err)
	return
}
