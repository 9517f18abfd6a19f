package setup

import (
	dlqpublisher "github.com/mconway/firefly-iii/internal/common/dlq_publisher"
	"github.com/mconway/firefly-iii/internal/common/publisher"
)

type PublisherClient struct {
	RunRequest publisher.Publisher
	RunEvents  publisher.Publisher
	RuleRunDLQ dlqpublisher.Publisher
}
