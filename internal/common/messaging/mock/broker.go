package mock

import (
	"testing"

	"github.com/Shopify/sarama"
)

// NewMockBroker starts an in process kafka broker that answers metadata and
// coordinator requests for the given group and topic.
func NewMockBroker(t *testing.T, group, topic string) *sarama.MockBroker {
	t.Helper()

	broker := sarama.NewMockBroker(t, 0)
	broker.SetHandlerByMap(map[string]sarama.MockResponse{
		"MetadataRequest": sarama.NewMockMetadataResponse(t).
			SetBroker(broker.Addr(), broker.BrokerID()).
			SetLeader(topic, 0, broker.BrokerID()),
		"FindCoordinatorRequest": sarama.NewMockFindCoordinatorResponse(t).
			SetCoordinator(sarama.CoordinatorGroup, group, broker),
	})

	return broker
}
