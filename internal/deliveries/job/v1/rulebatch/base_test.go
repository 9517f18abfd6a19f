package rulebatch

import (
	"os"
	"testing"

	"github.com/mconway/firefly-iii/internal/common/log"
	"github.com/mconway/firefly-iii/internal/services/mock"

	"go.uber.org/mock/gomock"
)

type testRuleBatchHelper struct {
	mockCtrl             *gomock.Controller
	mockRuleBatchService *mock.MockRuleBatchService
}

func ruleBatchTestHelper(t *testing.T) testRuleBatchHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockRuleBatchService := mock.NewMockRuleBatchService(mockCtrl)

	Routes(mockRuleBatchService)

	return testRuleBatchHelper{
		mockCtrl:             mockCtrl,
		mockRuleBatchService: mockRuleBatchService,
	}
}

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}
