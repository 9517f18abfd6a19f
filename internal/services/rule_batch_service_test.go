package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/mconway/firefly-iii/internal/common"
	"github.com/mconway/firefly-iii/internal/common/publisher"
	"github.com/mconway/firefly-iii/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func batchRunRequest() models.RuleRunRequest {
	return models.RuleRunRequest{
		RuleGroupID: 1,
		UserID:      7,
		StartDate:   "2024-01-01",
		EndDate:     "2024-03-31",
		TriggeredBy: models.RuleRunTriggeredByWorker,
	}
}

func batchRuleGroup() *models.RuleGroup {
	return &models.RuleGroup{ID: 1, UserID: 7, Title: "Imports", Active: true}
}

// batchRule builds an eligible rule: the user_action marker plus the given
// matching triggers.
func batchRule(id int64, stop bool, triggers []models.RuleTrigger, actions []models.RuleAction) models.Rule {
	all := []models.RuleTrigger{{
		ID:           id * 100,
		RuleID:       id,
		TriggerType:  models.RuleTriggerUserAction,
		TriggerValue: models.RuleTriggerStoreJournal,
		Active:       true,
	}}
	all = append(all, triggers...)

	return models.Rule{
		ID:             id,
		RuleGroupID:    1,
		Title:          "rule",
		Active:         true,
		StopProcessing: stop,
		Triggers:       all,
		Actions:        actions,
	}
}

func addTagAction(id int64, tag string) models.RuleAction {
	return models.RuleAction{ID: id, ActionType: models.RuleActionAddTag, ActionValue: tag, Active: true}
}

func batchTransaction(id int64, description string) models.Transaction {
	return models.Transaction{
		ID:                   id,
		UserID:               7,
		TransactionDate:      time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC),
		TransactionType:      models.TransactionTypeWithdrawal,
		Description:          description,
		Amount:               decimal.RequireFromString("25.50"),
		Currency:             "EUR",
		SourceAccountID:      10,
		DestinationAccountID: 20,
	}
}

// expectRunLifecycle wires the bookkeeping every executed run performs: a
// pending row, the flip to processing, and the close-out side effects.
func expectRunLifecycle(helper testServiceHelper, finished **models.RuleRun) {
	helper.mockRuleRunRepository.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *models.RuleRun) (*models.RuleRun, error) {
			out := *in
			out.Status = models.RuleRunStatusPending
			return &out, nil
		})
	helper.mockRuleRunRepository.EXPECT().MarkProcessing(gomock.Any(), gomock.Any()).Return(nil)
	helper.mockRuleRunRepository.EXPECT().
		Finish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, run *models.RuleRun) error {
			*finished = run
			return nil
		})
	helper.mockCacheRepository.EXPECT().
		Set(gomock.Any(), "rule-run:last:1", gomock.Any(), time.Minute).
		Return(nil)
	helper.mockRunEventPub.EXPECT().
		Publish(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
}

func TestRuleBatch_ExecuteRuleGroup_AppliesRulesInOrder(t *testing.T) {
	helper := serviceTestHelper(t)

	rules := []models.Rule{
		batchRule(1, false, nil, []models.RuleAction{addTagAction(11, "first")}),
		batchRule(2, false, nil, []models.RuleAction{addTagAction(21, "second")}),
	}

	var finished *models.RuleRun
	helper.mockRuleGroupRepository.EXPECT().GetByID(gomock.Any(), int64(1)).Return(batchRuleGroup(), nil)
	expectRunLifecycle(helper, &finished)
	helper.mockRuleRepository.EXPECT().GetEligibleRules(gomock.Any(), int64(1)).Return(rules, nil)
	helper.mockTrxRepository.EXPECT().
		CollectForRun(gomock.Any(), gomock.Any()).
		Return([]models.Transaction{batchTransaction(100, "Grocery run")}, nil)

	var persistedTags []string
	helper.mockTrxRepository.EXPECT().
		ApplyRuleMutations(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.Transaction) error {
			persistedTags = append([]string{}, txn.Tags...)
			return nil
		})

	err := helper.ruleBatchService.ExecuteRuleGroup(context.Background(), batchRunRequest())

	assert.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, persistedTags)
	if assert.NotNil(t, finished) {
		assert.Equal(t, models.RuleRunStatusSuccess, finished.Status)
		assert.Equal(t, 1, finished.TransactionsProcessed)
		assert.Equal(t, 2, finished.RulesMatched)
		assert.Equal(t, 2, finished.ActionsApplied)
	}
}

func TestRuleBatch_ExecuteRuleGroup_StopProcessingTruncatesPerTransaction(t *testing.T) {
	helper := serviceTestHelper(t)

	rules := []models.Rule{
		batchRule(1, true, []models.RuleTrigger{
			{ID: 101, RuleID: 1, TriggerType: models.RuleTriggerDescriptionContains, TriggerValue: "grocery", Active: true},
		}, []models.RuleAction{addTagAction(11, "groceries")}),
		batchRule(2, false, nil, []models.RuleAction{addTagAction(21, "reviewed")}),
	}
	transactions := []models.Transaction{
		batchTransaction(100, "Grocery run"),
		batchTransaction(101, "Fuel"),
	}

	var finished *models.RuleRun
	helper.mockRuleGroupRepository.EXPECT().GetByID(gomock.Any(), int64(1)).Return(batchRuleGroup(), nil)
	expectRunLifecycle(helper, &finished)
	helper.mockRuleRepository.EXPECT().GetEligibleRules(gomock.Any(), int64(1)).Return(rules, nil)
	helper.mockTrxRepository.EXPECT().CollectForRun(gomock.Any(), gomock.Any()).Return(transactions, nil)

	tagsByTransaction := map[int64][]string{}
	helper.mockTrxRepository.EXPECT().
		ApplyRuleMutations(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.Transaction) error {
			tagsByTransaction[txn.ID] = append([]string{}, txn.Tags...)
			return nil
		}).Times(2)

	err := helper.ruleBatchService.ExecuteRuleGroup(context.Background(), batchRunRequest())

	assert.NoError(t, err)
	// rule 1 stops rule 2 on the grocery journal only, the next journal
	// starts from the first rule again
	assert.Equal(t, []string{"groceries"}, tagsByTransaction[100])
	assert.Equal(t, []string{"reviewed"}, tagsByTransaction[101])
	if assert.NotNil(t, finished) {
		assert.Equal(t, 2, finished.TransactionsProcessed)
		assert.Equal(t, 2, finished.RulesMatched)
		assert.Equal(t, 2, finished.ActionsApplied)
	}
}

func TestRuleBatch_ExecuteRuleGroup_NoMatchLeavesTransactionUntouched(t *testing.T) {
	helper := serviceTestHelper(t)

	rules := []models.Rule{
		batchRule(1, false, []models.RuleTrigger{
			{ID: 101, RuleID: 1, TriggerType: models.RuleTriggerCurrencyIs, TriggerValue: "USD", Active: true},
		}, []models.RuleAction{addTagAction(11, "dollars")}),
	}

	var finished *models.RuleRun
	helper.mockRuleGroupRepository.EXPECT().GetByID(gomock.Any(), int64(1)).Return(batchRuleGroup(), nil)
	expectRunLifecycle(helper, &finished)
	helper.mockRuleRepository.EXPECT().GetEligibleRules(gomock.Any(), int64(1)).Return(rules, nil)
	helper.mockTrxRepository.EXPECT().
		CollectForRun(gomock.Any(), gomock.Any()).
		Return([]models.Transaction{batchTransaction(100, "Grocery run")}, nil)

	err := helper.ruleBatchService.ExecuteRuleGroup(context.Background(), batchRunRequest())

	assert.NoError(t, err)
	if assert.NotNil(t, finished) {
		assert.Equal(t, models.RuleRunStatusSuccess, finished.Status)
		assert.Equal(t, 1, finished.TransactionsProcessed)
		assert.Zero(t, finished.RulesMatched)
		assert.Zero(t, finished.ActionsApplied)
	}
}

func TestRuleBatch_ExecuteRuleGroup_NoEligibleRules(t *testing.T) {
	helper := serviceTestHelper(t)

	var finished *models.RuleRun
	helper.mockRuleGroupRepository.EXPECT().GetByID(gomock.Any(), int64(1)).Return(batchRuleGroup(), nil)
	expectRunLifecycle(helper, &finished)
	helper.mockRuleRepository.EXPECT().GetEligibleRules(gomock.Any(), int64(1)).Return(nil, nil)

	err := helper.ruleBatchService.ExecuteRuleGroup(context.Background(), batchRunRequest())

	assert.NoError(t, err)
	if assert.NotNil(t, finished) {
		assert.Equal(t, models.RuleRunStatusSuccess, finished.Status)
		assert.Zero(t, finished.TransactionsProcessed)
	}
}

func TestRuleBatch_ExecuteRuleGroup_NoTransactionsInWindow(t *testing.T) {
	helper := serviceTestHelper(t)

	rules := []models.Rule{batchRule(1, false, nil, []models.RuleAction{addTagAction(11, "first")})}

	var finished *models.RuleRun
	helper.mockRuleGroupRepository.EXPECT().GetByID(gomock.Any(), int64(1)).Return(batchRuleGroup(), nil)
	expectRunLifecycle(helper, &finished)
	helper.mockRuleRepository.EXPECT().GetEligibleRules(gomock.Any(), int64(1)).Return(rules, nil)
	helper.mockTrxRepository.EXPECT().CollectForRun(gomock.Any(), gomock.Any()).Return(nil, nil)

	err := helper.ruleBatchService.ExecuteRuleGroup(context.Background(), batchRunRequest())

	assert.NoError(t, err)
	if assert.NotNil(t, finished) {
		assert.Equal(t, models.RuleRunStatusSuccess, finished.Status)
		assert.Zero(t, finished.TransactionsProcessed)
		assert.Zero(t, finished.RulesMatched)
	}
}

// Two rules whose outcome depends on evaluation order: the first sets the
// Food category, the second fires only when the category already is Food.
func TestRuleBatch_ExecuteRuleGroup_RuleOrderDecidesOutcome(t *testing.T) {
	categorize := func(id int64) models.Rule {
		return batchRule(id, false, []models.RuleTrigger{
			{ID: id * 100, RuleID: id, TriggerType: models.RuleTriggerDescriptionContains, TriggerValue: "Grocery", Active: true},
		}, []models.RuleAction{
			{ID: id * 10, ActionType: models.RuleActionSetCategory, ActionValue: "Food", Active: true},
		})
	}
	tagFood := func(id int64) models.Rule {
		return batchRule(id, true, []models.RuleTrigger{
			{ID: id * 100, RuleID: id, TriggerType: models.RuleTriggerCategoryIs, TriggerValue: "Food", Active: true},
		}, []models.RuleAction{addTagAction(id*10, "auto-tagged")})
	}

	testCases := []struct {
		name        string
		rules       []models.Rule
		resolves    int
		wantTags    []string
		wantMatched int
	}{
		{
			name:        "categorize before tag, both fire",
			rules:       []models.Rule{categorize(1), tagFood(2)},
			resolves:    1,
			wantTags:    []string{"auto-tagged"},
			wantMatched: 2,
		},
		{
			name:        "tag before categorize, tag never fires",
			rules:       []models.Rule{tagFood(1), categorize(2)},
			resolves:    1,
			wantTags:    nil,
			wantMatched: 1,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			helper := serviceTestHelper(t)

			var finished *models.RuleRun
			helper.mockRuleGroupRepository.EXPECT().GetByID(gomock.Any(), int64(1)).Return(batchRuleGroup(), nil)
			expectRunLifecycle(helper, &finished)
			helper.mockRuleRepository.EXPECT().GetEligibleRules(gomock.Any(), int64(1)).Return(tc.rules, nil)
			helper.mockTrxRepository.EXPECT().
				CollectForRun(gomock.Any(), gomock.Any()).
				Return([]models.Transaction{batchTransaction(100, "Grocery run")}, nil)
			helper.mockCategoryRepository.EXPECT().
				GetOrCreateByName(gomock.Any(), int64(7), "Food").
				Return(&models.Category{ID: 5, UserID: 7, Name: "Food"}, nil).
				Times(tc.resolves)

			var persisted models.Transaction
			helper.mockTrxRepository.EXPECT().
				ApplyRuleMutations(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, txn *models.Transaction) error {
					persisted = *txn
					return nil
				})

			err := helper.ruleBatchService.ExecuteRuleGroup(context.Background(), batchRunRequest())

			assert.NoError(t, err)
			if assert.NotNil(t, persisted.CategoryID) {
				assert.Equal(t, int64(5), *persisted.CategoryID)
			}
			assert.Equal(t, tc.wantTags, []string(persisted.Tags))
			assert.Equal(t, tc.wantMatched, finished.RulesMatched)
		})
	}
}

func TestRuleBatch_ExecuteRuleGroup_PassesWindowToCollector(t *testing.T) {
	helper := serviceTestHelper(t)

	req := batchRunRequest()
	req.AccountIDs = []int64{3, 4}

	var finished *models.RuleRun
	helper.mockRuleGroupRepository.EXPECT().GetByID(gomock.Any(), int64(1)).Return(batchRuleGroup(), nil)
	expectRunLifecycle(helper, &finished)
	helper.mockRuleRepository.EXPECT().
		GetEligibleRules(gomock.Any(), int64(1)).
		Return([]models.Rule{batchRule(1, false, nil, []models.RuleAction{addTagAction(11, "first")})}, nil)
	helper.mockTrxRepository.EXPECT().
		CollectForRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts models.TransactionCollectOptions) ([]models.Transaction, error) {
			assert.Equal(t, int64(7), opts.UserID)
			assert.Equal(t, []int64{3, 4}, opts.AccountIDs)
			if assert.NotNil(t, opts.StartDate) {
				assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *opts.StartDate)
			}
			if assert.NotNil(t, opts.EndDate) {
				assert.Equal(t, time.Date(2024, 3, 31, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC), *opts.EndDate)
			}
			return nil, nil
		})

	err := helper.ruleBatchService.ExecuteRuleGroup(context.Background(), req)
	assert.NoError(t, err)
}

func TestRuleBatch_ExecuteRuleGroup_ReusesEnqueuedRun(t *testing.T) {
	helper := serviceTestHelper(t)

	req := batchRunRequest()
	req.RunID = "run-1"
	req.TriggeredBy = models.RuleRunTriggeredByQueue

	helper.mockRuleGroupRepository.EXPECT().GetByID(gomock.Any(), int64(1)).Return(batchRuleGroup(), nil)
	helper.mockRuleRunRepository.EXPECT().
		GetByID(gomock.Any(), "run-1").
		Return(&models.RuleRun{ID: "run-1", RuleGroupID: 1, UserID: 7, Status: models.RuleRunStatusPending}, nil)
	helper.mockRuleRunRepository.EXPECT().MarkProcessing(gomock.Any(), "run-1").Return(nil)
	helper.mockRuleRepository.EXPECT().GetEligibleRules(gomock.Any(), int64(1)).Return(nil, nil)
	helper.mockRuleRunRepository.EXPECT().
		Finish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, run *models.RuleRun) error {
			assert.Equal(t, "run-1", run.ID)
			assert.Equal(t, models.RuleRunStatusSuccess, run.Status)
			return nil
		})
	helper.mockCacheRepository.EXPECT().
		Set(gomock.Any(), "rule-run:last:1", gomock.Any(), time.Minute).
		Return(nil)
	helper.mockRunEventPub.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	err := helper.ruleBatchService.ExecuteRuleGroup(context.Background(), req)
	assert.NoError(t, err)
}

func TestRuleBatch_ExecuteRuleGroup_RunAlreadyFinished(t *testing.T) {
	helper := serviceTestHelper(t)

	req := batchRunRequest()
	req.RunID = "run-1"

	helper.mockRuleGroupRepository.EXPECT().GetByID(gomock.Any(), int64(1)).Return(batchRuleGroup(), nil)
	helper.mockRuleRunRepository.EXPECT().
		GetByID(gomock.Any(), "run-1").
		Return(&models.RuleRun{ID: "run-1", RuleGroupID: 1, Status: models.RuleRunStatusSuccess}, nil)

	err := helper.ruleBatchService.ExecuteRuleGroup(context.Background(), req)
	assert.ErrorIs(t, err, common.ErrRunAlreadyFinished)
}

func TestRuleBatch_ExecuteRuleGroup_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		req     func() models.RuleRunRequest
		doMock  func(helper testServiceHelper)
		wantErr error
	}{
		{
			name: "missing rule group id",
			req: func() models.RuleRunRequest {
				req := batchRunRequest()
				req.RuleGroupID = 0
				return req
			},
			doMock: func(helper testServiceHelper) {},
		},
		{
			name: "rule group not found",
			req:  batchRunRequest,
			doMock: func(helper testServiceHelper) {
				helper.mockRuleGroupRepository.EXPECT().
					GetByID(gomock.Any(), int64(1)).
					Return(nil, common.ErrDataNotFound)
			},
			wantErr: common.ErrRuleGroupNotFound,
		},
		{
			name: "rule group owned by someone else",
			req:  batchRunRequest,
			doMock: func(helper testServiceHelper) {
				helper.mockRuleGroupRepository.EXPECT().
					GetByID(gomock.Any(), int64(1)).
					Return(&models.RuleGroup{ID: 1, UserID: 99}, nil)
			},
			wantErr: common.ErrRuleGroupNotOwned,
		},
		{
			name: "failed get rule group",
			req:  batchRunRequest,
			doMock: func(helper testServiceHelper) {
				helper.mockRuleGroupRepository.EXPECT().
					GetByID(gomock.Any(), int64(1)).
					Return(nil, assert.AnError)
			},
			wantErr: assert.AnError,
		},
		{
			name: "failed create run row",
			req:  batchRunRequest,
			doMock: func(helper testServiceHelper) {
				helper.mockRuleGroupRepository.EXPECT().
					GetByID(gomock.Any(), int64(1)).
					Return(batchRuleGroup(), nil)
				helper.mockRuleRunRepository.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil, assert.AnError)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			helper := serviceTestHelper(t)
			tc.doMock(helper)

			err := helper.ruleBatchService.ExecuteRuleGroup(context.Background(), tc.req())

			assert.Error(t, err)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

// Failures inside the batch itself still close the run row as failed with
// the reason recorded.
func TestRuleBatch_ExecuteRuleGroup_FailuresMarkRunFailed(t *testing.T) {
	testCases := []struct {
		name    string
		doMock  func(helper testServiceHelper)
		wantErr error
	}{
		{
			name: "rule with no actions aborts before any transaction",
			doMock: func(helper testServiceHelper) {
				broken := batchRule(1, false, nil, nil)
				helper.mockRuleRepository.EXPECT().
					GetEligibleRules(gomock.Any(), int64(1)).
					Return([]models.Rule{broken}, nil)
			},
			wantErr: common.ErrRuleHasNoActions,
		},
		{
			name: "failed load rules",
			doMock: func(helper testServiceHelper) {
				helper.mockRuleRepository.EXPECT().
					GetEligibleRules(gomock.Any(), int64(1)).
					Return(nil, assert.AnError)
			},
			wantErr: assert.AnError,
		},
		{
			name: "failed collect transactions",
			doMock: func(helper testServiceHelper) {
				helper.mockRuleRepository.EXPECT().
					GetEligibleRules(gomock.Any(), int64(1)).
					Return([]models.Rule{batchRule(1, false, nil, []models.RuleAction{addTagAction(11, "first")})}, nil)
				helper.mockTrxRepository.EXPECT().
					CollectForRun(gomock.Any(), gomock.Any()).
					Return(nil, assert.AnError)
			},
			wantErr: assert.AnError,
		},
		{
			name: "failed persist mutations",
			doMock: func(helper testServiceHelper) {
				helper.mockRuleRepository.EXPECT().
					GetEligibleRules(gomock.Any(), int64(1)).
					Return([]models.Rule{batchRule(1, false, nil, []models.RuleAction{addTagAction(11, "first")})}, nil)
				helper.mockTrxRepository.EXPECT().
					CollectForRun(gomock.Any(), gomock.Any()).
					Return([]models.Transaction{batchTransaction(100, "Grocery run")}, nil)
				helper.mockTrxRepository.EXPECT().
					ApplyRuleMutations(gomock.Any(), gomock.Any()).
					Return(assert.AnError)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			helper := serviceTestHelper(t)

			var finished *models.RuleRun
			helper.mockRuleGroupRepository.EXPECT().GetByID(gomock.Any(), int64(1)).Return(batchRuleGroup(), nil)
			expectRunLifecycle(helper, &finished)
			tc.doMock(helper)

			err := helper.ruleBatchService.ExecuteRuleGroup(context.Background(), batchRunRequest())

			assert.ErrorIs(t, err, tc.wantErr)
			if assert.NotNil(t, finished) {
				assert.Equal(t, models.RuleRunStatusFailed, finished.Status)
				assert.NotEmpty(t, finished.FailureReason)
			}
		})
	}
}

func TestRuleBatch_EnqueueRun(t *testing.T) {
	t.Run("happy flow", func(t *testing.T) {
		helper := serviceTestHelper(t)

		req := models.RuleRunRequest{RuleGroupID: 1, UserID: 7}

		helper.mockRuleGroupRepository.EXPECT().GetByID(gomock.Any(), int64(1)).Return(batchRuleGroup(), nil)
		helper.mockRuleRunRepository.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in *models.RuleRun) (*models.RuleRun, error) {
				assert.NotEmpty(t, in.ID)
				assert.Equal(t, models.RuleRunTriggeredByAPI, in.TriggeredBy)
				out := *in
				out.Status = models.RuleRunStatusPending
				return &out, nil
			})
		helper.mockRunRequestPub.EXPECT().
			Publish(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, message any, _ ...publisher.PublishOption) error {
				published, ok := message.(models.RuleRunRequest)
				if assert.True(t, ok) {
					assert.NotEmpty(t, published.RunID)
					assert.Equal(t, int64(1), published.RuleGroupID)
				}
				return nil
			})

		run, err := helper.ruleBatchService.EnqueueRun(context.Background(), req)

		assert.NoError(t, err)
		if assert.NotNil(t, run) {
			assert.Equal(t, models.RuleRunStatusPending, run.Status)
			assert.NotEmpty(t, run.ID)
		}
	})

	t.Run("rule group not found", func(t *testing.T) {
		helper := serviceTestHelper(t)

		helper.mockRuleGroupRepository.EXPECT().
			GetByID(gomock.Any(), int64(1)).
			Return(nil, common.ErrDataNotFound)

		run, err := helper.ruleBatchService.EnqueueRun(context.Background(), models.RuleRunRequest{RuleGroupID: 1, UserID: 7})
		assert.ErrorIs(t, err, common.ErrRuleGroupNotFound)
		assert.Nil(t, run)
	})

	t.Run("failed publish request", func(t *testing.T) {
		helper := serviceTestHelper(t)

		helper.mockRuleGroupRepository.EXPECT().GetByID(gomock.Any(), int64(1)).Return(batchRuleGroup(), nil)
		helper.mockRuleRunRepository.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in *models.RuleRun) (*models.RuleRun, error) {
				out := *in
				out.Status = models.RuleRunStatusPending
				return &out, nil
			})
		helper.mockRunRequestPub.EXPECT().
			Publish(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(assert.AnError)

		run, err := helper.ruleBatchService.EnqueueRun(context.Background(), models.RuleRunRequest{RuleGroupID: 1, UserID: 7})
		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, run)
	})

	t.Run("invalid request", func(t *testing.T) {
		helper := serviceTestHelper(t)

		run, err := helper.ruleBatchService.EnqueueRun(context.Background(), models.RuleRunRequest{UserID: 7})
		assert.Error(t, err)
		assert.Nil(t, run)
	})
}

func TestRuleBatch_GetRun(t *testing.T) {
	testCases := []struct {
		name    string
		doMock  func(helper testServiceHelper)
		wantErr error
	}{
		{
			name: "happy flow",
			doMock: func(helper testServiceHelper) {
				helper.mockRuleRunRepository.EXPECT().
					GetByID(gomock.Any(), "run-1").
					Return(&models.RuleRun{ID: "run-1", Status: models.RuleRunStatusSuccess}, nil)
			},
		},
		{
			name: "run not found",
			doMock: func(helper testServiceHelper) {
				helper.mockRuleRunRepository.EXPECT().
					GetByID(gomock.Any(), "run-1").
					Return(nil, common.ErrDataNotFound)
			},
			wantErr: models.GetErrMap("RUN-404"),
		},
		{
			name: "failed get run",
			doMock: func(helper testServiceHelper) {
				helper.mockRuleRunRepository.EXPECT().
					GetByID(gomock.Any(), "run-1").
					Return(nil, assert.AnError)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			helper := serviceTestHelper(t)
			tc.doMock(helper)

			run, err := helper.ruleBatchService.GetRun(context.Background(), "run-1")

			if tc.wantErr != nil {
				assert.Equal(t, tc.wantErr, err)
				assert.Nil(t, run)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "run-1", run.ID)
		})
	}
}
