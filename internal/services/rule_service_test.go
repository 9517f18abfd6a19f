package services_test

import (
	"context"
	"testing"

	"github.com/mconway/firefly-iii/internal/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRule_ApplyStoreRules(t *testing.T) {
	t.Run("matched rules mutate and persist the journal", func(t *testing.T) {
		helper := serviceTestHelper(t)

		rules := []models.Rule{
			batchRule(1, false, []models.RuleTrigger{
				{ID: 101, RuleID: 1, TriggerType: models.RuleTriggerDescriptionContains, TriggerValue: "grocery", Active: true},
			}, []models.RuleAction{addTagAction(11, "groceries")}),
			batchRule(2, false, nil, []models.RuleAction{addTagAction(21, "reviewed")}),
		}

		helper.mockRuleRepository.EXPECT().
			GetEligibleRulesForUser(gomock.Any(), int64(7)).
			Return(rules, nil)
		helper.mockTrxRepository.EXPECT().
			ApplyRuleMutations(gomock.Any(), gomock.Any()).
			Return(nil)

		txn := batchTransaction(100, "Grocery run")
		summary, err := helper.ruleService.ApplyStoreRules(context.Background(), &txn)

		assert.NoError(t, err)
		assert.Equal(t, []string{"groceries", "reviewed"}, []string(txn.Tags))
		assert.Equal(t, 1, summary.TransactionsProcessed)
		assert.Equal(t, 2, summary.RulesMatched)
		assert.Equal(t, 2, summary.ActionsApplied)
	})

	t.Run("stop processing ends the sequence", func(t *testing.T) {
		helper := serviceTestHelper(t)

		rules := []models.Rule{
			batchRule(1, true, nil, []models.RuleAction{addTagAction(11, "first")}),
			batchRule(2, false, nil, []models.RuleAction{addTagAction(21, "second")}),
		}

		helper.mockRuleRepository.EXPECT().
			GetEligibleRulesForUser(gomock.Any(), int64(7)).
			Return(rules, nil)
		helper.mockTrxRepository.EXPECT().
			ApplyRuleMutations(gomock.Any(), gomock.Any()).
			Return(nil)

		txn := batchTransaction(100, "Fuel")
		summary, err := helper.ruleService.ApplyStoreRules(context.Background(), &txn)

		assert.NoError(t, err)
		assert.Equal(t, []string{"first"}, []string(txn.Tags))
		assert.Equal(t, 1, summary.RulesMatched)
	})

	t.Run("no eligible rules touches nothing", func(t *testing.T) {
		helper := serviceTestHelper(t)

		helper.mockRuleRepository.EXPECT().
			GetEligibleRulesForUser(gomock.Any(), int64(7)).
			Return(nil, nil)

		txn := batchTransaction(100, "Fuel")
		summary, err := helper.ruleService.ApplyStoreRules(context.Background(), &txn)

		assert.NoError(t, err)
		assert.Empty(t, txn.Tags)
		assert.Zero(t, summary.TransactionsProcessed)
	})

	t.Run("no match skips persistence", func(t *testing.T) {
		helper := serviceTestHelper(t)

		rules := []models.Rule{
			batchRule(1, false, []models.RuleTrigger{
				{ID: 101, RuleID: 1, TriggerType: models.RuleTriggerCurrencyIs, TriggerValue: "USD", Active: true},
			}, []models.RuleAction{addTagAction(11, "dollars")}),
		}

		helper.mockRuleRepository.EXPECT().
			GetEligibleRulesForUser(gomock.Any(), int64(7)).
			Return(rules, nil)

		txn := batchTransaction(100, "Fuel")
		summary, err := helper.ruleService.ApplyStoreRules(context.Background(), &txn)

		assert.NoError(t, err)
		assert.Equal(t, 1, summary.TransactionsProcessed)
		assert.Zero(t, summary.RulesMatched)
	})

	t.Run("broken rule aborts", func(t *testing.T) {
		helper := serviceTestHelper(t)

		helper.mockRuleRepository.EXPECT().
			GetEligibleRulesForUser(gomock.Any(), int64(7)).
			Return([]models.Rule{batchRule(1, false, nil, nil)}, nil)

		txn := batchTransaction(100, "Fuel")
		_, err := helper.ruleService.ApplyStoreRules(context.Background(), &txn)
		assert.Error(t, err)
	})

	t.Run("failed load rules", func(t *testing.T) {
		helper := serviceTestHelper(t)

		helper.mockRuleRepository.EXPECT().
			GetEligibleRulesForUser(gomock.Any(), int64(7)).
			Return(nil, assert.AnError)

		txn := batchTransaction(100, "Fuel")
		_, err := helper.ruleService.ApplyStoreRules(context.Background(), &txn)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
