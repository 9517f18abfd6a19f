package services

import (
	"context"

	"github.com/mconway/firefly-iii/internal/models"
	"github.com/mconway/firefly-iii/internal/monitoring"
	"github.com/mconway/firefly-iii/internal/services/ruleengine"
)

type RuleService interface {
	// ApplyStoreRules runs every eligible rule of the user's groups against a
	// freshly stored transaction, in group order then rule order. A matched
	// rule with StopProcessing set ends the whole sequence. Mutations are
	// persisted before returning.
	ApplyStoreRules(ctx context.Context, txn *models.Transaction) (summary models.RuleRunSummary, err error)
}

type rule service

var _ RuleService = (*rule)(nil)

func (s *rule) ApplyStoreRules(ctx context.Context, txn *models.Transaction) (summary models.RuleRunSummary, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	rules, err := s.srv.sqlRepo.GetRuleRepository().GetEligibleRulesForUser(ctx, txn.UserID)
	if err != nil {
		return summary, checkDatabaseError(err)
	}
	if len(rules) == 0 {
		return summary, nil
	}

	executor := ruleengine.NewExecutor(categoryResolver{s.srv.sqlRepo.GetCategoryRepository()})
	processors, err := buildProcessors(executor, rules)
	if err != nil {
		return summary, err
	}

	mutated := false
	for _, p := range processors {
		matched, applied, handleErr := p.HandleTransaction(ctx, txn)
		if handleErr != nil {
			return summary, handleErr
		}
		if !matched {
			continue
		}

		mutated = true
		summary.RulesMatched++
		summary.ActionsApplied += applied
		if ruleMetrics := s.srv.metrics.GetRuleEnginePrometheus(); ruleMetrics != nil {
			ruleMetrics.RecordRuleMatched(p.Rule().ID)
		}

		if p.Rule().StopProcessing {
			break
		}
	}

	summary.TransactionsProcessed = 1
	if !mutated {
		return summary, nil
	}

	if err = s.srv.sqlRepo.GetTransactionRepository().ApplyRuleMutations(ctx, txn); err != nil {
		return summary, err
	}

	return summary, nil
}
