package repositories

import (
	"context"
	"database/sql"

	"github.com/mconway/firefly-iii/internal/models"
	"github.com/mconway/firefly-iii/internal/monitoring"

	"github.com/lib/pq"
)

type RuleRepository interface {
	// GetEligibleRules returns the active rules of one group that are marked
	// runnable against stored journals, in natural group order, with their
	// triggers and actions loaded.
	GetEligibleRules(ctx context.Context, ruleGroupID int64) (rules []models.Rule, err error)

	// GetEligibleRulesForUser walks every active group of the user, ordered
	// by group then rule.
	GetEligibleRulesForUser(ctx context.Context, userID int64) (rules []models.Rule, err error)
}

type ruleRepository sqlRepo

var _ RuleRepository = (*ruleRepository)(nil)

func (r *ruleRepository) GetEligibleRules(ctx context.Context, ruleGroupID int64) (rules []models.Rule, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryEligibleRulesByGroup, ruleGroupID, models.RuleTriggerUserAction, models.RuleTriggerStoreJournal)
	if err != nil {
		return
	}

	defer rows.Close()
	rules, err = scanRules(rows)
	if err != nil {
		return
	}

	return r.loadTriggersAndActions(ctx, rules)
}

func (r *ruleRepository) GetEligibleRulesForUser(ctx context.Context, userID int64) (rules []models.Rule, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryEligibleRulesByUser, userID, models.RuleTriggerUserAction, models.RuleTriggerStoreJournal)
	if err != nil {
		return
	}

	defer rows.Close()
	rules, err = scanRules(rows)
	if err != nil {
		return
	}

	return r.loadTriggersAndActions(ctx, rules)
}

func scanRules(rows *sql.Rows) (rules []models.Rule, err error) {
	for rows.Next() {
		var rule models.Rule
		err = rows.Scan(
			&rule.ID,
			&rule.RuleGroupID,
			&rule.Title,
			&rule.Description,
			&rule.Order,
			&rule.Active,
			&rule.StopProcessing,
			&rule.Strict,
			&rule.CreatedAt,
			&rule.UpdatedAt,
		)
		if err != nil {
			return rules, err
		}
		rules = append(rules, rule)
	}
	if err = rows.Err(); err != nil {
		return rules, err
	}

	return rules, nil
}

func (r *ruleRepository) loadTriggersAndActions(ctx context.Context, rules []models.Rule) ([]models.Rule, error) {
	if len(rules) == 0 {
		return rules, nil
	}

	ids := make([]int64, 0, len(rules))
	index := make(map[int64]int, len(rules))
	for i, rule := range rules {
		ids = append(ids, rule.ID)
		index[rule.ID] = i
	}

	db := r.r.extractTxRead(ctx)

	triggerRows, err := db.QueryContext(ctx, queryTriggersByRuleIDs, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer triggerRows.Close()

	for triggerRows.Next() {
		var trigger models.RuleTrigger
		err = triggerRows.Scan(
			&trigger.ID,
			&trigger.RuleID,
			&trigger.TriggerType,
			&trigger.TriggerValue,
			&trigger.Order,
			&trigger.Active,
		)
		if err != nil {
			return nil, err
		}
		i := index[trigger.RuleID]
		rules[i].Triggers = append(rules[i].Triggers, trigger)
	}
	if err = triggerRows.Err(); err != nil {
		return nil, err
	}

	actionRows, err := db.QueryContext(ctx, queryActionsByRuleIDs, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer actionRows.Close()

	for actionRows.Next() {
		var action models.RuleAction
		err = actionRows.Scan(
			&action.ID,
			&action.RuleID,
			&action.ActionType,
			&action.ActionValue,
			&action.Order,
			&action.Active,
		)
		if err != nil {
			return nil, err
		}
		i := index[action.RuleID]
		rules[i].Actions = append(rules[i].Actions, action)
	}
	if err = actionRows.Err(); err != nil {
		return nil, err
	}

	return rules, nil
}
