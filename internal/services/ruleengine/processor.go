// Package ruleengine evaluates a single rule against a transaction: the
// trigger set is compiled once at bind time, matched as a conjunction, and
// a matched rule's actions run in their configured order. One Processor is
// built per rule per batch run and carries no cross-transaction state.
package ruleengine

import (
	"context"
	"fmt"

	"github.com/mconway/firefly-iii/internal/common"
	"github.com/mconway/firefly-iii/internal/models"
)

type Processor struct {
	rule     models.Rule
	matchers []matcherFunc
	executor ActionExecutor
	bound    bool
}

func NewProcessor(executor ActionExecutor) *Processor {
	return &Processor{executor: executor}
}

// Bind compiles the rule onto the processor. It must precede any call to
// HandleTransaction. A rule that is not persisted, carries no triggers or
// no actions, or names an unknown trigger or action type fails here, which
// aborts the whole run before any transaction is touched.
func (p *Processor) Bind(rule models.Rule) error {
	if rule.ID == 0 {
		return common.ErrRuleNotPersisted
	}
	if len(rule.Triggers) == 0 {
		return fmt.Errorf("rule %d: %w", rule.ID, common.ErrRuleHasNoTriggers)
	}
	if len(rule.Actions) == 0 {
		return fmt.Errorf("rule %d: %w", rule.ID, common.ErrRuleHasNoActions)
	}

	matchers := make([]matcherFunc, 0, len(rule.Triggers))
	for _, trigger := range rule.MatchingTriggers() {
		if !trigger.Active {
			continue
		}
		matcher, err := compileTrigger(trigger)
		if err != nil {
			return fmt.Errorf("rule %d: %w", rule.ID, err)
		}
		matchers = append(matchers, matcher)
	}

	for _, action := range rule.Actions {
		if !action.Active {
			continue
		}
		if !knownActionType(action.ActionType) {
			return fmt.Errorf("rule %d: %w: %s", rule.ID, common.ErrUnknownActionType, action.ActionType)
		}
	}

	p.rule = rule
	p.matchers = matchers
	p.bound = true

	return nil
}

// HandleTransaction evaluates the compiled trigger conjunction and, on a
// match, applies the rule's actions. The transaction is mutated in place so
// later processors in the same run observe the result.
func (p *Processor) HandleTransaction(ctx context.Context, txn *models.Transaction) (matched bool, applied int, err error) {
	if !p.bound {
		return false, 0, common.ErrProcessorNotBound
	}

	for _, matches := range p.matchers {
		if !matches(txn) {
			return false, 0, nil
		}
	}

	applied, err = p.executor.Apply(ctx, p.rule, txn)
	if err != nil {
		return true, applied, err
	}

	return true, applied, nil
}

// Rule exposes the bound rule; the batch runner reads StopProcessing off it
// after every match.
func (p *Processor) Rule() models.Rule {
	return p.rule
}
