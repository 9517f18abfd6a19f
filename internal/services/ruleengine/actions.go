package ruleengine

import (
	"context"
	"fmt"
	"strings"

	"github.com/mconway/firefly-iii/internal/common"
	"github.com/mconway/firefly-iii/internal/models"
)

// CategoryResolver turns the category name a set_category action carries
// into a persisted category id, creating the category on first use.
type CategoryResolver interface {
	Resolve(ctx context.Context, userID int64, name string) (int64, error)
}

// ActionExecutor applies every active action of a matched rule to the
// transaction, in configured order, mutating it in memory. Persistence of
// the mutated row is the caller's concern.
type ActionExecutor interface {
	Apply(ctx context.Context, rule models.Rule, txn *models.Transaction) (applied int, err error)
}

type executor struct {
	resolver CategoryResolver
}

func NewExecutor(resolver CategoryResolver) ActionExecutor {
	return &executor{resolver: resolver}
}

func (e *executor) Apply(ctx context.Context, rule models.Rule, txn *models.Transaction) (applied int, err error) {
	for _, action := range rule.Actions {
		if !action.Active {
			continue
		}
		if err = e.applyOne(ctx, action, txn); err != nil {
			return applied, fmt.Errorf("rule %d action %s: %w", rule.ID, action.ActionType, err)
		}
		applied++
	}
	return applied, nil
}

func (e *executor) applyOne(ctx context.Context, action models.RuleAction, txn *models.Transaction) error {
	value := action.ActionValue

	switch action.ActionType {
	case models.RuleActionSetCategory:
		categoryID, err := e.resolver.Resolve(ctx, txn.UserID, value)
		if err != nil {
			return err
		}
		txn.SetCategory(categoryID, value)

	case models.RuleActionClearCategory:
		txn.ClearCategory()

	case models.RuleActionAddTag:
		txn.AddTag(value)

	case models.RuleActionRemoveAllTags:
		txn.RemoveAllTags()

	case models.RuleActionSetDescription:
		txn.Description = value

	case models.RuleActionAppendDescription:
		txn.Description = strings.TrimSpace(txn.Description + " " + value)

	case models.RuleActionPrependDescription:
		txn.Description = strings.TrimSpace(value + " " + txn.Description)

	case models.RuleActionSetNotes:
		txn.Notes = value

	default:
		return fmt.Errorf("%w: %s", common.ErrUnknownActionType, action.ActionType)
	}

	return nil
}

// knownActionType is the bind-time check; unknown types abort the run
// before any transaction is touched.
func knownActionType(actionType string) bool {
	switch actionType {
	case models.RuleActionSetCategory,
		models.RuleActionClearCategory,
		models.RuleActionAddTag,
		models.RuleActionRemoveAllTags,
		models.RuleActionSetDescription,
		models.RuleActionAppendDescription,
		models.RuleActionPrependDescription,
		models.RuleActionSetNotes:
		return true
	}
	return false
}
