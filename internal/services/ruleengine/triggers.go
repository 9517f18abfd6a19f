package ruleengine

import (
	"fmt"
	"strings"

	"github.com/mconway/firefly-iii/internal/common"
	"github.com/mconway/firefly-iii/internal/models"

	"github.com/shopspring/decimal"
)

// matcherFunc reports whether one compiled trigger holds for a transaction.
type matcherFunc func(txn *models.Transaction) bool

func compileTrigger(trigger models.RuleTrigger) (matcherFunc, error) {
	value := trigger.TriggerValue

	switch trigger.TriggerType {
	case models.RuleTriggerUserAction:
		// eligibility marker, constrains nothing
		return func(*models.Transaction) bool { return true }, nil

	case models.RuleTriggerDescriptionContains:
		needle := strings.ToLower(value)
		return func(txn *models.Transaction) bool {
			return strings.Contains(strings.ToLower(txn.Description), needle)
		}, nil

	case models.RuleTriggerDescriptionIs:
		return func(txn *models.Transaction) bool {
			return strings.EqualFold(txn.Description, value)
		}, nil

	case models.RuleTriggerDescriptionStarts:
		prefix := strings.ToLower(value)
		return func(txn *models.Transaction) bool {
			return strings.HasPrefix(strings.ToLower(txn.Description), prefix)
		}, nil

	case models.RuleTriggerDescriptionEnds:
		suffix := strings.ToLower(value)
		return func(txn *models.Transaction) bool {
			return strings.HasSuffix(strings.ToLower(txn.Description), suffix)
		}, nil

	case models.RuleTriggerFromAccountIs:
		return func(txn *models.Transaction) bool {
			return strings.EqualFold(txn.SourceAccountName, value)
		}, nil

	case models.RuleTriggerToAccountIs:
		return func(txn *models.Transaction) bool {
			return strings.EqualFold(txn.DestinationAccountName, value)
		}, nil

	case models.RuleTriggerAmountExactly:
		amount, err := decimal.NewFromString(value)
		if err != nil {
			return nil, fmt.Errorf("trigger %s: bad amount %q: %w", trigger.TriggerType, value, err)
		}
		return func(txn *models.Transaction) bool {
			return txn.Amount.Equal(amount)
		}, nil

	case models.RuleTriggerAmountLess:
		amount, err := decimal.NewFromString(value)
		if err != nil {
			return nil, fmt.Errorf("trigger %s: bad amount %q: %w", trigger.TriggerType, value, err)
		}
		return func(txn *models.Transaction) bool {
			return txn.Amount.LessThan(amount)
		}, nil

	case models.RuleTriggerAmountMore:
		amount, err := decimal.NewFromString(value)
		if err != nil {
			return nil, fmt.Errorf("trigger %s: bad amount %q: %w", trigger.TriggerType, value, err)
		}
		return func(txn *models.Transaction) bool {
			return txn.Amount.GreaterThan(amount)
		}, nil

	case models.RuleTriggerCurrencyIs:
		return func(txn *models.Transaction) bool {
			return strings.EqualFold(txn.Currency, value)
		}, nil

	case models.RuleTriggerCategoryIs:
		return func(txn *models.Transaction) bool {
			return txn.HasCategory() && strings.EqualFold(txn.CategoryName, value)
		}, nil

	case models.RuleTriggerHasNoCategory:
		return func(txn *models.Transaction) bool {
			return !txn.HasCategory()
		}, nil

	case models.RuleTriggerTagIs:
		return func(txn *models.Transaction) bool {
			return txn.HasTag(value)
		}, nil

	case models.RuleTriggerTransactionType:
		return func(txn *models.Transaction) bool {
			return strings.EqualFold(txn.TransactionType, value)
		}, nil

	case models.RuleTriggerDateBefore:
		date, err := common.ParseDate(value)
		if err != nil {
			return nil, fmt.Errorf("trigger %s: bad date %q: %w", trigger.TriggerType, value, err)
		}
		return func(txn *models.Transaction) bool {
			return txn.TransactionDate.Before(date)
		}, nil

	case models.RuleTriggerDateAfter:
		date, err := common.ParseDate(value)
		if err != nil {
			return nil, fmt.Errorf("trigger %s: bad date %q: %w", trigger.TriggerType, value, err)
		}
		endOfDay := common.EndOfDay(date)
		return func(txn *models.Transaction) bool {
			return txn.TransactionDate.After(endOfDay)
		}, nil
	}

	return nil, fmt.Errorf("%w: %s", common.ErrUnknownTriggerType, trigger.TriggerType)
}
