package models

import "time"

// Trigger types a rule may carry. RuleTriggerUserAction marks batch
// eligibility and always matches; every other type narrows the match.
const (
	RuleTriggerUserAction          = "user_action"
	RuleTriggerDescriptionContains = "description_contains"
	RuleTriggerDescriptionIs       = "description_is"
	RuleTriggerDescriptionStarts   = "description_starts"
	RuleTriggerDescriptionEnds     = "description_ends"
	RuleTriggerFromAccountIs       = "from_account_is"
	RuleTriggerToAccountIs         = "to_account_is"
	RuleTriggerAmountExactly       = "amount_exactly"
	RuleTriggerAmountLess          = "amount_less"
	RuleTriggerAmountMore          = "amount_more"
	RuleTriggerCurrencyIs          = "currency_is"
	RuleTriggerCategoryIs          = "category_is"
	RuleTriggerHasNoCategory       = "has_no_category"
	RuleTriggerTagIs               = "tag_is"
	RuleTriggerTransactionType     = "transaction_type"
	RuleTriggerDateBefore          = "date_before"
	RuleTriggerDateAfter           = "date_after"
)

// RuleTriggerStoreJournal is the trigger value that marks a rule as
// runnable against already stored journals.
const RuleTriggerStoreJournal = "store-journal"

const (
	RuleActionSetCategory        = "set_category"
	RuleActionClearCategory      = "clear_category"
	RuleActionAddTag             = "add_tag"
	RuleActionRemoveAllTags      = "remove_all_tags"
	RuleActionSetDescription     = "set_description"
	RuleActionAppendDescription  = "append_description"
	RuleActionPrependDescription = "prepend_description"
	RuleActionSetNotes           = "set_notes"
)

type Rule struct {
	ID             int64         `json:"id"`
	RuleGroupID    int64         `json:"ruleGroupId"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Order          int           `json:"order"`
	Active         bool          `json:"active"`
	StopProcessing bool          `json:"stopProcessing"`
	Strict         bool          `json:"strict"`
	Triggers       []RuleTrigger `json:"triggers"`
	Actions        []RuleAction  `json:"actions"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

type RuleTrigger struct {
	ID           int64  `json:"id"`
	RuleID       int64  `json:"ruleId"`
	TriggerType  string `json:"triggerType"`
	TriggerValue string `json:"triggerValue"`
	Order        int    `json:"order"`
	Active       bool   `json:"active"`
}

type RuleAction struct {
	ID          int64  `json:"id"`
	RuleID      int64  `json:"ruleId"`
	ActionType  string `json:"actionType"`
	ActionValue string `json:"actionValue"`
	Order       int    `json:"order"`
	Active      bool   `json:"active"`
}

// MatchingTriggers filters out the eligibility marker rows, leaving the
// triggers that actually constrain a transaction.
func (r *Rule) MatchingTriggers() []RuleTrigger {
	out := make([]RuleTrigger, 0, len(r.Triggers))
	for _, trigger := range r.Triggers {
		if trigger.TriggerType == RuleTriggerUserAction {
			continue
		}
		out = append(out, trigger)
	}
	return out
}

func (r *Rule) ConvertToRuleOut() *RuleOut {
	triggers := make([]RuleTriggerOut, 0, len(r.Triggers))
	for _, trigger := range r.Triggers {
		triggers = append(triggers, RuleTriggerOut{
			Type:  trigger.TriggerType,
			Value: trigger.TriggerValue,
			Order: trigger.Order,
		})
	}

	actions := make([]RuleActionOut, 0, len(r.Actions))
	for _, action := range r.Actions {
		actions = append(actions, RuleActionOut{
			Type:  action.ActionType,
			Value: action.ActionValue,
			Order: action.Order,
		})
	}

	return &RuleOut{
		Kind:           "rule",
		ID:             r.ID,
		Title:          r.Title,
		Description:    r.Description,
		Order:          r.Order,
		Active:         r.Active,
		StopProcessing: r.StopProcessing,
		Triggers:       triggers,
		Actions:        actions,
	}
}

type RuleOut struct {
	Kind           string           `json:"kind"`
	ID             int64            `json:"id"`
	Title          string           `json:"title"`
	Description    string           `json:"description,omitempty"`
	Order          int              `json:"order"`
	Active         bool             `json:"active"`
	StopProcessing bool             `json:"stopProcessing"`
	Triggers       []RuleTriggerOut `json:"triggers"`
	Actions        []RuleActionOut  `json:"actions"`
}

type RuleTriggerOut struct {
	Type  string `json:"type"`
	Value string `json:"value"`
	Order int    `json:"order"`
}

type RuleActionOut struct {
	Type  string `json:"type"`
	Value string `json:"value"`
	Order int    `json:"order"`
}
