package models

import (
	"time"

	"github.com/mconway/firefly-iii/internal/common"

	"github.com/lib/pq"
)

const (
	RuleRunStatusPending    = "pending"
	RuleRunStatusProcessing = "processing"
	RuleRunStatusSuccess    = "success"
	RuleRunStatusFailed     = "failed"
)

const (
	RuleRunTriggeredByAPI    = "api"
	RuleRunTriggeredByWorker = "worker"
	RuleRunTriggeredByQueue  = "queue"
)

// RuleRunRequest configures one batch execution of a rule group over stored
// transactions. It is the payload serialized to the run queue and the worker
// flags, so every field is plain JSON.
type RuleRunRequest struct {
	RunID       string  `json:"run_id"`
	RuleGroupID int64   `json:"rule_group_id" validate:"required"`
	UserID      int64   `json:"user_id" validate:"required"`
	AccountIDs  []int64 `json:"account_ids"`
	StartDate   string  `json:"start_date" validate:"omitempty,date"`
	EndDate     string  `json:"end_date" validate:"omitempty,date"`
	TriggeredBy string  `json:"triggered_by"`
}

// CollectOptions translates the request window into collector options. The
// end date is inclusive, so it is widened to the last instant of its day.
func (r RuleRunRequest) CollectOptions() (TransactionCollectOptions, error) {
	opts := TransactionCollectOptions{
		UserID:     r.UserID,
		AccountIDs: r.AccountIDs,
	}

	if r.StartDate != "" {
		start, err := common.ParseDate(r.StartDate)
		if err != nil {
			return TransactionCollectOptions{}, err
		}
		opts.StartDate = &start
	}

	if r.EndDate != "" {
		end, err := common.ParseDate(r.EndDate)
		if err != nil {
			return TransactionCollectOptions{}, err
		}
		end = common.EndOfDay(end)
		opts.EndDate = &end
	}

	return opts, nil
}

// RuleRun is the stored bookkeeping row of one batch execution.
type RuleRun struct {
	ID                    string        `json:"id"`
	RuleGroupID           int64         `json:"ruleGroupId"`
	UserID                int64         `json:"userId"`
	AccountIDs            pq.Int64Array `json:"accountIds"`
	StartDate             *time.Time    `json:"startDate,omitempty"`
	EndDate               *time.Time    `json:"endDate,omitempty"`
	TriggeredBy           string        `json:"triggeredBy"`
	Status                string        `json:"status"`
	FailureReason         string        `json:"failureReason,omitempty"`
	TransactionsProcessed int           `json:"transactionsProcessed"`
	RulesMatched          int           `json:"rulesMatched"`
	ActionsApplied        int           `json:"actionsApplied"`
	StartedAt             *time.Time    `json:"startedAt,omitempty"`
	FinishedAt            *time.Time    `json:"finishedAt,omitempty"`
	CreatedAt             time.Time     `json:"createdAt"`
	UpdatedAt             time.Time     `json:"updatedAt"`
}

func (r *RuleRun) ConvertToRuleRunOut() *RuleRunOut {
	return &RuleRunOut{
		Kind:                  "ruleRun",
		ID:                    r.ID,
		RuleGroupID:           r.RuleGroupID,
		Status:                r.Status,
		FailureReason:         r.FailureReason,
		TransactionsProcessed: r.TransactionsProcessed,
		RulesMatched:          r.RulesMatched,
		ActionsApplied:        r.ActionsApplied,
		StartedAt:             r.StartedAt,
		FinishedAt:            r.FinishedAt,
	}
}

type RuleRunOut struct {
	Kind                  string     `json:"kind"`
	ID                    string     `json:"id"`
	RuleGroupID           int64      `json:"ruleGroupId"`
	Status                string     `json:"status"`
	FailureReason         string     `json:"failureReason,omitempty"`
	TransactionsProcessed int        `json:"transactionsProcessed"`
	RulesMatched          int        `json:"rulesMatched"`
	ActionsApplied        int        `json:"actionsApplied"`
	StartedAt             *time.Time `json:"startedAt,omitempty"`
	FinishedAt            *time.Time `json:"finishedAt,omitempty"`
}

// RuleRunSummary carries the counters accumulated while a run walks the
// transaction set.
type RuleRunSummary struct {
	TransactionsProcessed int
	RulesMatched          int
	ActionsApplied        int
}

// RuleRunEvent is published to the events topic when a batch run finishes.
type RuleRunEvent struct {
	RunID                 string    `json:"run_id"`
	RuleGroupID           int64     `json:"rule_group_id"`
	UserID                int64     `json:"user_id"`
	Status                string    `json:"status"`
	FailureReason         string    `json:"failure_reason,omitempty"`
	TransactionsProcessed int       `json:"transactions_processed"`
	RulesMatched          int       `json:"rules_matched"`
	ActionsApplied        int       `json:"actions_applied"`
	FinishedAt            time.Time `json:"finished_at"`
}

// LastRunStatus is cached per rule group so the API can answer status
// polls without touching the run table.
type LastRunStatus struct {
	RunID      string     `json:"runId"`
	Status     string     `json:"status"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
}
