package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/mconway/firefly-iii/internal/common"
	"github.com/mconway/firefly-iii/internal/common/log"
	"github.com/mconway/firefly-iii/internal/common/publisher"
	"github.com/mconway/firefly-iii/internal/common/validation"
	"github.com/mconway/firefly-iii/internal/models"
	"github.com/mconway/firefly-iii/internal/monitoring"
	"github.com/mconway/firefly-iii/internal/services/ruleengine"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RuleBatchService interface {
	// ExecuteRuleGroup applies every eligible rule of one group to the
	// historical transactions the request selects, synchronously.
	ExecuteRuleGroup(ctx context.Context, req models.RuleRunRequest) (err error)

	// EnqueueRun records a pending run and hands the request to the run
	// topic for asynchronous execution by the consumer.
	EnqueueRun(ctx context.Context, req models.RuleRunRequest) (run *models.RuleRun, err error)

	GetRun(ctx context.Context, runID string) (run *models.RuleRun, err error)
}

type ruleBatch service

var _ RuleBatchService = (*ruleBatch)(nil)

func (s *ruleBatch) ExecuteRuleGroup(ctx context.Context, req models.RuleRunRequest) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	start := common.Now()

	if err = validation.ValidateStruct(req); err != nil {
		return err
	}

	group, err := s.resolveOwnedGroup(ctx, req)
	if err != nil {
		return err
	}

	run, err := s.openRun(ctx, req)
	if err != nil {
		return err
	}

	summary, err := s.processGroup(ctx, group, req)

	run.TransactionsProcessed = summary.TransactionsProcessed
	run.RulesMatched = summary.RulesMatched
	run.ActionsApplied = summary.ActionsApplied
	s.closeRun(ctx, run, err)

	if ruleMetrics := s.srv.metrics.GetRuleEnginePrometheus(); ruleMetrics != nil {
		ruleMetrics.RecordRunDuration(start, err)
	}

	return err
}

func (s *ruleBatch) resolveOwnedGroup(ctx context.Context, req models.RuleRunRequest) (*models.RuleGroup, error) {
	group, err := s.srv.sqlRepo.GetRuleGroupRepository().GetByID(ctx, req.RuleGroupID)
	if err != nil {
		if errors.Is(err, common.ErrDataNotFound) {
			return nil, common.ErrRuleGroupNotFound
		}
		return nil, err
	}
	if group.UserID != req.UserID {
		return nil, common.ErrRuleGroupNotOwned
	}

	return group, nil
}

// openRun creates the bookkeeping row for an ad-hoc execution, or picks up
// the pending row the enqueue path already wrote, then flips it to
// processing.
func (s *ruleBatch) openRun(ctx context.Context, req models.RuleRunRequest) (*models.RuleRun, error) {
	runRepo := s.srv.sqlRepo.GetRuleRunRepository()

	var run *models.RuleRun
	if req.RunID != "" {
		existing, err := runRepo.GetByID(ctx, req.RunID)
		if err != nil && !errors.Is(err, common.ErrDataNotFound) {
			return nil, err
		}
		run = existing
	}

	if run == nil {
		created, err := s.createRunRow(ctx, req)
		if err != nil {
			return nil, err
		}
		run = created
	}

	if run.Status != models.RuleRunStatusPending {
		return nil, common.ErrRunAlreadyFinished
	}

	if err := runRepo.MarkProcessing(ctx, run.ID); err != nil {
		return nil, err
	}

	return run, nil
}

func (s *ruleBatch) createRunRow(ctx context.Context, req models.RuleRunRequest) (*models.RuleRun, error) {
	opts, err := req.CollectOptions()
	if err != nil {
		return nil, err
	}

	runID := req.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	triggeredBy := req.TriggeredBy
	if triggeredBy == "" {
		triggeredBy = models.RuleRunTriggeredByWorker
	}

	return s.srv.sqlRepo.GetRuleRunRepository().Create(ctx, &models.RuleRun{
		ID:          runID,
		RuleGroupID: req.RuleGroupID,
		UserID:      req.UserID,
		AccountIDs:  req.AccountIDs,
		StartDate:   opts.StartDate,
		EndDate:     opts.EndDate,
		TriggeredBy: triggeredBy,
	})
}

// processGroup is the batch core: ordered rules, ordered transactions, one
// processor per rule built up front, stopProcessing truncating per
// transaction only.
func (s *ruleBatch) processGroup(ctx context.Context, group *models.RuleGroup, req models.RuleRunRequest) (summary models.RuleRunSummary, err error) {
	opts, err := req.CollectOptions()
	if err != nil {
		return summary, err
	}

	rules, err := s.srv.sqlRepo.GetRuleRepository().GetEligibleRules(ctx, group.ID)
	if err != nil {
		return summary, err
	}
	if len(rules) == 0 {
		log.Info(ctx, "[RULE-BATCH] no eligible rules, nothing to do",
			zap.Int64("ruleGroupId", group.ID))
		return summary, nil
	}

	executor := ruleengine.NewExecutor(categoryResolver{s.srv.sqlRepo.GetCategoryRepository()})
	processors, err := buildProcessors(executor, rules)
	if err != nil {
		return summary, err
	}

	transactions, err := s.srv.sqlRepo.GetTransactionRepository().CollectForRun(ctx, opts)
	if err != nil {
		return summary, err
	}

	ruleMetrics := s.srv.metrics.GetRuleEnginePrometheus()

	for i := range transactions {
		txn := &transactions[i]

		mutated := false
		for _, p := range processors {
			matched, applied, handleErr := p.HandleTransaction(ctx, txn)
			if handleErr != nil {
				return summary, fmt.Errorf("rule %d on transaction %d: %w", p.Rule().ID, txn.ID, handleErr)
			}
			if !matched {
				continue
			}

			mutated = true
			summary.RulesMatched++
			summary.ActionsApplied += applied
			if ruleMetrics != nil {
				ruleMetrics.RecordRuleMatched(p.Rule().ID)
				for _, action := range p.Rule().Actions {
					if action.Active {
						ruleMetrics.RecordActionApplied(action.ActionType)
					}
				}
			}

			if p.Rule().StopProcessing {
				break
			}
		}

		if mutated {
			if err = s.srv.sqlRepo.GetTransactionRepository().ApplyRuleMutations(ctx, txn); err != nil {
				return summary, fmt.Errorf("persist transaction %d: %w", txn.ID, err)
			}
		}

		summary.TransactionsProcessed++
		if ruleMetrics != nil {
			ruleMetrics.RecordTransactionProcessed(group.ID)
		}
	}

	return summary, nil
}

// closeRun finishes the bookkeeping row, refreshes the cached status, and
// publishes the summary event. Bookkeeping failures are logged but never
// mask the run outcome.
func (s *ruleBatch) closeRun(ctx context.Context, run *models.RuleRun, runErr error) {
	run.Status = models.RuleRunStatusSuccess
	if runErr != nil {
		run.Status = models.RuleRunStatusFailed
		run.FailureReason = runErr.Error()
	}

	if err := s.srv.sqlRepo.GetRuleRunRepository().Finish(ctx, run); err != nil {
		log.Error(ctx, "[RULE-BATCH] failed to finish run row",
			zap.String("runId", run.ID), zap.Error(err))
	}

	finishedAt := common.Now()
	status := models.LastRunStatus{
		RunID:      run.ID,
		Status:     run.Status,
		FinishedAt: &finishedAt,
	}
	if payload, err := json.Marshal(status); err == nil {
		cacheErr := s.srv.cacheRepo.Set(ctx,
			fmt.Sprintf(lastRunStatusKeyFormat, run.RuleGroupID),
			payload, s.srv.conf.RuleEngine.RunStatusTTL)
		if cacheErr != nil {
			log.Warn(ctx, "[RULE-BATCH] failed to cache run status",
				zap.String("runId", run.ID), zap.Error(cacheErr))
		}
	}

	if !s.srv.conf.RuleEngine.PublishRunEvents || s.srv.runEventPub == nil {
		return
	}

	event := models.RuleRunEvent{
		RunID:                 run.ID,
		RuleGroupID:           run.RuleGroupID,
		UserID:                run.UserID,
		Status:                run.Status,
		FailureReason:         run.FailureReason,
		TransactionsProcessed: run.TransactionsProcessed,
		RulesMatched:          run.RulesMatched,
		ActionsApplied:        run.ActionsApplied,
		FinishedAt:            finishedAt,
	}
	err := s.srv.runEventPub.Publish(ctx, event,
		publisher.WithKey(strconv.FormatInt(run.RuleGroupID, 10)))
	if err != nil {
		log.Warn(ctx, "[RULE-BATCH] failed to publish run event",
			zap.String("runId", run.ID), zap.Error(err))
	}
}

func (s *ruleBatch) EnqueueRun(ctx context.Context, req models.RuleRunRequest) (run *models.RuleRun, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if err = validation.ValidateStruct(req); err != nil {
		return nil, err
	}

	if _, err = s.resolveOwnedGroup(ctx, req); err != nil {
		return nil, err
	}

	req.RunID = uuid.NewString()
	if req.TriggeredBy == "" {
		req.TriggeredBy = models.RuleRunTriggeredByAPI
	}

	run, err = s.createRunRow(ctx, req)
	if err != nil {
		return nil, err
	}

	err = s.srv.runRequestPub.Publish(ctx, req,
		publisher.WithKey(strconv.FormatInt(req.RuleGroupID, 10)))
	if err != nil {
		return nil, err
	}

	return run, nil
}

func (s *ruleBatch) GetRun(ctx context.Context, runID string) (run *models.RuleRun, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	run, err = s.srv.sqlRepo.GetRuleRunRepository().GetByID(ctx, runID)
	if err != nil {
		return nil, checkDatabaseError(err, "RUN-404")
	}

	return run, nil
}
