package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mconway/firefly-iii/internal/common"
	"github.com/mconway/firefly-iii/internal/models"
	"github.com/mconway/firefly-iii/internal/monitoring"
)

const lastRunStatusKeyFormat = "rule-run:last:%d"

type RuleGroupService interface {
	GetListByUser(ctx context.Context, userID int64) (groups []models.RuleGroup, total int, err error)
	GetDetail(ctx context.Context, userID, ruleGroupID int64) (group *models.RuleGroup, rules []models.Rule, err error)
	GetLastRunStatus(ctx context.Context, ruleGroupID int64) (status *models.LastRunStatus, err error)
}

type ruleGroup service

var _ RuleGroupService = (*ruleGroup)(nil)

func (s *ruleGroup) GetListByUser(ctx context.Context, userID int64) (groups []models.RuleGroup, total int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	groups, err = s.srv.sqlRepo.GetRuleGroupRepository().GetListByUser(ctx, userID)
	if err != nil {
		return nil, 0, checkDatabaseError(err)
	}

	total, err = s.srv.sqlRepo.GetRuleGroupRepository().CountAllByUser(ctx, userID)
	if err != nil {
		return nil, 0, checkDatabaseError(err)
	}

	return groups, total, nil
}

// GetDetail returns the group and the rules of it that are runnable against
// stored journals, in execution order.
func (s *ruleGroup) GetDetail(ctx context.Context, userID, ruleGroupID int64) (group *models.RuleGroup, rules []models.Rule, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	group, err = s.srv.sqlRepo.GetRuleGroupRepository().GetByID(ctx, ruleGroupID)
	if err != nil {
		return nil, nil, checkDatabaseError(err, "RULE-404")
	}
	if group.UserID != userID {
		return nil, nil, models.GetErrMap("RULE-404")
	}

	rules, err = s.srv.sqlRepo.GetRuleRepository().GetEligibleRules(ctx, ruleGroupID)
	if err != nil {
		return nil, nil, checkDatabaseError(err)
	}

	return group, rules, nil
}

// GetLastRunStatus answers status polls from the cache, falling back to the
// newest run row when the cache entry has expired.
func (s *ruleGroup) GetLastRunStatus(ctx context.Context, ruleGroupID int64) (status *models.LastRunStatus, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	raw, err := s.srv.cacheRepo.Get(ctx, fmt.Sprintf(lastRunStatusKeyFormat, ruleGroupID))
	if err == nil {
		var cached models.LastRunStatus
		if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
			return &cached, nil
		}
	} else if !errors.Is(err, common.ErrDataNotFound) {
		return nil, err
	}

	runs, err := s.srv.sqlRepo.GetRuleRunRepository().GetListByRuleGroup(ctx, ruleGroupID, 1)
	if err != nil {
		return nil, checkDatabaseError(err)
	}
	if len(runs) == 0 {
		return nil, models.GetErrMap("RUN-404")
	}

	return &models.LastRunStatus{
		RunID:      runs[0].ID,
		Status:     runs[0].Status,
		FinishedAt: runs[0].FinishedAt,
	}, nil
}
