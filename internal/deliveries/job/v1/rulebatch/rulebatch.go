package rulebatch

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mconway/firefly-iii/internal/common/flag"
	"github.com/mconway/firefly-iii/internal/common/log"
	"github.com/mconway/firefly-iii/internal/models"
	"github.com/mconway/firefly-iii/internal/services"

	"go.uber.org/zap"
)

type ruleBatchHandler struct {
	ruleBatchSrv services.RuleBatchService
}

func Routes(rbs services.RuleBatchService) map[string]func(ctx context.Context, flag flag.Job) error {
	handler := ruleBatchHandler{
		ruleBatchSrv: rbs,
	}
	return map[string]func(ctx context.Context, flag flag.Job) error{
		"ExecuteRuleGroup": handler.ExecuteRuleGroup,
		// add more job here
	}
}

func (rh *ruleBatchHandler) ExecuteRuleGroup(ctx context.Context, flag flag.Job) error {
	req, err := buildRunRequest(flag)
	if err != nil {
		return err
	}

	if err := rh.ruleBatchSrv.ExecuteRuleGroup(ctx, req); err != nil {
		return err
	}

	log.Info(ctx, "ExecuteRuleGroup",
		zap.Int64("ruleGroupId", req.RuleGroupID),
		zap.Int64("userId", req.UserID))

	return nil
}

func buildRunRequest(flag flag.Job) (models.RuleRunRequest, error) {
	ruleGroupID, err := strconv.ParseInt(flag.RuleGroupID, 10, 64)
	if err != nil {
		return models.RuleRunRequest{}, fmt.Errorf("invalid rule group id %q: %w", flag.RuleGroupID, err)
	}

	userID, err := strconv.ParseInt(flag.UserID, 10, 64)
	if err != nil {
		return models.RuleRunRequest{}, fmt.Errorf("invalid user id %q: %w", flag.UserID, err)
	}

	var accountIDs []int64
	if flag.AccountIDs != "" {
		for _, part := range strings.Split(flag.AccountIDs, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				return models.RuleRunRequest{}, fmt.Errorf("invalid account id %q: %w", part, err)
			}
			accountIDs = append(accountIDs, id)
		}
	}

	triggeredBy := flag.TriggeredBy
	if triggeredBy == "" {
		triggeredBy = models.RuleRunTriggeredByWorker
	}

	return models.RuleRunRequest{
		RuleGroupID: ruleGroupID,
		UserID:      userID,
		AccountIDs:  accountIDs,
		StartDate:   flag.StartDate,
		EndDate:     flag.EndDate,
		TriggeredBy: triggeredBy,
	}, nil
}
