package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mconway/firefly-iii/internal/common"
	"github.com/mconway/firefly-iii/internal/models"
	"github.com/mconway/firefly-iii/internal/monitoring"

	"github.com/lib/pq"
)

type RuleRunRepository interface {
	Create(ctx context.Context, in *models.RuleRun) (created *models.RuleRun, err error)
	GetByID(ctx context.Context, id string) (result *models.RuleRun, err error)
	MarkProcessing(ctx context.Context, id string) (err error)
	Finish(ctx context.Context, in *models.RuleRun) (err error)
	GetListByRuleGroup(ctx context.Context, ruleGroupID int64, limit int) (result []models.RuleRun, err error)
}

type ruleRunRepository sqlRepo

var _ RuleRunRepository = (*ruleRunRepository)(nil)

func (r *ruleRunRepository) Create(ctx context.Context, in *models.RuleRun) (created *models.RuleRun, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	var entity models.RuleRun
	err = db.QueryRowContext(ctx, queryRuleRunCreate,
		in.ID,
		in.RuleGroupID,
		in.UserID,
		pq.Array([]int64(in.AccountIDs)),
		in.StartDate,
		in.EndDate,
		in.TriggeredBy,
		models.RuleRunStatusPending,
	).Scan(
		&entity.ID,
		&entity.CreatedAt,
		&entity.UpdatedAt,
	)
	if err != nil {
		return
	}

	entity.RuleGroupID = in.RuleGroupID
	entity.UserID = in.UserID
	entity.AccountIDs = in.AccountIDs
	entity.StartDate = in.StartDate
	entity.EndDate = in.EndDate
	entity.TriggeredBy = in.TriggeredBy
	entity.Status = models.RuleRunStatusPending
	created = &entity

	return
}

func (r *ruleRunRepository) GetByID(ctx context.Context, id string) (result *models.RuleRun, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	var entity models.RuleRun
	err = db.QueryRowContext(ctx, queryRuleRunGetByID, id).Scan(
		&entity.ID,
		&entity.RuleGroupID,
		&entity.UserID,
		&entity.AccountIDs,
		&entity.StartDate,
		&entity.EndDate,
		&entity.TriggeredBy,
		&entity.Status,
		&entity.FailureReason,
		&entity.TransactionsProcessed,
		&entity.RulesMatched,
		&entity.ActionsApplied,
		&entity.StartedAt,
		&entity.FinishedAt,
		&entity.CreatedAt,
		&entity.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrDataNotFound
		}
		return nil, err
	}

	return &entity, nil
}

func (r *ruleRunRepository) MarkProcessing(ctx context.Context, id string) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryRuleRunMarkProcessing, id, models.RuleRunStatusProcessing)
	if err != nil {
		return
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return
	}
	if affected == 0 {
		return common.ErrNoRowsAffected
	}

	return
}

func (r *ruleRunRepository) Finish(ctx context.Context, in *models.RuleRun) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryRuleRunFinish,
		in.ID,
		in.Status,
		in.FailureReason,
		in.TransactionsProcessed,
		in.RulesMatched,
		in.ActionsApplied,
	)
	if err != nil {
		return
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return
	}
	if affected == 0 {
		return common.ErrNoRowsAffected
	}

	return
}

func (r *ruleRunRepository) GetListByRuleGroup(ctx context.Context, ruleGroupID int64, limit int) (result []models.RuleRun, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryRuleRunListByRuleGroup, ruleGroupID, limit)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var entity models.RuleRun
		err = rows.Scan(
			&entity.ID,
			&entity.RuleGroupID,
			&entity.UserID,
			&entity.AccountIDs,
			&entity.StartDate,
			&entity.EndDate,
			&entity.TriggeredBy,
			&entity.Status,
			&entity.FailureReason,
			&entity.TransactionsProcessed,
			&entity.RulesMatched,
			&entity.ActionsApplied,
			&entity.StartedAt,
			&entity.FinishedAt,
			&entity.CreatedAt,
			&entity.UpdatedAt,
		)
		if err != nil {
			return result, err
		}
		result = append(result, entity)
	}
	if err = rows.Err(); err != nil {
		return result, err
	}

	return result, nil
}
