package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mconway/firefly-iii/internal/common"
	"github.com/mconway/firefly-iii/internal/models"
	"github.com/mconway/firefly-iii/internal/monitoring"
)

type RuleGroupRepository interface {
	GetByID(ctx context.Context, id int64) (group *models.RuleGroup, err error)
	GetListByUser(ctx context.Context, userID int64) (groups []models.RuleGroup, err error)
	CountAllByUser(ctx context.Context, userID int64) (total int, err error)
}

type ruleGroupRepository sqlRepo

var _ RuleGroupRepository = (*ruleGroupRepository)(nil)

func (r *ruleGroupRepository) GetByID(ctx context.Context, id int64) (group *models.RuleGroup, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	var entity models.RuleGroup
	err = db.QueryRowContext(ctx, queryRuleGroupGetByID, id).Scan(
		&entity.ID,
		&entity.UserID,
		&entity.Title,
		&entity.Description,
		&entity.Order,
		&entity.Active,
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

func (r *ruleGroupRepository) GetListByUser(ctx context.Context, userID int64) (groups []models.RuleGroup, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryRuleGroupListByUser, userID)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var entity models.RuleGroup
		err = rows.Scan(
			&entity.ID,
			&entity.UserID,
			&entity.Title,
			&entity.Description,
			&entity.Order,
			&entity.Active,
			&entity.CreatedAt,
			&entity.UpdatedAt,
		)
		if err != nil {
			return groups, err
		}
		groups = append(groups, entity)
	}
	if err = rows.Err(); err != nil {
		return groups, err
	}

	return groups, nil
}

func (r *ruleGroupRepository) CountAllByUser(ctx context.Context, userID int64) (total int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	if err = db.QueryRowContext(ctx, queryRuleGroupCountByUser, userID).Scan(&total); err != nil {
		return
	}

	return
}
