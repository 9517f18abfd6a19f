package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mconway/firefly-iii/internal/common"
	"github.com/mconway/firefly-iii/internal/models"
	"github.com/mconway/firefly-iii/internal/monitoring"
)

type CategoryRepository interface {
	GetByName(ctx context.Context, userID int64, name string) (category *models.Category, err error)

	// GetOrCreateByName resolves the category a set_category action names,
	// creating it on first use the way the original does.
	GetOrCreateByName(ctx context.Context, userID int64, name string) (category *models.Category, err error)
}

type categoryRepository sqlRepo

var _ CategoryRepository = (*categoryRepository)(nil)

func (r *categoryRepository) GetByName(ctx context.Context, userID int64, name string) (category *models.Category, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	var entity models.Category
	err = db.QueryRowContext(ctx, queryCategoryGetByName, userID, name).Scan(
		&entity.ID,
		&entity.UserID,
		&entity.Name,
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

func (r *categoryRepository) GetOrCreateByName(ctx context.Context, userID int64, name string) (category *models.Category, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	var entity models.Category
	err = db.QueryRowContext(ctx, queryCategoryUpsertByName, userID, name).Scan(
		&entity.ID,
		&entity.UserID,
		&entity.Name,
		&entity.CreatedAt,
		&entity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &entity, nil
}
