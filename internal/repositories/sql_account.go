package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mconway/firefly-iii/internal/common"
	"github.com/mconway/firefly-iii/internal/common/cache"
	"github.com/mconway/firefly-iii/internal/models"
	"github.com/mconway/firefly-iii/internal/monitoring"
)

const accountCacheTTL = 5 * time.Minute

type AccountRepository interface {
	GetByID(ctx context.Context, id int64) (account *models.Account, err error)
	GetListByUser(ctx context.Context, userID int64) (accounts []models.Account, err error)
}

type accountRepository sqlRepo

var _ AccountRepository = (*accountRepository)(nil)

func (r *accountRepository) GetByID(ctx context.Context, id int64) (account *models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	cached, err := r.r.cacheAccount.GetOrSet(ctx, cache.GetOrSetOpts[models.Account]{
		Key: fmt.Sprintf("account:%d", id),
		TTL: accountCacheTTL,
		Callback: func() (models.Account, error) {
			return r.getByID(ctx, id)
		},
	})
	if err != nil {
		return nil, err
	}

	return &cached, nil
}

func (r *accountRepository) getByID(ctx context.Context, id int64) (account models.Account, err error) {
	db := r.r.extractTxRead(ctx)

	err = db.QueryRowContext(ctx, queryAccountGetByID, id).Scan(
		&account.ID,
		&account.UserID,
		&account.Name,
		&account.Type,
		&account.Currency,
		&account.Status,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return account, common.ErrAccountNotFound
		}
		return account, err
	}

	return account, nil
}

func (r *accountRepository) GetListByUser(ctx context.Context, userID int64) (accounts []models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryAccountListByUser, userID)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var entity models.Account
		err = rows.Scan(
			&entity.ID,
			&entity.UserID,
			&entity.Name,
			&entity.Type,
			&entity.Currency,
			&entity.Status,
			&entity.CreatedAt,
			&entity.UpdatedAt,
		)
		if err != nil {
			return accounts, err
		}
		accounts = append(accounts, entity)
	}
	if err = rows.Err(); err != nil {
		return accounts, err
	}

	return accounts, nil
}
