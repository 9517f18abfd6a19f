package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mconway/firefly-iii/internal/common"
	"github.com/mconway/firefly-iii/internal/models"
	"github.com/mconway/firefly-iii/internal/monitoring"

	"github.com/lib/pq"
)

type TransactionRepository interface {
	Store(ctx context.Context, en *models.Transaction) (err error)
	GetByID(ctx context.Context, id int64) (en *models.Transaction, err error)

	// CollectForRun returns the complete, ordered transaction set one batch
	// run walks: the user's journals, optionally narrowed to an account set
	// and a date window, ordered by transaction date then id.
	CollectForRun(ctx context.Context, opts models.TransactionCollectOptions) (list []models.Transaction, err error)

	// ApplyRuleMutations persists the columns rule actions touch.
	ApplyRuleMutations(ctx context.Context, en *models.Transaction) (err error)
}

type transactionRepository sqlRepo

var _ TransactionRepository = (*transactionRepository)(nil)

func (tr *transactionRepository) Store(ctx context.Context, en *models.Transaction) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := tr.r.extractTxWrite(ctx)

	err = db.
		QueryRowContext(ctx, queryTransactionStore,
			en.UserID,
			en.TransactionDate,
			en.TransactionType,
			en.Description,
			en.Notes,
			en.Amount,
			en.Currency,
			en.SourceAccountID,
			en.DestinationAccountID,
			en.CategoryID,
			pq.Array([]string(en.Tags))).
		Scan(&en.ID,
			&en.CreatedAt,
			&en.UpdatedAt)
	if err != nil {
		return
	}

	return
}

func (tr *transactionRepository) GetByID(ctx context.Context, id int64) (en *models.Transaction, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := tr.r.extractTxRead(ctx)

	var entity models.Transaction
	err = db.QueryRowContext(ctx, queryTransactionGetByID, id).Scan(
		&entity.ID,
		&entity.UserID,
		&entity.TransactionDate,
		&entity.TransactionType,
		&entity.Description,
		&entity.Notes,
		&entity.Amount,
		&entity.Currency,
		&entity.SourceAccountID,
		&entity.SourceAccountName,
		&entity.DestinationAccountID,
		&entity.DestinationAccountName,
		&entity.CategoryID,
		&entity.CategoryName,
		&entity.Tags,
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

func (tr *transactionRepository) CollectForRun(ctx context.Context, opts models.TransactionCollectOptions) (list []models.Transaction, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := tr.r.extractTxRead(ctx)

	query, args, err := buildCollectForRunQuery(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var entity models.Transaction
		err = rows.Scan(
			&entity.ID,
			&entity.UserID,
			&entity.TransactionDate,
			&entity.TransactionType,
			&entity.Description,
			&entity.Notes,
			&entity.Amount,
			&entity.Currency,
			&entity.SourceAccountID,
			&entity.SourceAccountName,
			&entity.DestinationAccountID,
			&entity.DestinationAccountName,
			&entity.CategoryID,
			&entity.CategoryName,
			&entity.Tags,
			&entity.CreatedAt,
			&entity.UpdatedAt,
		)
		if err != nil {
			return list, err
		}
		list = append(list, entity)
	}
	if err = rows.Err(); err != nil {
		return list, err
	}

	return list, nil
}

func (tr *transactionRepository) ApplyRuleMutations(ctx context.Context, en *models.Transaction) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := tr.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryTransactionApplyRuleMutations,
		en.ID,
		en.Description,
		en.Notes,
		en.CategoryID,
		pq.Array([]string(en.Tags)),
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
