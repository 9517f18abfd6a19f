package services

import (
	"context"

	"github.com/mconway/firefly-iii/internal/common"
	"github.com/mconway/firefly-iii/internal/common/validation"
	"github.com/mconway/firefly-iii/internal/models"
	"github.com/mconway/firefly-iii/internal/monitoring"
)

type TransactionService interface {
	// Store persists a new transaction and immediately runs the user's
	// store-journal rules against it.
	Store(ctx context.Context, req models.StoreTransactionRequest) (out *models.TransactionOut, err error)
	GetByID(ctx context.Context, id int64) (out *models.TransactionOut, err error)
}

type transaction service

var _ TransactionService = (*transaction)(nil)

func (s *transaction) Store(ctx context.Context, req models.StoreTransactionRequest) (out *models.TransactionOut, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if err = validation.ValidateStruct(req); err != nil {
		return nil, err
	}

	if req.SourceAccountID == req.DestinationAccountID {
		return nil, common.ErrSameSourceDestination
	}

	txn, err := req.ToTransaction()
	if err != nil {
		return nil, err
	}

	source, err := s.srv.sqlRepo.GetAccountRepository().GetByID(ctx, txn.SourceAccountID)
	if err != nil {
		return nil, err
	}
	destination, err := s.srv.sqlRepo.GetAccountRepository().GetByID(ctx, txn.DestinationAccountID)
	if err != nil {
		return nil, err
	}
	txn.SourceAccountName = source.Name
	txn.DestinationAccountName = destination.Name

	if err = s.srv.sqlRepo.GetTransactionRepository().Store(ctx, &txn); err != nil {
		return nil, err
	}

	// rules fire on the stored journal; mutations are persisted inside
	if _, err = s.srv.Rule.ApplyStoreRules(ctx, &txn); err != nil {
		return nil, err
	}

	return txn.ConvertToTransactionOut(), nil
}

func (s *transaction) GetByID(ctx context.Context, id int64) (out *models.TransactionOut, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	txn, err := s.srv.sqlRepo.GetTransactionRepository().GetByID(ctx, id)
	if err != nil {
		return nil, checkDatabaseError(err, "TRX-404")
	}

	return txn.ConvertToTransactionOut(), nil
}
