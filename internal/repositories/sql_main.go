package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mconway/firefly-iii/internal/common/cache"
	"github.com/mconway/firefly-iii/internal/common/log"
	"github.com/mconway/firefly-iii/internal/config"
	"github.com/mconway/firefly-iii/internal/models"

	"go.uber.org/zap"
)

type sqlRepo struct {
	r *Repository
}

type Repository struct {
	dbWrite *sql.DB
	dbRead  *sql.DB
	config  config.Config
	common  sqlRepo

	rgr *ruleGroupRepository
	rr  *ruleRepository
	tr  *transactionRepository
	ar  *accountRepository
	cr  *categoryRepository
	rnr *ruleRunRepository

	cacheAccount cache.Client[models.Account]
}

func NewSQLRepository(
	dbWrite *sql.DB,
	dbRead *sql.DB,
	cfg config.Config,
) *Repository {
	rtx := &Repository{
		dbWrite: dbWrite,
		dbRead:  dbRead,
		config:  cfg,
	}
	rtx.common.r = rtx
	rtx.rgr = (*ruleGroupRepository)(&rtx.common)
	rtx.rr = (*ruleRepository)(&rtx.common)
	rtx.tr = (*transactionRepository)(&rtx.common)
	rtx.ar = (*accountRepository)(&rtx.common)
	rtx.cr = (*categoryRepository)(&rtx.common)
	rtx.rnr = (*ruleRunRepository)(&rtx.common)

	rtx.cacheAccount = cache.NewInMemoryClient[models.Account]()

	return rtx
}

type SQLRepository interface {
	Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) error
	GetRuleGroupRepository() RuleGroupRepository
	GetRuleRepository() RuleRepository
	GetTransactionRepository() TransactionRepository
	GetAccountRepository() AccountRepository
	GetCategoryRepository() CategoryRepository
	GetRuleRunRepository() RuleRunRepository
}

var _ SQLRepository = (*Repository)(nil)

func (r *Repository) Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) (err error) {
	tx, err := r.dbWrite.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	log.Info(ctx, "[DATABASE.TRANSACTION.BEGIN]")
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			err = fmt.Errorf("panic happened because: %v", p)
			log.Error(ctx, "[DATABASE.TRANSACTION.PANIC]", zap.Error(err))
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
			}
			log.Warn(ctx, "[DATABASE.TRANSACTION.ROLLBACK]", zap.Error(err))
		} else {
			if err = tx.Commit(); err != nil {
				if errors.Is(err, sql.ErrTxDone) {
					log.Warn(ctx, "[DATABASE.TRANSACTION.ALREADY_COMMITTED_OR_ROLLEDBACK]", zap.Error(err))
					err = nil
				}
			}

			log.Info(ctx, "[DATABASE.TRANSACTION.COMMIT]")
		}
	}()
	ctx = injectTx(ctx, tx)
	err = steps(ctx, r)
	return
}

func (r *Repository) GetRuleGroupRepository() RuleGroupRepository {
	return r.rgr
}

func (r *Repository) GetRuleRepository() RuleRepository {
	return r.rr
}

func (r *Repository) GetTransactionRepository() TransactionRepository {
	return r.tr
}

func (r *Repository) GetAccountRepository() AccountRepository {
	return r.ar
}

func (r *Repository) GetCategoryRepository() CategoryRepository {
	return r.cr
}

func (r *Repository) GetRuleRunRepository() RuleRunRepository {
	return r.rnr
}

func (r *Repository) SubstitutePlaceholder(data string, startInt int) (res string) {
	placeholderCount := strings.Count(data, "?")
	res = data
	for i := startInt; i < startInt+placeholderCount; i++ {
		res = strings.Replace(res, "?", "$"+strconv.Itoa(i), 1)
	}
	return res
}
