package repositories

import (
	"github.com/mconway/firefly-iii/internal/models"

	sq "github.com/Masterminds/squirrel"
)

const (
	queryTransactionStore = `INSERT INTO "transaction"
		(
		 "userId",
		 "transactionDate",
		 "transactionType",
		 "description",
		 "notes",
		 "amount",
		 "currency",
		 "sourceAccountId",
		 "destinationAccountId",
		 "categoryId",
		 "tags"
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, "createdAt", "updatedAt"`

	queryTransactionGetByID = `SELECT
			t."id",
			t."userId",
			t."transactionDate",
			t."transactionType",
			t."description",
			COALESCE(t."notes", '') as "notes",
			t."amount",
			t."currency",
			t."sourceAccountId",
			COALESCE(sa."name", '') as "sourceAccountName",
			t."destinationAccountId",
			COALESCE(da."name", '') as "destinationAccountName",
			t."categoryId",
			COALESCE(c."name", '') as "categoryName",
			t."tags",
			t."createdAt",
			t."updatedAt"
		FROM "transaction" t
		LEFT JOIN "account" sa ON sa."id" = t."sourceAccountId"
		LEFT JOIN "account" da ON da."id" = t."destinationAccountId"
		LEFT JOIN "category" c ON c."id" = t."categoryId"
		WHERE t."id" = $1;`

	queryTransactionApplyRuleMutations = `
		UPDATE "transaction"
		SET
			"description" = $2,
			"notes" = $3,
			"categoryId" = $4,
			"tags" = $5,
			"updatedAt" = now()
		WHERE "id" = $1;`
)

var collectForRunColumns = []string{
	`t."id"`,
	`t."userId"`,
	`t."transactionDate"`,
	`t."transactionType"`,
	`t."description"`,
	`COALESCE(t."notes", '') as "notes"`,
	`t."amount"`,
	`t."currency"`,
	`t."sourceAccountId"`,
	`COALESCE(sa."name", '') as "sourceAccountName"`,
	`t."destinationAccountId"`,
	`COALESCE(da."name", '') as "destinationAccountName"`,
	`t."categoryId"`,
	`COALESCE(c."name", '') as "categoryName"`,
	`t."tags"`,
	`t."createdAt"`,
	`t."updatedAt"`,
}

func buildCollectForRunQuery(opts models.TransactionCollectOptions) (sql string, args []interface{}, err error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.Select(collectForRunColumns...).
		From(`"transaction" t`).
		LeftJoin(`"account" sa ON sa."id" = t."sourceAccountId"`).
		LeftJoin(`"account" da ON da."id" = t."destinationAccountId"`).
		LeftJoin(`"category" c ON c."id" = t."categoryId"`).
		Where(sq.Eq{`t."userId"`: opts.UserID})

	if len(opts.AccountIDs) > 0 {
		query = query.Where(sq.Or{
			sq.Eq{`t."sourceAccountId"`: opts.AccountIDs},
			sq.Eq{`t."destinationAccountId"`: opts.AccountIDs},
		})
	}

	if opts.StartDate != nil {
		query = query.Where(sq.GtOrEq{`t."transactionDate"`: opts.StartDate})
	}

	if opts.EndDate != nil {
		query = query.Where(sq.LtOrEq{`t."transactionDate"`: opts.EndDate})
	}

	// order pins the replay: date first, id breaks ties
	query = query.OrderBy(`t."transactionDate" ASC`, `t."id" ASC`)

	return query.ToSql()
}
