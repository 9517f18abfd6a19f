package repositories

const (
	queryRuleGroupGetByID = `SELECT
			"id",
			"userId",
			"title",
			COALESCE("description", '') as "description",
			"order",
			"active",
			"createdAt",
			"updatedAt"
		FROM "rule_group"
		WHERE "id" = $1 AND "deletedAt" IS NULL;`

	queryRuleGroupListByUser = `SELECT
			"id",
			"userId",
			"title",
			COALESCE("description", '') as "description",
			"order",
			"active",
			"createdAt",
			"updatedAt"
		FROM "rule_group"
		WHERE "userId" = $1 AND "deletedAt" IS NULL
		ORDER BY "order" ASC, "id" ASC;`

	queryRuleGroupCountByUser = `SELECT count(1) FROM "rule_group" WHERE "userId" = $1 AND "deletedAt" IS NULL;`
)
