package repositories

const (
	queryAccountGetByID = `SELECT
			"id",
			"userId",
			"name",
			"type",
			"currency",
			"status",
			"createdAt",
			"updatedAt"
		FROM "account"
		WHERE "id" = $1 AND "deletedAt" IS NULL;`

	queryAccountListByUser = `SELECT
			"id",
			"userId",
			"name",
			"type",
			"currency",
			"status",
			"createdAt",
			"updatedAt"
		FROM "account"
		WHERE "userId" = $1 AND "deletedAt" IS NULL
		ORDER BY "name" ASC;`
)
