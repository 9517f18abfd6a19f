package repositories

const (
	queryCategoryGetByName = `SELECT
			"id",
			"userId",
			"name",
			"createdAt",
			"updatedAt"
		FROM "category"
		WHERE "userId" = $1 AND lower("name") = lower($2) AND "deletedAt" IS NULL;`

	queryCategoryUpsertByName = `INSERT INTO "category" ("userId", "name")
		VALUES ($1, $2)
		ON CONFLICT ("userId", "name") DO UPDATE SET "updatedAt" = now()
		RETURNING "id", "userId", "name", "createdAt", "updatedAt";`
)
