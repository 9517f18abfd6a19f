package repositories

const queryRuleRunCreate = `
	INSERT INTO rule_run (
		"id",
		"ruleGroupId",
		"userId",
		"accountIds",
		"startDate",
		"endDate",
		"triggeredBy",
		"status",
		"createdAt",
		"updatedAt"
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
	RETURNING "id", "createdAt", "updatedAt"
`

const queryRuleRunGetByID = `
	SELECT
		"id",
		"ruleGroupId",
		"userId",
		"accountIds",
		"startDate",
		"endDate",
		"triggeredBy",
		"status",
		"failureReason",
		"transactionsProcessed",
		"rulesMatched",
		"actionsApplied",
		"startedAt",
		"finishedAt",
		"createdAt",
		"updatedAt"
	FROM rule_run
	WHERE "id" = $1
`

const queryRuleRunMarkProcessing = `
	UPDATE rule_run
	SET "status" = $2,
		"startedAt" = now(),
		"updatedAt" = now()
	WHERE "id" = $1
`

const queryRuleRunFinish = `
	UPDATE rule_run
	SET "status" = $2,
		"failureReason" = $3,
		"transactionsProcessed" = $4,
		"rulesMatched" = $5,
		"actionsApplied" = $6,
		"finishedAt" = now(),
		"updatedAt" = now()
	WHERE "id" = $1
`

const queryRuleRunListByRuleGroup = `
	SELECT
		"id",
		"ruleGroupId",
		"userId",
		"accountIds",
		"startDate",
		"endDate",
		"triggeredBy",
		"status",
		"failureReason",
		"transactionsProcessed",
		"rulesMatched",
		"actionsApplied",
		"startedAt",
		"finishedAt",
		"createdAt",
		"updatedAt"
	FROM rule_run
	WHERE "ruleGroupId" = $1
	ORDER BY "createdAt" DESC
	LIMIT $2
`
