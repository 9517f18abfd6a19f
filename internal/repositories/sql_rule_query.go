package repositories

const (
	// Eligibility follows the batch contract: the rule must be active and
	// carry a user_action/store-journal trigger row. Order inside a group is
	// "order" then id so ties stay deterministic.
	queryEligibleRulesByGroup = `SELECT
			r."id",
			r."ruleGroupId",
			r."title",
			COALESCE(r."description", '') as "description",
			r."order",
			r."active",
			r."stopProcessing",
			r."strict",
			r."createdAt",
			r."updatedAt"
		FROM "rule" r
		WHERE r."ruleGroupId" = $1
			AND r."active" = true
			AND EXISTS (
				SELECT 1 FROM "rule_trigger" rt
				WHERE rt."ruleId" = r."id"
					AND rt."triggerType" = $2
					AND rt."triggerValue" = $3
			)
		ORDER BY r."order" ASC, r."id" ASC;`

	queryEligibleRulesByUser = `SELECT
			r."id",
			r."ruleGroupId",
			r."title",
			COALESCE(r."description", '') as "description",
			r."order",
			r."active",
			r."stopProcessing",
			r."strict",
			r."createdAt",
			r."updatedAt"
		FROM "rule" r
		JOIN "rule_group" rg ON rg."id" = r."ruleGroupId"
		WHERE rg."userId" = $1
			AND rg."active" = true
			AND rg."deletedAt" IS NULL
			AND r."active" = true
			AND EXISTS (
				SELECT 1 FROM "rule_trigger" rt
				WHERE rt."ruleId" = r."id"
					AND rt."triggerType" = $2
					AND rt."triggerValue" = $3
			)
		ORDER BY rg."order" ASC, r."order" ASC, r."id" ASC;`

	queryTriggersByRuleIDs = `SELECT
			"id",
			"ruleId",
			"triggerType",
			COALESCE("triggerValue", '') as "triggerValue",
			"order",
			"active"
		FROM "rule_trigger"
		WHERE "ruleId" = ANY($1)
		ORDER BY "order" ASC, "id" ASC;`

	queryActionsByRuleIDs = `SELECT
			"id",
			"ruleId",
			"actionType",
			COALESCE("actionValue", '') as "actionValue",
			"order",
			"active"
		FROM "rule_action"
		WHERE "ruleId" = ANY($1)
		ORDER BY "order" ASC, "id" ASC;`
)
