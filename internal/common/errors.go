package common

import (
	"database/sql"
	"errors"
)

var (
	ErrNoRowsAffected      = errors.New("no rows affected")
	ErrValidation          = errors.New("validation failed")
	ErrDataNotFound        = errors.New("data not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrInvalidFormatDate   = errors.New("invalid format date")
	ErrIDEmpty             = errors.New("ID is empty")
	ErrUnableToCreate      = errors.New("unable to create data")
	ErrUnableToUpdate      = errors.New("unable to update data")

	ErrRuleGroupNotFound     = errors.New("rule group not found")
	ErrRuleGroupNotOwned     = errors.New("rule group does not belong to user")
	ErrRuleNotPersisted      = errors.New("rule has no identifier, persist it before binding")
	ErrRuleHasNoTriggers     = errors.New("rule has no triggers configured")
	ErrRuleHasNoActions      = errors.New("rule has no actions configured")
	ErrUnknownTriggerType    = errors.New("unknown trigger type")
	ErrUnknownActionType     = errors.New("unknown action type")
	ErrProcessorNotBound     = errors.New("processor has no rule bound")
	ErrRunNotConfigured      = errors.New("rule run request is not configured")
	ErrRunAlreadyFinished    = errors.New("rule run already finished")
	ErrAccountNotFound       = errors.New("account not found")
	ErrTransactionNotFound   = errors.New("transaction not found")
	ErrSameSourceDestination = errors.New("source and destination account are the same")

	ErrNoRows = sql.ErrNoRows
)
