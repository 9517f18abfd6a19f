package models

import (
	"errors"
	"fmt"
)

type (
	MapErrs     map[string]ErrorDetail
	ErrorDetail struct {
		Code         string `json:"code,omitempty"`
		ErrorMessage error  `json:"message,omitempty"`
	}
)

func (e ErrorDetail) Error() string {
	return fmt.Sprintf("code: %s, message: %v", e.Code, e.ErrorMessage)
}

func GetErrMap(code string, args ...string) ErrorDetail {
	v, ok := MapErrors[code]
	if !ok {
		return ErrorDetail{
			Code:         code,
			ErrorMessage: errors.New("unknown error mapping"),
		}
	}
	if len(args) > 0 {
		v.ErrorMessage = fmt.Errorf("%s caused by %s", v.ErrorMessage, args[0])
	}

	return v
}

// MapErrors maps "<field>_<tag>" validation keys and service error codes
// to the detail rendered in the REST envelope.
var MapErrors = MapErrs{
	"rule_group_id_required": {
		Code:         "RULE-001",
		ErrorMessage: errors.New("rule group id is required"),
	},
	"user_id_required": {
		Code:         "RULE-002",
		ErrorMessage: errors.New("user id is required"),
	},
	"start_date_date": {
		Code:         "RULE-003",
		ErrorMessage: errors.New("start date must be formatted YYYY-MM-DD"),
	},
	"end_date_date": {
		Code:         "RULE-004",
		ErrorMessage: errors.New("end date must be formatted YYYY-MM-DD"),
	},
	"description_required": {
		Code:         "TRX-001",
		ErrorMessage: errors.New("description is required"),
	},
	"transaction_date_date": {
		Code:         "TRX-002",
		ErrorMessage: errors.New("transaction date must be formatted YYYY-MM-DD"),
	},
	"amount_required": {
		Code:         "TRX-003",
		ErrorMessage: errors.New("amount is required"),
	},
	"source_account_id_required": {
		Code:         "TRX-004",
		ErrorMessage: errors.New("source account id is required"),
	},
	"destination_account_id_required": {
		Code:         "TRX-005",
		ErrorMessage: errors.New("destination account id is required"),
	},
	"currency_required": {
		Code:         "TRX-006",
		ErrorMessage: errors.New("currency is required"),
	},
	"RULE-404": {
		Code:         "RULE-404",
		ErrorMessage: errors.New("rule group not found"),
	},
	"RUN-404": {
		Code:         "RUN-404",
		ErrorMessage: errors.New("rule run not found"),
	},
	"TRX-404": {
		Code:         "TRX-404",
		ErrorMessage: errors.New("transaction not found"),
	},
}
