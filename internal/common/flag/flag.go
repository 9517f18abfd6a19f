// Package flag carries the parsed command line arguments of a worker job run.
package flag

type Job struct {
	JobName     string
	Version     string
	RuleGroupID string
	UserID      string
	AccountIDs  string
	StartDate   string
	EndDate     string
	TriggeredBy string
}
