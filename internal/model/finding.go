package model

import "time"

// Finding is the platform's wire representation of a single finding, limited
// to the fields this tool reads.
type Finding struct {
	ID            int              `json:"id"`
	Active        bool             `json:"active"`
	IsMitigated   bool             `json:"is_mitigated"`
	Mitigated     *time.Time       `json:"mitigated"`
	MitigatedBy   int              `json:"mitigated_by"`
	RiskAccepted  bool             `json:"risk_accepted"`
	AcceptedRisks []RiskAcceptance `json:"accepted_risks"`
}

// RiskAcceptance covers both the entries embedded in a finding's
// accepted_risks list and the standalone records of the risk_acceptance
// collection; fields absent from one shape are simply zero.
type RiskAcceptance struct {
	ID                int       `json:"id"`
	Owner             int       `json:"owner"`
	Created           time.Time `json:"created"`
	Updated           time.Time `json:"updated"`
	ReactivateExpired bool      `json:"reactivate_expired"`
	AcceptedFindings  []int     `json:"accepted_findings"`
}
