package stats

import (
	"fmt"
	"io"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/lenix123/dd-manager/internal/ddclient"
	"github.com/lenix123/dd-manager/internal/model"
	"github.com/lenix123/dd-manager/internal/store"
)

// Findings are walked ordered by most-recent status update; the first page is
// large, follow-up pages small (request-quota budgeting on the remote side).
const (
	firstPageLimit = 210
	nextPageLimit  = 25
)

type closeKind int

const (
	closedFinding closeKind = iota
	riskAcceptedFinding
)

// Engine attributes closed and risk-accepted findings to users within a date
// window and accrues each user's debt against their quota.
type Engine struct {
	client *ddclient.Client
	store  *store.Store
	window Window
	log    *zap.SugaredLogger
}

func New(client *ddclient.Client, st *store.Store, window Window, log *zap.SugaredLogger) *Engine {
	return &Engine{client: client, store: st, window: window, log: log}
}

// Run scans inactive findings and updates the per-user counters, then accrues
// debt. A failed page ends the scan early; the counters collected so far
// still count.
func (e *Engine) Run() {
	e.scanFindings()
	e.accrueDebts()
}

func (e *Engine) scanFindings() {
	params := url.Values{}
	params.Set("o", "-last_status_update")
	params.Set("active", "false")

	pager := e.client.Findings(params, firstPageLimit, nextPageLimit)
scan:
	for pager.Next() {
		for i := range pager.Page().Results {
			finding := &pager.Page().Results[i]
			switch {
			case finding.IsMitigated:
				if !e.recordMitigated(finding) {
					break scan
				}
			case finding.RiskAccepted:
				if !e.recordRiskAccepted(finding) {
					break scan
				}
			}
		}
	}
}

// recordMitigated handles a closed finding. Items newer than the window are
// skipped: the ordering is by update time, not event time, so in-window items
// may still follow. The first item older than the window stops the scan.
func (e *Engine) recordMitigated(f *model.Finding) bool {
	if f.Mitigated == nil {
		e.log.Warnw("mitigated finding without a mitigation date", "finding", f.ID)
		return true
	}
	if e.window.After(*f.Mitigated) {
		return true
	}
	if e.window.Before(*f.Mitigated) {
		return false
	}
	e.closeTask(strconv.Itoa(f.MitigatedBy), f.ID, closedFinding)
	return true
}

// recordRiskAccepted handles a risk-accepted finding through its first
// acceptance record only. An old record that was edited after creation may be
// out of the update-time sort order, so it does not stop the scan; an old
// untouched record does.
func (e *Engine) recordRiskAccepted(f *model.Finding) bool {
	if len(f.AcceptedRisks) == 0 {
		e.log.Warnw("risk-accepted finding without acceptance records", "finding", f.ID)
		return true
	}
	if len(f.AcceptedRisks) > 1 {
		// Only the first record is honored. Known simplification.
		e.log.Warnw("several risk acceptances on one finding, using the first",
			"finding", f.ID, "count", len(f.AcceptedRisks))
	}

	acceptance := &f.AcceptedRisks[0]
	if e.window.After(acceptance.Created) {
		return true
	}
	if e.window.Before(acceptance.Created) {
		return !acceptance.Created.Equal(acceptance.Updated)
	}
	e.closeTask(strconv.Itoa(acceptance.Owner), f.ID, riskAcceptedFinding)
	return true
}

func (e *Engine) closeTask(userID string, findingID int, kind closeKind) {
	user, ok := e.store.Users[userID]
	if !ok {
		e.log.Warnw("unknown user id", "user", userID, "finding", findingID)
		return
	}

	switch kind {
	case closedFinding:
		user.Closed++
	case riskAcceptedFinding:
		user.RiskAccepted++
	}

	if user.RemoveTask(findingID) {
		// The task list now only carries still-open assignments.
		user.TaskClosed++
	}
}

func (e *Engine) accrueDebts() {
	for _, user := range e.store.Users {
		user.Debt += user.Norm - (user.Closed + user.RiskAccepted)
	}
}

// Print writes the per-user report. Verbose mode appends the raw counters.
func (e *Engine) Print(w io.Writer, verbose bool) {
	for _, id := range e.store.SortedIDs() {
		user := e.store.Users[id]
		line := fmt.Sprintf("%s: %d/%d", user.Name, user.Closed+user.RiskAccepted, user.Norm)
		if verbose {
			line += fmt.Sprintf("\taccepted: %d\tclosed: %d\tassigned: %d\tdebt: %d",
				user.RiskAccepted, user.Closed, user.TaskClosed, user.Debt)
		}
		fmt.Fprintln(w, line)
	}
}
