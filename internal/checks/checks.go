package checks

import (
	"fmt"
	"io"
	"net/url"

	"go.uber.org/zap"

	"github.com/lenix123/dd-manager/internal/ddclient"
)

const pageLimit = 100

// Checker runs read-only scans for anomalous remote state. Nothing is
// mutated; anomalies are printed for the operator.
type Checker struct {
	client *ddclient.Client
	log    *zap.SugaredLogger
}

func New(client *ddclient.Client, log *zap.SugaredLogger) *Checker {
	return &Checker{client: client, log: log}
}

func (c *Checker) Run(w io.Writer) {
	c.reactivateExpired(w)
	c.activeRiskAccepted(w)
}

// reactivateExpired flags risk acceptances set to reactivate their findings
// on expiry. The linked finding's URL is printed when one exists, the
// acceptance's own URL otherwise.
func (c *Checker) reactivateExpired(w io.Writer) {
	pager := c.client.RiskAcceptances(url.Values{}, pageLimit)
	for pager.Next() {
		for _, acceptance := range pager.Page().Results {
			if !acceptance.ReactivateExpired {
				continue
			}
			if len(acceptance.AcceptedFindings) > 0 {
				fmt.Fprintln(w, "reactivate_expired is true: "+c.client.FindingURL(acceptance.AcceptedFindings[0]))
			} else {
				fmt.Fprintln(w, "not risk_accepted but reactivate_expired: "+c.client.RiskAcceptanceURL(acceptance.ID))
			}
		}
	}
}

// activeRiskAccepted flags findings that carry acceptance records while still
// active; a genuinely risk-accepted finding is expected to be inactive.
func (c *Checker) activeRiskAccepted(w io.Writer) {
	params := url.Values{}
	params.Set("active", "true")

	pager := c.client.Findings(params, pageLimit, pageLimit)
	for pager.Next() {
		for _, finding := range pager.Page().Results {
			if len(finding.AcceptedRisks) > 0 {
				fmt.Fprintln(w, "Active risk acceptance: "+c.client.FindingURL(finding.ID))
			}
		}
	}
}
