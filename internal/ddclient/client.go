package ddclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/lenix123/dd-manager/internal/model"
)

const (
	findingsPath       = "/api/v2/findings/"
	riskAcceptancePath = "/api/v2/risk_acceptance/"
)

// Client talks to the vulnerability-management platform's REST API. Transport
// failures are logged and surfaced as errors; callers treat a failed page as
// the end of the scan rather than retrying.
type Client struct {
	base  string
	token string
	http  *http.Client
	log   *zap.SugaredLogger
}

func New(baseURL, token string, log *zap.SugaredLogger) *Client {
	return &Client{
		base:  baseURL,
		token: token,
		http:  &http.Client{Timeout: 30 * time.Second},
		log:   log,
	}
}

func (c *Client) get(path string, params url.Values, into any) error {
	req, err := http.NewRequest(http.MethodGet, c.base+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Token "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Errorw("request failed", "path", path, "error", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status %s", resp.Status)
		c.log.Errorw("request failed", "path", path, "error", err)
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		c.log.Errorw("decode failed", "path", path, "error", err)
		return err
	}
	return nil
}

// Findings pages through the findings collection. The first page uses limit,
// subsequent pages nextLimit (the walked API budgets request quotas by page
// size, so follow-up pages are kept small).
func (c *Client) Findings(params url.Values, limit, nextLimit int) *Pager[model.Finding] {
	return newPager[model.Finding](c, findingsPath, params, limit, nextLimit)
}

// RiskAcceptances pages through the risk_acceptance collection with a fixed
// page size.
func (c *Client) RiskAcceptances(params url.Values, limit int) *Pager[model.RiskAcceptance] {
	return newPager[model.RiskAcceptance](c, riskAcceptancePath, params, limit, limit)
}

// Tag sets tags on a finding. Fire-and-forget: failures are logged and
// otherwise ignored.
func (c *Client) Tag(findingID int, tags ...string) {
	body, err := json.Marshal(map[string][]string{"tags": tags})
	if err != nil {
		c.log.Errorw("tag encode failed", "finding", findingID, "error", err)
		return
	}

	path := fmt.Sprintf("%s%s%d/tags/", c.base, findingsPath, findingID)
	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	if err != nil {
		c.log.Errorw("tag request failed", "finding", findingID, "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Token "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Errorw("tag request failed", "finding", findingID, "error", err)
		return
	}
	resp.Body.Close()
}

// FindingURL is the web UI link for a finding, printed for the operator.
func (c *Client) FindingURL(id int) string {
	return fmt.Sprintf("%s/finding/%d", c.base, id)
}

// RiskAcceptanceURL is the web UI link for a risk-acceptance record.
func (c *Client) RiskAcceptanceURL(id int) string {
	return fmt.Sprintf("%s/risk_acceptance/%d", c.base, id)
}
