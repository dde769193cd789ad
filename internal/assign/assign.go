package assign

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/url"

	"go.uber.org/zap"

	"github.com/lenix123/dd-manager/internal/ddclient"
	"github.com/lenix123/dd-manager/internal/model"
	"github.com/lenix123/dd-manager/internal/store"
)

// DefaultPoolSize is how many open findings one assignment round requests.
const DefaultPoolSize = 250

// ErrPoolExhausted means the quotas did not fit into the available findings.
// Quotas are expected to fit, so this is surfaced rather than truncated.
var ErrPoolExhausted = errors.New("assignment pool exhausted")

// Assigner distributes open untagged findings across users, each up to their
// quota, drawing uniformly at random from a shared pool.
type Assigner struct {
	client *ddclient.Client
	store  *store.Store
	rng    *rand.Rand
	log    *zap.SugaredLogger
}

func New(client *ddclient.Client, st *store.Store, rng *rand.Rand, log *zap.SugaredLogger) *Assigner {
	return &Assigner{client: client, store: st, rng: rng, log: log}
}

// Run fetches a pool of up to limit findings and assigns norm of them to each
// user, printing carried-over tasks first and every assignment as a UI link.
// It returns the newly assigned finding ids.
func (a *Assigner) Run(w io.Writer, limit int) ([]int, error) {
	pool, err := a.fetchPool(limit)
	if err != nil {
		return nil, err
	}

	var assigned []int
	for _, id := range a.store.SortedIDs() {
		user := a.store.Users[id]
		fmt.Fprintln(w, "\n-------")
		fmt.Fprintln(w, user.Name)

		// Outstanding tasks from earlier periods come first.
		for _, debt := range user.Tasks {
			fmt.Fprintln(w, a.client.FindingURL(debt))
		}

		for i := 0; i < user.Norm; i++ {
			if len(pool) == 0 {
				return nil, ErrPoolExhausted
			}
			pick := a.rng.Intn(len(pool))
			findingID := pool[pick].ID
			pool = append(pool[:pick], pool[pick+1:]...)

			user.AddTask(findingID)
			assigned = append(assigned, findingID)
			fmt.Fprintln(w, a.client.FindingURL(findingID))
		}
	}
	return assigned, nil
}

func (a *Assigner) fetchPool(limit int) ([]model.Finding, error) {
	params := url.Values{}
	params.Set("has_tags", "false")
	params.Set("active", "true")
	params.Set("risk_accepted", "false")

	pager := a.client.Findings(params, limit, limit)
	if !pager.Next() {
		if err := pager.Err(); err != nil {
			return nil, err
		}
		return nil, errors.New("empty findings response")
	}

	pool := pager.Page().Results
	if len(pool) < limit {
		a.log.Warnw("not enough open findings", "want", limit, "got", len(pool))
	}
	return pool, nil
}

// TagAssigned marks newly assigned findings as in work on the remote side.
// Fire-and-forget per the client's tagging contract.
func (a *Assigner) TagAssigned(ids []int) {
	for _, id := range ids {
		a.client.Tag(id, "inwork")
	}
	a.log.Infow("tagged assigned findings", "count", len(ids))
}
