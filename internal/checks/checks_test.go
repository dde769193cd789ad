package checks

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lenix123/dd-manager/internal/ddclient"
	"github.com/lenix123/dd-manager/internal/model"
)

func newChecker(t *testing.T, acceptances []model.RiskAcceptance, findings []model.Finding) *Checker {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/risk_acceptance/", func(w http.ResponseWriter, r *http.Request) {
		page := ddclient.Page[model.RiskAcceptance]{Results: acceptances}
		require.NoError(t, json.NewEncoder(w).Encode(page))
	})
	mux.HandleFunc("/api/v2/findings/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "true", r.URL.Query().Get("active"))
		page := ddclient.Page[model.Finding]{Results: findings}
		require.NoError(t, json.NewEncoder(w).Encode(page))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := ddclient.New(server.URL, "tok", zap.NewNop().Sugar())
	return New(client, zap.NewNop().Sugar())
}

func TestReactivateExpiredFlagged(t *testing.T) {
	checker := newChecker(t, []model.RiskAcceptance{
		{ID: 1, ReactivateExpired: true, AcceptedFindings: []int{50}},
		{ID: 2, ReactivateExpired: true},
		{ID: 3, ReactivateExpired: false, AcceptedFindings: []int{60}},
	}, nil)

	var out bytes.Buffer
	checker.Run(&out)

	lines := out.String()
	require.Contains(t, lines, "reactivate_expired is true: ")
	require.Contains(t, lines, "/finding/50")
	require.Contains(t, lines, "not risk_accepted but reactivate_expired: ")
	require.Contains(t, lines, "/risk_acceptance/2")
	require.NotContains(t, lines, "/finding/60")
}

func TestActiveRiskAcceptedFlagged(t *testing.T) {
	checker := newChecker(t, nil, []model.Finding{
		{ID: 10, Active: true, AcceptedRisks: []model.RiskAcceptance{{ID: 1}}},
		{ID: 11, Active: true},
	})

	var out bytes.Buffer
	checker.Run(&out)

	require.Contains(t, out.String(), "Active risk acceptance: ")
	require.Contains(t, out.String(), "/finding/10")
	require.NotContains(t, out.String(), "/finding/11")
}

func TestCheckIsIdempotent(t *testing.T) {
	checker := newChecker(t,
		[]model.RiskAcceptance{{ID: 1, ReactivateExpired: true, AcceptedFindings: []int{50}}},
		[]model.Finding{{ID: 10, Active: true, AcceptedRisks: []model.RiskAcceptance{{ID: 1}}}},
	)

	var first, second bytes.Buffer
	checker.Run(&first)
	checker.Run(&second)
	require.Equal(t, first.String(), second.String())
	require.NotEmpty(t, first.String())
}

func TestCheckStopsQuietlyOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer server.Close()

	client := ddclient.New(server.URL, "tok", zap.NewNop().Sugar())
	checker := New(client, zap.NewNop().Sugar())

	var out bytes.Buffer
	checker.Run(&out)
	require.Empty(t, out.String())
}
