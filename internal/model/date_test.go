package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"valid", "29/07/2002", time.Date(2002, 7, 29, 0, 0, 0, 0, time.UTC), false},
		{"iso_rejected", "2002-07-29", time.Time{}, true},
		{"empty", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDay(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.True(t, got.Equal(tt.want))
		})
	}
}

func TestDay(t *testing.T) {
	ts := time.Date(2024, 1, 3, 23, 59, 59, 1e8, time.UTC)
	require.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), Day(ts))
}
