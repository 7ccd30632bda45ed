package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventbook/internal/domain"
)

func TestDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "plain date", input: "2025-12-15", want: "2025-12-15"},
		{name: "iso timestamp collapses to date", input: "2025-12-15T10:30:00.000Z", want: "2025-12-15"},
		{name: "iso timestamp with offset", input: "2025-06-01T02:00:00+02:00", want: "2025-06-01"},
		{name: "slash format best effort", input: "12/15/2025", want: "2025-12-15"},
		{name: "textual month", input: "Dec 15, 2025", want: "2025-12-15"},
		{name: "garbage", input: "invalid-date", wantErr: domain.ErrInvalidFormat},
		{name: "empty", input: "", wantErr: domain.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Date(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateIdempotent(t *testing.T) {
	first, err := Date("2025-12-15T10:30:00.000Z")
	require.NoError(t, err)
	second, err := Date(first)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
