package atiparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *time.Time
	}{
		{"iso", "2026-02-07", ptr(date(2026, time.February, 7))},
		{"us month first", "02/07/2026", ptr(date(2026, time.February, 7))},
		{"us single digits", "2/7/2026", ptr(date(2026, time.February, 7))},
		{"eu day first", "07.02.2026", ptr(date(2026, time.February, 7))},
		{"embedded in label text", "Evaluated: 02/07/2026 14:02", ptr(date(2026, time.February, 7))},
		{"impossible everywhere", "13.99.2026", nil},
		{"us impossible month falls through", "14/01/2026", nil},
		{"empty", "", nil},
		{"placeholder dash", "-", nil},
		{"whitespace dash", "  -  ", nil},
		{"garbage", "not a date", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDate(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestParseDateImpossibleISOFallsThroughToUS(t *testing.T) {
	// The ISO pattern matches "2026-18-07" but month 18 is impossible;
	// the token must fall through, not error, and nothing else matches.
	assert.Nil(t, ParseDate("2026-18-07"))

	// A token carrying both an impossible ISO date and a valid US date
	// resolves to the US one.
	got := ParseDate("2026-18-07 printed 02/07/2026")
	require.NotNil(t, got)
	assert.Equal(t, date(2026, time.February, 7), *got)
}

func ptr[T any](v T) *T { return &v }
