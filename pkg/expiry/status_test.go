package expiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	today := MustParseDate("2024-06-10")

	tests := []struct {
		name       string
		expiration Date
		want       Status
	}{
		{name: "long past", expiration: today.AddDays(-30), want: StatusExpired},
		{name: "yesterday", expiration: today.AddDays(-1), want: StatusExpired},
		{name: "today", expiration: today, want: StatusExpired},
		{name: "tomorrow", expiration: today.AddDays(1), want: StatusWarning},
		{name: "last day of window", expiration: today.AddDays(7), want: StatusWarning},
		{name: "first day after window", expiration: today.AddDays(8), want: StatusActive},
		{name: "far future", expiration: today.AddDays(365), want: StatusActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.expiration, today, DefaultWarningWindowDays))
		})
	}
}

func TestClassifyCustomWindow(t *testing.T) {
	today := MustParseDate("2024-06-10")

	assert.Equal(t, StatusWarning, Classify(today.AddDays(3), today, 3))
	assert.Equal(t, StatusActive, Classify(today.AddDays(4), today, 3))
	assert.Equal(t, StatusActive, Classify(today.AddDays(1), today, 0))
}

func TestPolicyTodayUsesLocation(t *testing.T) {
	tokyo := time.FixedZone("UTC+9", 9*60*60)
	policy := Policy{
		Location: tokyo,
		Clock: func() time.Time {
			return time.Date(2024, time.June, 10, 20, 0, 0, 0, time.UTC)
		},
	}

	assert.Equal(t, "2024-06-11", policy.Today().String())
	assert.Equal(t, DefaultWarningWindowDays, policy.Window())
}

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus(" Warning ")
	require.NoError(t, err)
	assert.Equal(t, StatusWarning, status)
	assert.True(t, status.NeedsAttention())
	assert.False(t, StatusActive.NeedsAttention())

	_, err = ParseStatus("damaged")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
