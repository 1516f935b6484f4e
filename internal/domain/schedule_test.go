package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlust/planner/backend/internal/domain"
)

func TestExpandRange_MultiDay(t *testing.T) {
	days, err := domain.ExpandRange("2025-06-01", "2025-06-05")

	require.NoError(t, err)
	assert.Equal(t, []string{
		"2025-06-01", "2025-06-02", "2025-06-03", "2025-06-04", "2025-06-05",
	}, days)
}

func TestExpandRange_SingleDay(t *testing.T) {
	days, err := domain.ExpandRange("2025-06-01", "2025-06-01")

	require.NoError(t, err)
	assert.Equal(t, []string{"2025-06-01"}, days)
}

func TestExpandRange_CrossesMonthBoundary(t *testing.T) {
	days, err := domain.ExpandRange("2025-01-30", "2025-02-02")

	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01-30", "2025-01-31", "2025-02-01", "2025-02-02"}, days)
}

func TestExpandRange_LeapDay(t *testing.T) {
	days, err := domain.ExpandRange("2024-02-28", "2024-03-01")

	require.NoError(t, err)
	assert.Equal(t, []string{"2024-02-28", "2024-02-29", "2024-03-01"}, days)
}

func TestExpandRange_EndBeforeStart(t *testing.T) {
	_, err := domain.ExpandRange("2025-06-05", "2025-06-01")

	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestExpandRange_BadDate(t *testing.T) {
	_, err := domain.ExpandRange("not-a-date", "2025-06-01")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = domain.ExpandRange("2025-06-01", "06/05/2025")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExpandRange_Length(t *testing.T) {
	// A two-week trip has exactly 14 days, endpoints included.
	days, err := domain.ExpandRange("2025-06-01", "2025-06-14")

	require.NoError(t, err)
	assert.Len(t, days, 14)
}

func TestParseDayKey_UTC(t *testing.T) {
	d, err := domain.ParseDayKey("2025-06-01")

	require.NoError(t, err)
	assert.Equal(t, "UTC", d.Location().String())
	assert.Equal(t, 0, d.Hour())
}
