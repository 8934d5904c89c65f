package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSystemCivilToInstantRespectsDaylightSaving(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	summer, err := SystemCivilToInstant(loc, "2025-06-02", "09:00")
	require.NoError(t, err)
	winter, err := SystemCivilToInstant(loc, "2025-12-01", "09:00")
	require.NoError(t, err)

	// CEST is UTC+2, CET is UTC+1.
	require.Equal(t, "07:00", summer.UTC().Format("15:04"))
	require.Equal(t, "08:00", winter.UTC().Format("15:04"))
}

func TestSystemCivilToInstantRejectsMalformedInput(t *testing.T) {
	loc := time.UTC
	_, err := SystemCivilToInstant(loc, "2025-06-02", "25:99")
	require.Error(t, err)
	_, err = SystemCivilToInstant(loc, "not-a-date", "09:00")
	require.Error(t, err)
}

func TestFormatInTimezonePreservesInstantIdentity(t *testing.T) {
	// A viewer two hours ahead of the system timezone sees the same instant
	// rendered two hours later on the wall clock.
	systemTZ := "UTC"
	viewerTZ := "Etc/GMT-2" // POSIX sign convention: UTC+2

	loc, err := time.LoadLocation(systemTZ)
	require.NoError(t, err)
	slotStart, err := SystemCivilToInstant(loc, "2025-06-02", "09:00")
	require.NoError(t, err)

	systemView, err := FormatInTimezone(slotStart, "15:04", systemTZ)
	require.NoError(t, err)
	viewerView, err := FormatInTimezone(slotStart, "15:04", viewerTZ)
	require.NoError(t, err)

	require.Equal(t, "09:00", systemView)
	require.Equal(t, "11:00", viewerView)
}

func TestFormatInTimezoneRejectsUnknownZone(t *testing.T) {
	_, err := FormatInTimezone(time.Now(), "15:04", "Mars/Olympus_Mons")
	require.Error(t, err)
}

func TestIsDifferentTimezone(t *testing.T) {
	require.False(t, IsDifferentTimezone("Europe/Berlin", "Europe/Berlin"))
	require.False(t, IsDifferentTimezone("", "Europe/Berlin"))
	require.True(t, IsDifferentTimezone("America/New_York", "Europe/Berlin"))
}
