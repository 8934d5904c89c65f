package scheduling

import (
	"fmt"
	"os"
	"time"
)

// All stored availability civil times are interpreted in one fixed system
// timezone, carried explicitly by the Engine. Conflict comparisons always
// operate on the resulting instants, never on civil-time strings.

const (
	civilDateLayout = "2006-01-02"
	civilTimeLayout = "15:04"
)

// SystemCivilToInstant anchors a civil date plus "HH:MM" wall-clock time in
// the given timezone and returns the corresponding absolute instant. A parse
// failure indicates corrupt availability data and is returned as an error.
func SystemCivilToInstant(loc *time.Location, dateCivil, timeCivil string) (time.Time, error) {
	t, err := time.ParseInLocation(civilDateLayout+" "+civilTimeLayout, dateCivil+" "+timeCivil, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid civil time %q %q: %w", dateCivil, timeCivil, err)
	}
	return t, nil
}

// FormatInTimezone renders an instant as a civil-time string in an arbitrary
// target timezone. The underlying instant is never altered.
func FormatInTimezone(instant time.Time, layout, timezone string) (string, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return "", fmt.Errorf("unknown timezone %q: %w", timezone, err)
	}
	return instant.In(loc).Format(layout), nil
}

// DetectViewerTimezone returns the ambient environment's timezone identifier
// as a best-effort viewer default. Callers may override it.
func DetectViewerTimezone() string {
	if tz := os.Getenv("TZ"); tz != "" {
		return tz
	}
	return time.Local.String()
}

// IsDifferentTimezone reports whether the candidate timezone differs from the
// system timezone. Used only to decide whether a supplementary timezone
// annotation should be shown to the viewer.
func IsDifferentTimezone(candidate, systemTimezone string) bool {
	return candidate != "" && candidate != systemTimezone
}
