package scheduling

import "time"

// DayStartHour is the local hour at which a new on-call day begins.
// An on-call day runs 07:00:00 through 06:59:59 the next morning.
const DayStartHour = 7

// DayFormat is the wire format for calendar days.
const DayFormat = "2006-01-02"

// EffectiveDay maps a wall-clock instant to the calendar day whose on-call
// window contains it. Instants before 07:00 belong to the previous day;
// 07:00:00 exactly opens the new day. The instant is assumed to already be
// in the viewer's local time; no timezone conversion happens here.
func EffectiveDay(instant time.Time) time.Time {
	if instant.Hour() < DayStartHour {
		instant = instant.AddDate(0, 0, -1)
	}
	return NormalizeDay(instant)
}

// NormalizeDay strips the time component, pinning the day to midnight UTC
// so stored dates compare without timezone or DST drift.
func NormalizeDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD calendar string into a normalized day.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return NormalizeDay(t), nil
}

// FormatDay renders a day as a YYYY-MM-DD calendar string.
func FormatDay(t time.Time) string {
	return t.Format(DayFormat)
}
