package partner_service

import (
	"time"

	"parkpulse-analytics/inout"
	"parkpulse-analytics/utils"
)

// TimeWindow bounds a partner-scoped aggregation. A nil From means
// unbounded — no lower limit is applied, which is not the same as epoch.
type TimeWindow struct {
	From *time.Time
	To   time.Time
}

// DateRangeFromFilter resolves a filter token against a fixed clock.
// "7d"/"30d" go back exactly N days keeping the time of day; "today"
// starts at local midnight. Unknown tokens fall back to today.
func DateRangeFromFilter(filter string, now time.Time) TimeWindow {
	switch filter {
	case inout.TimeFilter7d:
		from := now.AddDate(0, 0, -7)
		return TimeWindow{From: &from, To: now}
	case inout.TimeFilter30d:
		from := now.AddDate(0, 0, -30)
		return TimeWindow{From: &from, To: now}
	case inout.TimeFilterAll:
		return TimeWindow{To: now}
	default:
		from := utils.StartOfDay(now)
		return TimeWindow{From: &from, To: now}
	}
}

// normalizeTimeFilter echoes the token the window was resolved from.
func normalizeTimeFilter(filter string) string {
	switch filter {
	case inout.TimeFilter7d, inout.TimeFilter30d, inout.TimeFilterAll:
		return filter
	default:
		return inout.TimeFilterToday
	}
}
