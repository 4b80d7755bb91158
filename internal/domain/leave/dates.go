package leave

import (
	"math"
	"time"
)

// DateLayout is the wire and storage format for leave dates.
const DateLayout = "2006-01-02"

// ParseDate parses a leave date in DateLayout.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// DaySpan returns the inclusive number of days covered by [start, end].
// A single-day leave spans 1 day. ok is false when either date fails to parse.
func DaySpan(start, end string) (days int, ok bool) {
	s, err := ParseDate(start)
	if err != nil {
		return 0, false
	}
	e, err := ParseDate(end)
	if err != nil {
		return 0, false
	}
	return int(math.Ceil(e.Sub(s).Hours()/24)) + 1, true
}

// ValidateDateRange checks a requested leave span against today and against
// itself. Rules apply in order: both dates must parse, the start must not be
// before today (midnight-truncated), and the end must not precede the start.
// There is no maximum-span rule at this layer.
func ValidateDateRange(start, end string) error {
	s, err := ParseDate(start)
	if err != nil {
		return ErrInvalidDateFormat
	}
	e, err := ParseDate(end)
	if err != nil {
		return ErrInvalidDateFormat
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if s.Before(today) {
		return ErrStartDateInPast
	}
	if e.Before(s) {
		return ErrEndBeforeStart
	}
	return nil
}

// AccumulateUsage folds approved requests into per-category used day totals.
// Requests whose dates fail to parse are skipped: one malformed historical
// record must not block balance computation for everything else. Non-approved
// requests are ignored regardless of dates. The result is order-independent.
func AccumulateUsage(requests []Request) map[string]int {
	used := make(map[string]int)
	for _, req := range requests {
		if req.Status != StatusApproved {
			continue
		}
		days, ok := DaySpan(req.StartDate, req.EndDate)
		if !ok {
			continue
		}
		used[req.LeaveType] += days
	}
	return used
}
