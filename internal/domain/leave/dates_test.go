package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDateRange(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  error
	}{
		{"valid future range", "2099-01-01", "2099-01-05", nil},
		{"single day", "2099-01-01", "2099-01-01", nil},
		{"start in past", "2000-01-01", "2099-01-05", ErrStartDateInPast},
		{"end before start", "2099-01-05", "2099-01-04", ErrEndBeforeStart},
		{"unparseable start", "not-a-date", "2099-01-05", ErrInvalidDateFormat},
		{"unparseable end", "2099-01-01", "05/01/2099", ErrInvalidDateFormat},
		{"format checked before past", "not-a-date", "2000-01-01", ErrInvalidDateFormat},
		{"past checked before order", "2000-01-02", "2000-01-01", ErrStartDateInPast},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidateDateRange(c.start, c.end)
			if c.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, c.want)
			}
		})
	}
}

func TestDaySpan(t *testing.T) {
	days, ok := DaySpan("2099-03-01", "2099-03-06")
	assert.True(t, ok)
	assert.Equal(t, 6, days)

	days, ok = DaySpan("2099-03-01", "2099-03-01")
	assert.True(t, ok)
	assert.Equal(t, 1, days)

	_, ok = DaySpan("garbage", "2099-03-06")
	assert.False(t, ok)

	_, ok = DaySpan("2099-03-01", "garbage")
	assert.False(t, ok)
}

func TestDaySpan_AtLeastOneDayForValidRanges(t *testing.T) {
	ranges := [][2]string{
		{"2099-01-01", "2099-01-01"},
		{"2099-01-01", "2099-01-02"},
		{"2099-01-01", "2099-12-31"},
	}
	for _, r := range ranges {
		days, ok := DaySpan(r[0], r[1])
		assert.True(t, ok)
		assert.GreaterOrEqual(t, days, 1)
	}
}

func TestAccumulateUsage(t *testing.T) {
	requests := []Request{
		{LeaveType: "Sick", StartDate: "2099-03-01", EndDate: "2099-03-06", Status: StatusApproved},
		{LeaveType: "Sick", StartDate: "2099-04-01", EndDate: "2099-04-02", Status: StatusApproved},
		{LeaveType: "Annual", StartDate: "2099-05-01", EndDate: "2099-05-01", Status: StatusApproved},
		// non-approved never counts
		{LeaveType: "Annual", StartDate: "2099-06-01", EndDate: "2099-06-10", Status: StatusPending},
		{LeaveType: "Annual", StartDate: "2099-07-01", EndDate: "2099-07-10", Status: StatusRejected},
	}

	used := AccumulateUsage(requests)

	assert.Equal(t, map[string]int{"Sick": 8, "Annual": 1}, used)
}

func TestAccumulateUsage_SkipsMalformedRecords(t *testing.T) {
	requests := []Request{
		{LeaveType: "Sick", StartDate: "bad-date", EndDate: "2099-03-06", Status: StatusApproved},
		{LeaveType: "Sick", StartDate: "2099-03-01", EndDate: "", Status: StatusApproved},
		{LeaveType: "Annual", StartDate: "2099-05-01", EndDate: "2099-05-02", Status: StatusApproved},
	}

	assert.NotPanics(t, func() {
		used := AccumulateUsage(requests)
		assert.Equal(t, map[string]int{"Annual": 2}, used)
		assert.NotContains(t, used, "Sick")
	})
}

func TestAccumulateUsage_OrderIndependent(t *testing.T) {
	forward := []Request{
		{LeaveType: "Sick", StartDate: "2099-03-01", EndDate: "2099-03-03", Status: StatusApproved},
		{LeaveType: "Annual", StartDate: "2099-04-01", EndDate: "2099-04-05", Status: StatusApproved},
		{LeaveType: "Sick", StartDate: "2099-05-01", EndDate: "2099-05-01", Status: StatusApproved},
	}
	reversed := []Request{forward[2], forward[1], forward[0]}

	assert.Equal(t, AccumulateUsage(forward), AccumulateUsage(reversed))
}

func TestAccumulateUsage_EmptyInput(t *testing.T) {
	used := AccumulateUsage(nil)
	assert.Empty(t, used)
}
