package pipeline

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/br"
)

// TemporalContext is the derived calendar context recorded with every
// submission and serialized into the prompt.
type TemporalContext struct {
	At        time.Time
	Weekday   string
	Month     string
	IsHoliday bool
}

// Calendar derives temporal context in a fixed timezone. Immutable
// after construction and safe for concurrent use.
type Calendar struct {
	loc *time.Location
	cal *cal.Calendar
}

// NewCalendar builds a calendar for the given IANA timezone with the
// Brazilian national holiday set.
func NewCalendar(timezone string) (*Calendar, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}
	c := &cal.Calendar{Name: "monai"}
	c.AddHoliday(br.Holidays...)
	return &Calendar{loc: loc, cal: c}, nil
}

// At returns the temporal context for t in the calendar's timezone.
func (c *Calendar) At(t time.Time) TemporalContext {
	local := t.In(c.loc)
	actual, observed, _ := c.cal.IsHoliday(local)
	return TemporalContext{
		At:        local,
		Weekday:   local.Weekday().String(),
		Month:     local.Month().String(),
		IsHoliday: actual || observed,
	}
}
