package schedule

import (
	"fmt"
	"strconv"
	"time"

	"availpoll/models"
)

const dateLayout = "2006-01-02"

// Weekday glyphs shown in slot labels, indexed from Monday.
var weekdayGlyphs = [7]string{"月", "火", "水", "木", "金", "土", "日"}

// plan is a fully parsed EventConfig, ready for slot enumeration.
type plan struct {
	start, end time.Time
	duration   int

	weekdayStart, weekdayEnd int
	holidayStart, holidayEnd int

	excludeEnabled           bool
	excludeStart, excludeEnd int
}

func parseHour(field, value string) (int, error) {
	h, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", field, value)
	}
	return h, nil
}

func parseConfig(cfg models.EventConfig) (plan, error) {
	var p plan
	var err error

	p.start, err = time.Parse(dateLayout, cfg.StartDate)
	if err != nil {
		return plan{}, fmt.Errorf("invalid startDate %q", cfg.StartDate)
	}
	p.end, err = time.Parse(dateLayout, cfg.EndDate)
	if err != nil {
		return plan{}, fmt.Errorf("invalid endDate %q", cfg.EndDate)
	}

	p.duration, err = strconv.Atoi(cfg.Duration)
	if err != nil {
		return plan{}, fmt.Errorf("invalid duration %q", cfg.Duration)
	}
	if p.duration < 1 {
		return plan{}, fmt.Errorf("duration must be positive, got %d", p.duration)
	}

	if p.weekdayStart, err = parseHour("weekdayStart", cfg.WeekdayStart); err != nil {
		return plan{}, err
	}
	if p.weekdayEnd, err = parseHour("weekdayEnd", cfg.WeekdayEnd); err != nil {
		return plan{}, err
	}
	if p.holidayStart, err = parseHour("holidayStart", cfg.HolidayStart); err != nil {
		return plan{}, err
	}
	if p.holidayEnd, err = parseHour("holidayEnd", cfg.HolidayEnd); err != nil {
		return plan{}, err
	}

	// Exclusion bounds only matter when the flag is set; a disabled
	// exclusion with garbage bounds is still a valid config
	p.excludeEnabled = cfg.IsExcludeEnabled
	if p.excludeEnabled {
		if p.excludeStart, err = parseHour("excludeStart", cfg.ExcludeStart); err != nil {
			return plan{}, err
		}
		if p.excludeEnd, err = parseHour("excludeEnd", cfg.ExcludeEnd); err != nil {
			return plan{}, err
		}
	}

	return p, nil
}

// mondayIndex maps time.Weekday (Sunday=0) to a Monday-first index.
func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

func isHoliday(wd time.Weekday) bool {
	return wd == time.Saturday || wd == time.Sunday
}

// Generate expands an event config into the ordered slot sequence spanning
// [startDate, endDate] inclusive. It is a pure function of the config: the
// same config always yields the same sequence, which is what lets the
// service regenerate slots on demand instead of storing them.
//
// Per day, slot start hours run start, start+duration, ... while below the
// day's upper bound; a slot that would overrun the bound is dropped, never
// truncated. With exclusion enabled, any slot overlapping
// [excludeStart, excludeEnd) is dropped using a half-open overlap test.
//
// An unparseable config returns an error; a range or hour-bound ordering
// that admits no slots returns an empty sequence.
func Generate(cfg models.EventConfig) ([]models.Slot, error) {
	p, err := parseConfig(cfg)
	if err != nil {
		return nil, err
	}

	slots := []models.Slot{}
	for d := p.start; !d.After(p.end); d = d.AddDate(0, 0, 1) {
		startHour, endHour := p.weekdayStart, p.weekdayEnd
		if isHoliday(d.Weekday()) {
			startHour, endHour = p.holidayStart, p.holidayEnd
		}

		for h := startHour; h < endHour; h += p.duration {
			if h+p.duration > endHour {
				continue
			}
			if p.excludeEnabled && h < p.excludeEnd && h+p.duration > p.excludeStart {
				continue
			}

			slots = append(slots, models.Slot{
				Date:      d,
				StartHour: h,
				EndHour:   h + p.duration,
				Label: fmt.Sprintf("%d/%d (%s) %d:00-%d:00",
					int(d.Month()), d.Day(),
					weekdayGlyphs[mondayIndex(d.Weekday())],
					h, h+p.duration),
			})
		}
	}

	return slots, nil
}

// Labels returns just the display labels, in slot order.
func Labels(slots []models.Slot) []string {
	labels := make([]string, len(slots))
	for i, s := range slots {
		labels[i] = s.Label
	}
	return labels
}
