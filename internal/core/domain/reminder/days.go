package reminder

import (
	"strings"
	"time"
)

type Days struct {
	Monday    bool `json:"monday"`
	Tuesday   bool `json:"tuesday"`
	Wednesday bool `json:"wednesday"`
	Thursday  bool `json:"thursday"`
	Friday    bool `json:"friday"`
	Saturday  bool `json:"saturday"`
	Sunday    bool `json:"sunday"`
}

func NewDays(weekdays ...time.Weekday) Days {
	var d Days
	for _, w := range weekdays {
		d.Set(w, true)
	}
	return d
}

func EveryDay() Days {
	return NewDays(
		time.Monday,
		time.Tuesday,
		time.Wednesday,
		time.Thursday,
		time.Friday,
		time.Saturday,
		time.Sunday,
	)
}

func (d Days) Has(w time.Weekday) bool {
	switch w {
	case time.Monday:
		return d.Monday
	case time.Tuesday:
		return d.Tuesday
	case time.Wednesday:
		return d.Wednesday
	case time.Thursday:
		return d.Thursday
	case time.Friday:
		return d.Friday
	case time.Saturday:
		return d.Saturday
	case time.Sunday:
		return d.Sunday
	default:
		return false
	}
}

func (d *Days) Set(w time.Weekday, v bool) {
	switch w {
	case time.Monday:
		d.Monday = v
	case time.Tuesday:
		d.Tuesday = v
	case time.Wednesday:
		d.Wednesday = v
	case time.Thursday:
		d.Thursday = v
	case time.Friday:
		d.Friday = v
	case time.Saturday:
		d.Saturday = v
	case time.Sunday:
		d.Sunday = v
	}
}

func (d Days) Any() bool {
	return d.Monday || d.Tuesday || d.Wednesday || d.Thursday || d.Friday || d.Saturday || d.Sunday
}

// String lists the selected days Monday first, e.g. "Mon, Wed, Fri".
func (d Days) String() string {
	week := []time.Weekday{
		time.Monday,
		time.Tuesday,
		time.Wednesday,
		time.Thursday,
		time.Friday,
		time.Saturday,
		time.Sunday,
	}
	selected := make([]string, 0, len(week))
	for _, w := range week {
		if d.Has(w) {
			selected = append(selected, w.String()[:3])
		}
	}
	return strings.Join(selected, ", ")
}
