package entities

// Weekday names a day in a weekly schedule.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists every day in schedule order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// WeeklySchedule maps each weekday to a set of shift names. It is used both for
// talent availability and for the shifts a job posting needs covered.
type WeeklySchedule struct {
	Monday    []string `json:"monday"`
	Tuesday   []string `json:"tuesday"`
	Wednesday []string `json:"wednesday"`
	Thursday  []string `json:"thursday"`
	Friday    []string `json:"friday"`
	Saturday  []string `json:"saturday"`
	Sunday    []string `json:"sunday"`
}

// Shifts returns the shifts for day. Unknown days have no shifts.
func (s WeeklySchedule) Shifts(day Weekday) []string {
	switch day {
	case Monday:
		return s.Monday
	case Tuesday:
		return s.Tuesday
	case Wednesday:
		return s.Wednesday
	case Thursday:
		return s.Thursday
	case Friday:
		return s.Friday
	case Saturday:
		return s.Saturday
	case Sunday:
		return s.Sunday
	default:
		return nil
	}
}

// Has reports whether shift is listed for day.
func (s WeeklySchedule) Has(day Weekday, shift string) bool {
	return containsString(s.Shifts(day), shift)
}

// Overlaps reports whether some weekday shares at least one shift with other.
func (s WeeklySchedule) Overlaps(other WeeklySchedule) bool {
	for _, day := range Weekdays {
		for _, shift := range s.Shifts(day) {
			if other.Has(day, shift) {
				return true
			}
		}
	}
	return false
}

// Normalized returns a copy where every day is a non-nil slice so JSON output
// always carries all seven keys as arrays.
func (s WeeklySchedule) Normalized() WeeklySchedule {
	fix := func(v []string) []string {
		if v == nil {
			return []string{}
		}
		return v
	}
	return WeeklySchedule{
		Monday:    fix(s.Monday),
		Tuesday:   fix(s.Tuesday),
		Wednesday: fix(s.Wednesday),
		Thursday:  fix(s.Thursday),
		Friday:    fix(s.Friday),
		Saturday:  fix(s.Saturday),
		Sunday:    fix(s.Sunday),
	}
}

// DayShift is a single (day, shift) slot used by availability filters.
type DayShift struct {
	Day   Weekday `json:"day" form:"day"`
	Shift string  `json:"shift" form:"shift"`
}

// IsZero reports whether the slot is unset.
func (d DayShift) IsZero() bool {
	return d.Day == "" && d.Shift == ""
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
