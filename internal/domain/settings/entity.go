package settings

import "time"

// Setting is one typed key/value row. Values are stored as text and parsed by
// the reader; Kind documents the expected shape.
type Setting struct {
	Key       string
	Value     string
	Kind      Kind
	UpdatedBy *string
	UpdatedAt time.Time
}

type Kind string

const (
	KindString Kind = "string"
	KindInt    Kind = "int"
	KindBool   Kind = "bool"
	KindCSV    Kind = "csv"
)

// Well-known setting keys.
const (
	KeyWeekendDays       = "leave.weekend_days"        // csv of weekday names
	KeyLateThresholdMins = "attendance.late_threshold" // minutes after workday start
	KeyWorkdayStart      = "attendance.workday_start"  // HH:MM
)
