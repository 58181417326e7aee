// AngelaMos | 2026
// types.go

package event

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a calendar day without a time component, serialized as
// "2026-10-27". Stored as a SQL date.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// Before compares calendar days, ignoring any time component.
func (d Date) BeforeDay(other Date) bool {
	return d.Truncate(24 * time.Hour).Before(other.Truncate(24 * time.Hour))
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}

	parsed, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", s, err)
	}

	d.Time = parsed
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case []byte:
		return d.UnmarshalJSON([]byte(`"` + string(v) + `"`))
	case string:
		return d.UnmarshalJSON([]byte(`"` + v + `"`))
	default:
		return fmt.Errorf("scan date: unsupported type %T", src)
	}
}

// TimeOfDay is a wall-clock time, serialized as "HH:MM" or "HH:MM:SS".
// Parsing enforces hour 0-23 and minute 0-59 so an out-of-range value can
// never be constructed from input.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return TimeOfDay{}, fmt.Errorf("parse time %q: expected HH:MM[:SS]", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf(
			"parse time %q: hour must be in [0,23]",
			s,
		)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf(
			"parse time %q: minute must be in [0,59]",
			s,
		)
	}

	second := 0
	if len(parts) == 3 {
		second, err = strconv.Atoi(parts[2])
		if err != nil || second < 0 || second > 59 {
			return TimeOfDay{}, fmt.Errorf(
				"parse time %q: second must be in [0,59]",
				s,
			)
		}
	}

	return TimeOfDay{Hour: hour, Minute: minute, Second: second}, nil
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}

	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

func (t *TimeOfDay) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		t.Hour, t.Minute, t.Second = v.Hour(), v.Minute(), v.Second()
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("scan time of day: unsupported type %T", src)
	}
}

func (t *TimeOfDay) scanString(s string) error {
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return fmt.Errorf("scan time of day: %w", err)
	}
	*t = parsed
	return nil
}

// Duration is a time span, serialized as an ISO 8601 duration such as
// "PT1H30M". Stored as whole seconds.
type Duration struct {
	time.Duration
}

func (d Duration) String() string {
	total := int64(d.Duration / time.Second)
	if total == 0 {
		return "PT0S"
	}

	negative := total < 0
	if negative {
		total = -total
	}

	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	b.WriteString("P")

	if days := total / 86400; days > 0 {
		fmt.Fprintf(&b, "%dD", days)
		total %= 86400
	}

	if total > 0 {
		b.WriteString("T")
		if hours := total / 3600; hours > 0 {
			fmt.Fprintf(&b, "%dH", hours)
			total %= 3600
		}
		if minutes := total / 60; minutes > 0 {
			fmt.Fprintf(&b, "%dM", minutes)
			total %= 60
		}
		if total > 0 {
			fmt.Fprintf(&b, "%dS", total)
		}
	}

	return b.String()
}

// ParseDuration accepts ISO 8601 durations restricted to day, hour, minute
// and second designators. Calendar designators (years, months) are rejected
// because their length depends on context.
func ParseDuration(s string) (Duration, error) {
	original := s

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	if !strings.HasPrefix(s, "P") {
		return Duration{}, fmt.Errorf(
			"parse duration %q: missing P designator",
			original,
		)
	}
	s = s[1:]

	var total time.Duration
	inTime := false
	components := 0
	num := ""

	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			num += string(r)
		case r == 'T':
			inTime = true
		default:
			if num == "" {
				return Duration{}, fmt.Errorf(
					"parse duration %q: designator %c without a value",
					original, r,
				)
			}
			n, err := strconv.ParseInt(num, 10, 64)
			if err != nil {
				return Duration{}, fmt.Errorf(
					"parse duration %q: %w",
					original, err,
				)
			}
			num = ""

			components++
			switch {
			case r == 'D' && !inTime:
				total += time.Duration(n) * 24 * time.Hour
			case r == 'H' && inTime:
				total += time.Duration(n) * time.Hour
			case r == 'M' && inTime:
				total += time.Duration(n) * time.Minute
			case r == 'S' && inTime:
				total += time.Duration(n) * time.Second
			default:
				return Duration{}, fmt.Errorf(
					"parse duration %q: unsupported designator %c",
					original, r,
				)
			}
		}
	}

	if num != "" {
		return Duration{}, fmt.Errorf(
			"parse duration %q: trailing value without designator",
			original,
		)
	}

	if components == 0 {
		return Duration{}, fmt.Errorf(
			"parse duration %q: no components",
			original,
		)
	}

	if negative {
		total = -total
	}

	return Duration{Duration: total}, nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}

	parsed, err := ParseDuration(s)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

func (d Duration) Value() (driver.Value, error) {
	return int64(d.Duration / time.Second), nil
}

func (d *Duration) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		d.Duration = time.Duration(v) * time.Second
		return nil
	case []byte:
		n, err := strconv.ParseInt(string(v), 10, 64)
		if err != nil {
			return fmt.Errorf("scan duration: %w", err)
		}
		d.Duration = time.Duration(n) * time.Second
		return nil
	default:
		return fmt.Errorf("scan duration: unsupported type %T", src)
	}
}
