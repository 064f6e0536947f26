package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // zone database for minimal images

	"pet-scheduler/internal/pkg/errs"
)

const dateLayout = "2006-01-02"

// LocalDate is a civil calendar date with no zone attached.
type LocalDate struct {
	year  int
	month time.Month
	day   int
}

func ParseDate(s string) (LocalDate, error) {
	if len(s) != len(dateLayout) {
		return LocalDate{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", errs.ErrInvalidTime, s)
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return LocalDate{}, fmt.Errorf("%w: date %q", errs.ErrInvalidTime, s)
	}
	return LocalDate{year: t.Year(), month: t.Month(), day: t.Day()}, nil
}

func MustParseDate(s string) LocalDate {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func NewLocalDate(year int, month time.Month, day int) LocalDate {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return LocalDate{year: t.Year(), month: t.Month(), day: t.Day()}
}

func (d LocalDate) Year() int {
	return d.year
}

func (d LocalDate) Month() time.Month {
	return d.month
}

func (d LocalDate) Day() int {
	return d.day
}

func (d LocalDate) IsZero() bool {
	return d.year == 0 && d.month == 0 && d.day == 0
}

func (d LocalDate) Equal(o LocalDate) bool {
	return d == o
}

func (d LocalDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// Midnight returns the date as 00:00 UTC, the representation used for DATE columns.
func (d LocalDate) Midnight() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// LocalTime is a wall-clock time of day with minute precision.
type LocalTime struct {
	minutes int
}

// ParseTime accepts strictly HH:MM, 00:00 through 23:59.
func ParseTime(s string) (LocalTime, error) {
	if len(s) != 5 || s[2] != ':' {
		return LocalTime{}, fmt.Errorf("%w: time %q must be HH:MM", errs.ErrInvalidTime, s)
	}
	h, err1 := strconv.Atoi(s[:2])
	m, err2 := strconv.Atoi(s[3:])
	if err1 != nil || err2 != nil || strings.ContainsAny(s, "+-") {
		return LocalTime{}, fmt.Errorf("%w: time %q", errs.ErrInvalidTime, s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return LocalTime{}, fmt.Errorf("%w: time %q out of range", errs.ErrInvalidTime, s)
	}
	return LocalTime{minutes: h*60 + m}, nil
}

func MustParseTime(s string) LocalTime {
	t, err := ParseTime(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t LocalTime) Hour() int {
	return t.minutes / 60
}

func (t LocalTime) Minute() int {
	return t.minutes % 60
}

func (t LocalTime) MinuteOfDay() int {
	return t.minutes
}

func (t LocalTime) Before(o LocalTime) bool {
	return t.minutes < o.minutes
}

func (t LocalTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Zone is the fixed civil timezone all local dates and times are interpreted in.
type Zone struct {
	loc *time.Location
}

// LoadZone accepts an IANA name ("America/Sao_Paulo"), "UTC", or a fixed
// offset such as "-03:00" or "UTC+05:30".
func LoadZone(name string) (Zone, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Zone{}, errs.Invalidf("timezone must not be empty")
	}
	if loc, ok := parseFixedOffset(name); ok {
		return Zone{loc: loc}, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return Zone{}, errs.Invalidf("unknown timezone %q", name)
	}
	return Zone{loc: loc}, nil
}

func MustLoadZone(name string) Zone {
	z, err := LoadZone(name)
	if err != nil {
		panic(err)
	}
	return z
}

func ZoneFor(loc *time.Location) Zone {
	return Zone{loc: loc}
}

func parseFixedOffset(name string) (*time.Location, bool) {
	s := strings.TrimPrefix(strings.TrimPrefix(name, "UTC"), "GMT")
	if s == name && !strings.HasPrefix(s, "+") && !strings.HasPrefix(s, "-") {
		return nil, false
	}
	if s == "" {
		return time.UTC, true
	}
	sign := 1
	switch s[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return nil, false
	}
	parts := strings.Split(s[1:], ":")
	if len(parts) > 2 {
		return nil, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h > 14 {
		return nil, false
	}
	m := 0
	if len(parts) == 2 {
		if m, err = strconv.Atoi(parts[1]); err != nil || m > 59 {
			return nil, false
		}
	}
	return time.FixedZone(name, sign*(h*3600+m*60)), true
}

func (z Zone) Location() *time.Location {
	if z.loc == nil {
		return time.UTC
	}
	return z.loc
}

func (z Zone) String() string {
	return z.Location().String()
}

// ToAbsolute resolves a local date and time in z to a UTC instant.
func (z Zone) ToAbsolute(d LocalDate, t LocalTime) time.Time {
	return time.Date(d.year, d.month, d.day, t.Hour(), t.Minute(), 0, 0, z.Location()).UTC()
}

// Resolve parses both strings and resolves them in z.
func (z Zone) Resolve(date, clock string) (time.Time, error) {
	d, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	t, err := ParseTime(clock)
	if err != nil {
		return time.Time{}, err
	}
	return z.ToAbsolute(d, t), nil
}

// CalendarDate is the local calendar date of instant in z.
func (z Zone) CalendarDate(instant time.Time) LocalDate {
	l := instant.In(z.Location())
	return LocalDate{year: l.Year(), month: l.Month(), day: l.Day()}
}

func (z Zone) ClockTime(instant time.Time) LocalTime {
	l := instant.In(z.Location())
	return LocalTime{minutes: l.Hour()*60 + l.Minute()}
}

func AddMinutes(instant time.Time, n int) time.Time {
	return instant.Add(time.Duration(n) * time.Minute)
}
