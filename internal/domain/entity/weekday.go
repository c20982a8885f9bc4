package entity

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
)

// Weekday is a day on which a doctor may receive patients. Sunday is never offered.
type Weekday uint8

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// Weekdays lists every offered day in calendar order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

var weekdayNames = [...]string{"Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi"}

var ErrInvalidWeekday = errors.New("invalid weekday")

func (d Weekday) String() string {
	if int(d) < len(weekdayNames) {
		return weekdayNames[d]
	}
	return fmt.Sprintf("Weekday(%d)", uint8(d))
}

// ParseWeekday accepts the display name of a day, ignoring case and surrounding spaces.
func ParseWeekday(name string) (Weekday, error) {
	name = strings.TrimSpace(name)
	for i, n := range weekdayNames {
		if strings.EqualFold(n, name) {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, name)
}

// WeekdaySet is a bitset of Weekday values. The zero value is the empty set.
type WeekdaySet uint8

func NewWeekdaySet(days ...Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s = s.With(d)
	}
	return s
}

// ParseWeekdaySet builds a set from display names. Duplicates collapse; any unknown
// name fails the whole parse.
func ParseWeekdaySet(names []string) (WeekdaySet, error) {
	var s WeekdaySet
	for _, name := range names {
		d, err := ParseWeekday(name)
		if err != nil {
			return 0, err
		}
		s = s.With(d)
	}
	return s, nil
}

func (s WeekdaySet) With(d Weekday) WeekdaySet {
	if int(d) >= len(weekdayNames) {
		return s
	}
	return s | 1<<d
}

func (s WeekdaySet) Has(d Weekday) bool {
	return s&(1<<d) != 0
}

func (s WeekdaySet) IsEmpty() bool {
	return s == 0
}

func (s WeekdaySet) Len() int {
	n := 0
	for _, d := range Weekdays {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// Days returns the members in calendar order.
func (s WeekdaySet) Days() []Weekday {
	days := make([]Weekday, 0, len(Weekdays))
	for _, d := range Weekdays {
		if s.Has(d) {
			days = append(days, d)
		}
	}
	return days
}

// Names returns the display names of the members in calendar order.
func (s WeekdaySet) Names() []string {
	names := make([]string, 0, len(Weekdays))
	for _, d := range s.Days() {
		names = append(names, d.String())
	}
	return names
}

func (s WeekdaySet) String() string {
	return strings.Join(s.Names(), ",")
}

// Value stores the set as comma separated display names, implements driver.Valuer
func (s WeekdaySet) Value() (driver.Value, error) {
	return s.String(), nil
}

// Scan reads the comma separated form back, implements sql.Scanner
func (s *WeekdaySet) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case nil:
		*s = 0
		return nil
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return fmt.Errorf("failed to scan weekday set from %T", value)
	}

	if strings.TrimSpace(raw) == "" {
		*s = 0
		return nil
	}

	set, err := ParseWeekdaySet(strings.Split(raw, ","))
	if err != nil {
		return err
	}
	*s = set
	return nil
}
