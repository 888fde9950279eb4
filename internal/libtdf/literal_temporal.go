package libtdf

import "fmt"

// TemporalSubtype discriminates the ten ISO-8601 temporal subtypes
// recognized by the "@" dispatch (spec.md §4.4).
type TemporalSubtype int

const (
	Year TemporalSubtype = iota
	YearMonth
	MonthDay
	LocalDate
	LocalTime
	OffsetTime
	LocalDateTime
	Instant
	OffsetDateTime
	ZonedDateTime
)

func (s TemporalSubtype) String() string {
	switch s {
	case Year:
		return "Year"
	case YearMonth:
		return "YearMonth"
	case MonthDay:
		return "MonthDay"
	case LocalDate:
		return "LocalDate"
	case LocalTime:
		return "LocalTime"
	case OffsetTime:
		return "OffsetTime"
	case LocalDateTime:
		return "LocalDateTime"
	case Instant:
		return "Instant"
	case OffsetDateTime:
		return "OffsetDateTime"
	case ZonedDateTime:
		return "ZonedDateTime"
	default:
		return "unknown"
	}
}

// Temporal holds the parsed components of one of the ten subtypes. Only
// the fields relevant to Subtype are populated; the type favors holding the
// components the surface syntax actually carried (spec.md §8, "temporal
// subtype fidelity") over normalizing through time.Time, since an
// OffsetDateTime and the equivalent Instant must not collapse into the same
// round-tripped subtype.
type Temporal struct {
	Subtype TemporalSubtype

	Year  int
	Month int // 1-12
	Day   int // 1-31

	Hour       int
	Minute     int
	Second     int
	Nanosecond int

	HasUTC    bool // trailing "Z"
	HasOffset bool
	OffsetSign    int // +1 or -1
	OffsetHours   int
	OffsetMinutes int

	Zone string // IANA zone name from "[...]", ZonedDateTime only
}

// hasDate reports whether the subtype carries year/month/day components.
func (t Temporal) hasDate() bool {
	switch t.Subtype {
	case Year, YearMonth, MonthDay, LocalDate, LocalDateTime, Instant, OffsetDateTime, ZonedDateTime:
		return true
	default:
		return false
	}
}

// hasTime reports whether the subtype carries hour/minute/second components.
func (t Temporal) hasTime() bool {
	switch t.Subtype {
	case LocalTime, OffsetTime, LocalDateTime, Instant, OffsetDateTime, ZonedDateTime:
		return true
	default:
		return false
	}
}

func fmtOffset(t Temporal) string {
	if t.HasUTC {
		return "Z"
	}
	if !t.HasOffset {
		return ""
	}
	sign := '+'
	if t.OffsetSign < 0 {
		sign = '-'
	}
	return fmt.Sprintf("%c%02d:%02d", sign, t.OffsetHours, t.OffsetMinutes)
}

// String renders the temporal back to its ISO-8601 surface form (without
// the leading "@" dispatch character, which the caller adds).
func (t Temporal) String() string {
	var date, clock string
	switch t.Subtype {
	case Year:
		return fmt.Sprintf("%04d", t.Year)
	case YearMonth:
		return fmt.Sprintf("%04d-%02d", t.Year, t.Month)
	case MonthDay:
		return fmt.Sprintf("--%02d-%02d", t.Month, t.Day)
	}
	if t.hasDate() {
		date = fmt.Sprintf("%04d-%02d-%02d", t.Year, t.Month, t.Day)
	}
	if t.hasTime() {
		clock = fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
		if t.Nanosecond > 0 {
			clock += trimNanos(t.Nanosecond)
		}
		clock += fmtOffset(t)
		if t.Subtype == ZonedDateTime && t.Zone != "" {
			clock += "[" + t.Zone + "]"
		}
	}
	switch t.Subtype {
	case LocalDate:
		return date
	case LocalTime, OffsetTime:
		return clock
	default:
		return date + "T" + clock
	}
}

func trimNanos(ns int) string {
	s := fmt.Sprintf(".%09d", ns)
	for len(s) > 1 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if s == "." {
		return ""
	}
	return s
}
