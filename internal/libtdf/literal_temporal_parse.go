package libtdf

import "strconv"

// parseTemporal implements the "@" dispatch of spec.md §4.4: a digit-run
// lookahead decides between a date prefix (4 digits), a time prefix (2
// digits), or "--MM-DD" (MonthDay); subsequent characters incrementally
// widen the parse until the decision table below fixes the final subtype.
func (p *Parser[R]) parseTemporal() (*Resource, error) {
	mark := p.r.mark()
	if err := p.r.check(delimTemporal); err != nil {
		return nil, err
	}

	if p.r.peek() == '-' {
		t, err := p.parseMonthDay()
		if err != nil {
			return nil, err
		}
		return temporalResource(mark, t), nil
	}

	digitRun := p.r.readWhile(isDigit)
	switch len(digitRun) {
	case 4:
		t, err := p.parseDateLed(digitRun)
		if err != nil {
			return nil, err
		}
		return temporalResource(mark, t), nil
	case 2:
		t, err := p.parseTimeLed(digitRun)
		if err != nil {
			return nil, err
		}
		return temporalResource(mark, t), nil
	default:
		return nil, newParseErrorf(mark, "temporal literal must start with a 2 or 4 digit run, got %d digits", len(digitRun))
	}
}

func temporalResource(mark Mark, t Temporal) *Resource {
	return &Resource{Kind: KindLiteral, Mark: mark, Literal: &Literal{Kind: LiteralTemporal, Temporal: t}}
}

// parseMonthDay parses "--MM-DD" after the leading "@" has been consumed
// and the first "-" observed.
func (p *Parser[R]) parseMonthDay() (Temporal, error) {
	mark := p.r.mark()
	if err := p.r.checkLiteral("--"); err != nil {
		return Temporal{}, err
	}
	monthStr, err := p.r.readRequiredCount(2)
	if err != nil {
		return Temporal{}, err
	}
	if err := p.r.check('-'); err != nil {
		return Temporal{}, err
	}
	dayStr, err := p.r.readRequiredCount(2)
	if err != nil {
		return Temporal{}, err
	}
	month, _ := strconv.Atoi(monthStr)
	day, _ := strconv.Atoi(dayStr)
	if err := validateMonthDay(mark, month, day); err != nil {
		return Temporal{}, err
	}
	return Temporal{Subtype: MonthDay, Month: month, Day: day}, nil
}

// parseDateLed continues a temporal literal whose first four digits are a
// year: Year -> YearMonth -> LocalDate, possibly followed by a time tail.
func (p *Parser[R]) parseDateLed(yearStr string) (Temporal, error) {
	mark := p.r.mark()
	year, _ := strconv.Atoi(yearStr)
	if !p.r.confirm('-') {
		return Temporal{Subtype: Year, Year: year}, nil
	}
	monthStr, err := p.r.readRequiredCount(2)
	if err != nil {
		return Temporal{}, err
	}
	month, _ := strconv.Atoi(monthStr)
	if !p.r.confirm('-') {
		if err := validateMonth(mark, month); err != nil {
			return Temporal{}, err
		}
		return Temporal{Subtype: YearMonth, Year: year, Month: month}, nil
	}
	dayStr, err := p.r.readRequiredCount(2)
	if err != nil {
		return Temporal{}, err
	}
	day, _ := strconv.Atoi(dayStr)
	if err := validateDate(mark, year, month, day); err != nil {
		return Temporal{}, err
	}

	if !p.r.confirm('T') {
		return Temporal{Subtype: LocalDate, Year: year, Month: month, Day: day}, nil
	}

	hourStr, err := p.r.readRequiredCount(2)
	if err != nil {
		return Temporal{}, err
	}
	hour, minute, second, nanos, err := p.parseClockBody(hourStr)
	if err != nil {
		return Temporal{}, err
	}
	hasUTC, hasOffset, sign, oh, om, hasZone, zone, err := p.parseOffsetTail()
	if err != nil {
		return Temporal{}, err
	}

	t := Temporal{
		Year: year, Month: month, Day: day,
		Hour: hour, Minute: minute, Second: second, Nanosecond: nanos,
		HasUTC: hasUTC, HasOffset: hasOffset,
		OffsetSign: sign, OffsetHours: oh, OffsetMinutes: om,
		Zone: zone,
	}
	switch {
	case hasZone:
		t.Subtype = ZonedDateTime
	case hasOffset:
		t.Subtype = OffsetDateTime
	case hasUTC:
		t.Subtype = Instant
	default:
		t.Subtype = LocalDateTime
	}
	return t, nil
}

// parseTimeLed continues a temporal literal whose first two digits are an
// hour, with no date component: LocalTime or OffsetTime.
func (p *Parser[R]) parseTimeLed(hourStr string) (Temporal, error) {
	hour, minute, second, nanos, err := p.parseClockBody(hourStr)
	if err != nil {
		return Temporal{}, err
	}
	hasUTC, hasOffset, sign, oh, om, hasZone, _, err := p.parseOffsetTail()
	if err != nil {
		return Temporal{}, err
	}
	if hasZone {
		return Temporal{}, newParseError(p.r.mark(), "zone designation not permitted on a time-only temporal literal")
	}
	t := Temporal{
		Hour: hour, Minute: minute, Second: second, Nanosecond: nanos,
		HasOffset: hasOffset || hasUTC, OffsetSign: sign, OffsetHours: oh, OffsetMinutes: om,
	}
	if t.HasOffset {
		t.Subtype = OffsetTime
	} else {
		t.Subtype = LocalTime
	}
	return t, nil
}

// parseClockBody parses "MM:SS[.nnn]" given an hour string already read.
func (p *Parser[R]) parseClockBody(hourStr string) (hour, minute, second, nanos int, err error) {
	hour, _ = strconv.Atoi(hourStr)
	if err = p.r.check(':'); err != nil {
		return
	}
	minStr, err2 := p.r.readRequiredCount(2)
	if err2 != nil {
		err = err2
		return
	}
	minute, _ = strconv.Atoi(minStr)
	if err = p.r.check(':'); err != nil {
		return
	}
	secStr, err3 := p.r.readRequiredCount(2)
	if err3 != nil {
		err = err3
		return
	}
	second, _ = strconv.Atoi(secStr)
	if p.r.peek() == '.' {
		p.r.advance()
		frac := p.r.readWhile(isDigit)
		if frac == "" {
			err = newParseError(p.r.mark(), "expected digits after decimal point in temporal literal")
			return
		}
		nanos = nanosFromFraction(frac)
	}
	if err = validateClock(p.r.mark(), hour, minute, second); err != nil {
		return
	}
	return
}

// parseOffsetTail parses the optional "Z", "+HH:MM"/"-HH:MM", and
// "[zone]" suffixes.
func (p *Parser[R]) parseOffsetTail() (hasUTC, hasOffset bool, sign, oh, om int, hasZone bool, zone string, err error) {
	switch p.r.peek() {
	case 'Z':
		p.r.advance()
		hasUTC = true
	case '+', '-':
		sr := p.r.advance()
		sign = 1
		if sr == '-' {
			sign = -1
		}
		var hh string
		hh, err = p.r.readRequiredCount(2)
		if err != nil {
			return
		}
		oh, _ = strconv.Atoi(hh)
		if err = p.r.check(':'); err != nil {
			return
		}
		var mm string
		mm, err = p.r.readRequiredCount(2)
		if err != nil {
			return
		}
		om, _ = strconv.Atoi(mm)
		hasOffset = true
	}
	if p.r.peek() == '[' {
		p.r.advance()
		zone, err = p.r.reach(']')
		if err != nil {
			return
		}
		p.r.advance()
		hasZone = true
	}
	return
}

func nanosFromFraction(frac string) int {
	for len(frac) < 9 {
		frac += "0"
	}
	frac = frac[:9]
	v, _ := strconv.Atoi(frac)
	return v
}

func validateMonth(mark Mark, month int) error {
	if month < 1 || month > 12 {
		return newParseErrorf(mark, "month %d out of range 1-12", month)
	}
	return nil
}

var daysInMonth = [...]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func validateMonthDay(mark Mark, month, day int) error {
	if err := validateMonth(mark, month); err != nil {
		return err
	}
	if day < 1 || day > daysInMonth[month-1] {
		return newParseErrorf(mark, "day %d out of range for month %d", day, month)
	}
	return nil
}

func validateDate(mark Mark, year, month, day int) error {
	if err := validateMonth(mark, month); err != nil {
		return err
	}
	max := daysInMonth[month-1]
	if month == 2 && !isLeapYear(year) {
		max = 28
	}
	if day < 1 || day > max {
		return newParseErrorf(mark, "day %d out of range for %04d-%02d", day, year, month)
	}
	return nil
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func validateClock(mark Mark, hour, minute, second int) error {
	if hour < 0 || hour > 23 {
		return newParseErrorf(mark, "hour %d out of range 0-23", hour)
	}
	if minute < 0 || minute > 59 {
		return newParseErrorf(mark, "minute %d out of range 0-59", minute)
	}
	if second < 0 || second > 60 { // 60 allows a leap second
		return newParseErrorf(mark, "second %d out of range 0-60", second)
	}
	return nil
}
