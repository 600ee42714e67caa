package dateparser

// Date is the broken-down result of parsing a date/time string. Month is
// 0-based (0 = January). Offset is the UTC offset in seconds to add to
// UTC to obtain local time; HasOffset reports whether the input named a
// timezone at all.
type Date struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int

	Offset    int
	HasOffset bool
}

// Years and offsets are confined to a 31-bit signed magnitude; anything
// larger is rejected rather than wrapped.
const maxFieldValue = 1<<30 - 1

func isDay(n int) bool    { return 1 <= n && n <= 31 }
func isMonth(n int) bool  { return 1 <= n && n <= 12 }
func isHour(n int) bool   { return 0 <= n && n <= 23 }
func isHour12(n int) bool { return 0 <= n && n <= 12 }
func isMinute(n int) bool { return 0 <= n && n <= 59 }
func isSecond(n int) bool { return 0 <= n && n <= 59 }

// DayComposer accumulates up to three bare date numbers, in encounter
// order, plus at most one month recognized by name. Write untangles them
// into year, month and day.
type DayComposer struct {
	comp          [3]int
	index         int
	namedMonth    int
	hasNamedMonth bool
}

// Add appends one raw date component. It reports false once the composer
// is full.
func (d *DayComposer) Add(n int) bool {
	if d.index >= len(d.comp) {
		return false
	}
	d.comp[d.index] = n
	d.index++
	return true
}

// SetNamedMonth records a month given by name (1-12). It reports false if
// a named month was already recorded.
func (d *DayComposer) SetNamedMonth(month int) bool {
	if d.hasNamedMonth {
		return false
	}
	d.namedMonth = month
	d.hasNamedMonth = true
	return true
}

// Write resolves the accumulated components into out. The pivot heuristic
// throughout is whether a component could be a day of month (1-31): years
// written with two or more extra digits fall outside that range, and the
// truly ambiguous cases default to month-day ordering. Two-digit years
// land in 1950-2049; the year defaults to 2000 when absent. Write reports
// false and leaves out untouched if the components cannot form a date.
func (d *DayComposer) Write(out *Date) bool {
	year, month, day := 0, 0, 0

	if !d.hasNamedMonth {
		if d.index < 2 {
			return false
		}
		if d.index == 3 && !isDay(d.comp[0]) {
			// YMD
			year = d.comp[0]
			month = d.comp[1]
			day = d.comp[2]
		} else {
			// MD(Y)
			month = d.comp[0]
			day = d.comp[1]
			if d.index == 3 {
				year = d.comp[2]
			}
		}
	} else {
		month = d.namedMonth
		if d.index < 1 {
			return false
		}
		if d.index == 1 {
			// MD or DM
			day = d.comp[0]
		} else if !isDay(d.comp[0]) {
			// YMD, MYD, or YDM
			year = d.comp[0]
			day = d.comp[1]
		} else {
			// DMY, MDY, or DYM
			day = d.comp[0]
			year = d.comp[1]
		}
	}

	if year >= 0 && year <= 49 {
		year += 2000
	} else if year >= 50 && year <= 99 {
		year += 1900
	}

	if year < -maxFieldValue || year > maxFieldValue || !isMonth(month) || !isDay(day) {
		return false
	}

	out.Year = year
	out.Month = month - 1 // 0-based
	out.Day = day
	return true
}

// TimeComposer accumulates up to three time-of-day numbers (hour, minute,
// second in encounter order) plus at most one AM/PM marker.
type TimeComposer struct {
	comp          [3]int
	index         int
	hourOffset    int
	hasHourOffset bool
}

// Add appends one raw time component. It reports false once the composer
// is full.
func (t *TimeComposer) Add(n int) bool {
	if t.index >= len(t.comp) {
		return false
	}
	t.comp[t.index] = n
	t.index++
	return true
}

// SetHourOffset records an AM/PM marker as its hour offset, 0 for AM and
// 12 for PM. It reports false if a marker was already recorded.
func (t *TimeComposer) SetHourOffset(offset int) bool {
	if t.hasHourOffset {
		return false
	}
	t.hourOffset = offset
	t.hasHourOffset = true
	return true
}

func (t *TimeComposer) started() bool { return t.index > 0 }

// expecting reports whether n can extend a partially read time, e.g. the
// seconds in "10:11 59". A year-sized number never can, which is how it
// stays available to the day composer.
func (t *TimeComposer) expecting(n int) bool {
	switch t.index {
	case 1:
		return isMinute(n)
	case 2:
		return isSecond(n)
	}
	return false
}

// Write resolves the accumulated components into out, zero-filling
// whatever trailing components are missing. With an AM/PM marker the hour
// must be a 12-hour clock value (0-12) and is mapped onto the 24-hour
// clock, so 12 AM gives 0 and 12 PM gives 12. Write reports false and
// leaves out untouched on any out-of-range component.
func (t *TimeComposer) Write(out *Date) bool {
	hour := t.comp[0]
	minute := t.comp[1]
	second := t.comp[2]

	if t.hasHourOffset {
		if !isHour12(hour) {
			return false
		}
		hour = hour%12 + t.hourOffset
	}

	if !isHour(hour) || !isMinute(minute) || !isSecond(second) {
		return false
	}

	out.Hour = hour
	out.Minute = minute
	out.Second = second
	return true
}

// TimeZoneComposer accumulates an optional UTC offset: a sign, an hour
// count and a minute count, any of which may independently stay unset.
type TimeZoneComposer struct {
	sign      int
	hour      int
	minute    int
	hasSign   bool
	hasHour   bool
	hasMinute bool
}

// SetSign records the offset direction, +1 or -1.
func (tz *TimeZoneComposer) SetSign(sign int) {
	tz.sign = sign
	tz.hasSign = true
}

// SetHour records the hour part of the offset. Zone abbreviations deliver
// their whole offset here, already signed, e.g. -8 for pst.
func (tz *TimeZoneComposer) SetHour(hour int) {
	tz.hour = hour
	tz.hasHour = true
}

// SetMinute records the minute part of the offset.
func (tz *TimeZoneComposer) SetMinute(minute int) {
	tz.minute = minute
	tz.hasMinute = true
}

// isUTC reports whether the composer currently holds a zero offset, as
// after "GMT" or "UTC". An explicit signed offset is only legal after a
// zero zone name or a time of day.
func (tz *TimeZoneComposer) isUTC() bool {
	return tz.hasSign && tz.hasHour && tz.hour == 0 && (!tz.hasMinute || tz.minute == 0)
}

// expectingMinute reports whether n should complete an offset given as
// "+hh:" followed by a separate minute token.
func (tz *TimeZoneComposer) expectingMinute(n int) bool {
	return tz.hasHour && !tz.hasMinute && isMinute(n)
}

// Write resolves the offset into out. With no sign recorded the input
// specified no timezone: out is marked offset-absent and Write still
// succeeds. Unset hour or minute counts default to 0. Only
// representability is checked, not wall-clock plausibility; the format
// permits arbitrary offsets.
func (tz *TimeZoneComposer) Write(out *Date) bool {
	if !tz.hasSign {
		out.Offset = 0
		out.HasOffset = false
		return true
	}
	seconds := int64(tz.sign) * (int64(tz.hour)*3600 + int64(tz.minute)*60)
	if seconds < -maxFieldValue || seconds > maxFieldValue {
		return false
	}
	out.Offset = int(seconds)
	out.HasOffset = true
	return true
}
