// Package dateparser converts loosely formatted date/time strings into a
// broken-down Date record without knowing the format in advance. Numbers,
// month names, AM/PM markers and timezone abbreviations may appear in
// most of the usual orders; positional and range heuristics decide which
// field each value belongs to, so "oct 7, 1970", "7 oct 70" and
// "10/7/1970" all resolve to the same record.
package dateparser

import (
	"github.com/pkg/errors"
)

// ErrFormat is returned, wrapped with the offending input, when a string
// cannot be resolved into a date.
var ErrFormat = errors.New("unrecognized date/time format")

// Parse scans datestr once, left to right, and resolves it into a Date.
//
// Numbers are routed by context: a number glued to a ':' opens or extends
// the time of day, a small number after "+hh:" completes a UTC offset,
// and everything else accumulates as a date component. Words are matched
// against a fixed keyword table covering month names, AM/PM and a handful
// of zone abbreviations; any other word is tolerated before the first
// number (weekday names, typically) and is an error after it.
// Parenthesized phrases such as "(Pacific Daylight Time)" are skipped
// wholesale. A '+' or '-' introduces an explicit offset only after a time
// of day or a zero zone name like GMT, so bare dates with dashed
// separators keep their digits.
func Parse(datestr string) (Date, error) {
	var (
		day DayComposer
		tm  TimeComposer
		tz  TimeZoneComposer
		out Date
	)

	in := reader{s: datestr}
	for !in.end() {
		switch {
		case in.isDigit():
			n := in.readNumber()
			switch {
			case in.skip(':'):
				if !tm.Add(n) {
					return Date{}, errors.Wrapf(ErrFormat, "parse %q", datestr)
				}
			case tz.expectingMinute(n):
				tz.SetMinute(n)
			case tm.expecting(n):
				tm.Add(n)
			default:
				if !day.Add(n) {
					return Date{}, errors.Wrapf(ErrFormat, "parse %q", datestr)
				}
				in.skip('-') // date separator, as in "02-03-04"
			}

		case in.isLetter():
			pre, wordLen := in.readWord()
			kind, value := Lookup(pre, wordLen)
			switch kind {
			case KindMonthName:
				if !day.SetNamedMonth(value) {
					return Date{}, errors.Wrapf(ErrFormat, "parse %q", datestr)
				}
			case KindAMPM:
				if !tm.SetHourOffset(value) {
					return Date{}, errors.Wrapf(ErrFormat, "parse %q", datestr)
				}
			case KindTimeZoneName:
				tz.SetSign(1)
				tz.SetHour(value)
			default:
				if in.readNum {
					return Date{}, errors.Wrapf(ErrFormat, "parse %q", datestr)
				}
			}

		case (in.ch() == '+' || in.ch() == '-') && (tz.isUTC() || tm.started()):
			sign := 1
			if in.ch() == '-' {
				sign = -1
			}
			in.next()
			start := in.pos
			n := in.readNumber()
			tz.SetSign(sign)
			switch {
			case in.skip(':'):
				// "+hh:mm", minute arrives as the next number
				tz.SetHour(n)
			case in.pos-start <= 2:
				// "+hh"
				tz.SetHour(n)
				tz.SetMinute(0)
			default:
				// "+hhmm"
				tz.SetHour(n / 100)
				tz.SetMinute(n % 100)
			}

		case in.ch() == '(':
			in.skipParens()

		default:
			in.next()
		}
	}

	if !day.Write(&out) || !tm.Write(&out) || !tz.Write(&out) {
		return Date{}, errors.Wrapf(ErrFormat, "parse %q", datestr)
	}
	return out, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(datestr string) Date {
	d, err := Parse(datestr)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// reader walks a date string one ASCII byte at a time. Multi-byte runes
// never match a digit or letter probe and fall through as separators.
type reader struct {
	s       string
	pos     int
	readNum bool
}

func (in *reader) end() bool { return in.pos >= len(in.s) }

func (in *reader) ch() byte { return in.s[in.pos] }

func (in *reader) next() { in.pos++ }

func (in *reader) isDigit() bool {
	return !in.end() && in.ch() >= '0' && in.ch() <= '9'
}

func (in *reader) isLetter() bool {
	if in.end() {
		return false
	}
	c := in.ch() | 0x20
	return c >= 'a' && c <= 'z'
}

// skip consumes the current byte if it equals c.
func (in *reader) skip(c byte) bool {
	if !in.end() && in.ch() == c {
		in.pos++
		return true
	}
	return false
}

// readNumber consumes a run of digits. Runs too long for a field saturate
// past maxFieldValue while still being consumed, so later range checks
// reject them.
func (in *reader) readNumber() int {
	n := 0
	for in.isDigit() {
		if n <= maxFieldValue/10 {
			n = n*10 + int(in.ch()-'0')
		} else {
			n = maxFieldValue + 1
		}
		in.next()
	}
	in.readNum = true
	return n
}

// readWord consumes a run of letters and returns the lowercased keyword
// prefix (zero padded for short words) plus the full word length.
func (in *reader) readWord() (pre [keywordPrefixLen]byte, wordLen int) {
	for in.isLetter() {
		if wordLen < keywordPrefixLen {
			pre[wordLen] = in.ch() | 0x20
		}
		wordLen++
		in.next()
	}
	return pre, wordLen
}

// skipParens consumes a parenthesized phrase, nesting included. An
// unbalanced phrase runs to the end of the input.
func (in *reader) skipParens() {
	level := 1
	in.next()
	for !in.end() && level > 0 {
		switch in.ch() {
		case '(':
			level++
		case ')':
			level--
		}
		in.next()
	}
}
