package dateparser

import (
	"testing"
	"time"
)

// go test -bench . compares the single-pass composer parse against the
// traditional shotgun approach of trying stdlib layouts one by one.

var benchDates = []string{
	"oct 7, 1970",
	"May 8, 2009 5:57:51 PM",
	"03/19/2012 10:11:59",
	"2012/03/19 10:11:59",
	"Mon Jan 02 15:04:05 -0700 2006",
	"Thu May  8 17:57:51 PST 2009",
	"2014-12-16 06:20:00 UTC",
}

func BenchmarkParse(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for _, datestr := range benchDates {
			Parse(datestr)
		}
	}
}

var shotgunFormats = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.UnixDate,
	time.RubyDate,
	time.ANSIC,
	"Jan 2, 2006 3:04:05 PM",
	"Jan 2, 2006",
	"01/02/2006 15:04:05",
	"2006/01/02 15:04:05",
	"2006-01-02 15:04:05 MST",
}

func BenchmarkShotgunParse(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for _, datestr := range benchDates {
			for _, format := range shotgunFormats {
				if _, err := time.Parse(format, datestr); err == nil {
					break
				}
			}
		}
	}
}

func BenchmarkLookup(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Lookup([keywordPrefixLen]byte{'j', 'a', 'n'}, len("january"))
		Lookup([keywordPrefixLen]byte{'p', 's', 't'}, 3)
		Lookup([keywordPrefixLen]byte{'x', 'y', 'z'}, 3)
	}
}
