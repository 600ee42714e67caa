package dateparser

// KeywordKind classifies a word recognized in a date string.
type KeywordKind int

const (
	KindInvalid KeywordKind = iota
	KindMonthName
	KindAMPM
	KindTimeZoneName
)

// keywordPrefixLen is how many leading characters of a word take part in
// keyword matching.
const keywordPrefixLen = 3

type keyword struct {
	pre   string // lowercase, at most keywordPrefixLen letters
	kind  KeywordKind
	value int // month 1-12, hour offset 0/12, or UTC offset in hours
}

// Lookup is a linear scan and the first legal match wins, so entry order
// matters.
var keywordTable = []keyword{
	{"jan", KindMonthName, 1},
	{"feb", KindMonthName, 2},
	{"mar", KindMonthName, 3},
	{"apr", KindMonthName, 4},
	{"may", KindMonthName, 5},
	{"jun", KindMonthName, 6},
	{"jul", KindMonthName, 7},
	{"aug", KindMonthName, 8},
	{"sep", KindMonthName, 9},
	{"oct", KindMonthName, 10},
	{"nov", KindMonthName, 11},
	{"dec", KindMonthName, 12},
	{"am", KindAMPM, 0},
	{"pm", KindAMPM, 12},
	{"ut", KindTimeZoneName, 0},
	{"utc", KindTimeZoneName, 0},
	{"gmt", KindTimeZoneName, 0},
	{"cdt", KindTimeZoneName, -5},
	{"cst", KindTimeZoneName, -6},
	{"edt", KindTimeZoneName, -4},
	{"est", KindTimeZoneName, -5},
	{"mdt", KindTimeZoneName, -6},
	{"mst", KindTimeZoneName, -7},
	{"pdt", KindTimeZoneName, -7},
	{"pst", KindTimeZoneName, -8},
}

// Lookup matches the lowercased prefix of a word (zero padded when the
// word is shorter than keywordPrefixLen) against the keyword table and
// returns its classification and value. A word longer than its keyword is
// legal only for month names, so "january" resolves to jan while "pstx"
// matches nothing. Unknown prefixes return KindInvalid.
//
// Could be a perfect hash, but this is nowhere near a bottleneck.
func Lookup(pre [keywordPrefixLen]byte, wordLen int) (KeywordKind, int) {
	for _, k := range keywordTable {
		if !k.matches(pre) {
			continue
		}
		if wordLen <= keywordPrefixLen || k.kind == KindMonthName {
			return k.kind, k.value
		}
	}
	return KindInvalid, 0
}

func (k keyword) matches(pre [keywordPrefixLen]byte) bool {
	for j := 0; j < keywordPrefixLen; j++ {
		var c byte
		if j < len(k.pre) {
			c = k.pre[j]
		}
		if pre[j] != c {
			return false
		}
	}
	return true
}
