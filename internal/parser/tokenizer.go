package parser

import (
	"regexp"
	"strings"
)

// fuseMark temporarily replaces the interior spaces of a multi-word phrase so
// the phrase survives whitespace splitting as a single token. Tokenize swaps
// the marks back to spaces before returning.
const fuseMark = "\x1f"

var (
	// Runs of whitespace, commas and line breaks collapse to a single space.
	reSeparators = regexp.MustCompile(`[\s,]+`)

	// A period directly before a space or end of string is dropped, so
	// "ST." tokenizes the same as "ST".
	reTrailingPeriod = regexp.MustCompile(`\.+( |$)`)
)

// saintNames are the saint street names that fuse with a leading "ST" token.
// Each accepts an optional possessive S ("ST ANNS" = "ST ANN'S").
var saintNames = []string{
	"AGNES", "ALBAN", "ANDREW", "ANN", "ANTHONY", "AUSTIN", "BARNABAS",
	"CHARLES", "CLAIR", "CLARE", "EDWARD", "FELIX", "FRANCIS", "GEORGE",
	"JAMES", "JOHN", "JOSEPH", "JUDE", "LAWRENCE", "LUKE", "MARK", "MARY",
	"NICHOLAS", "OUIDA", "PAUL", "PETER", "RAYMOND", "STEPHEN", "THERESA",
}

var reSaintName = regexp.MustCompile(`\bST (?:` + strings.Join(saintNames, "|") + `)S?\b`)

// Lettered avenues ("AVENUE B") and "AVENUE OF ..." names fuse so the single
// letter is never mistaken for a house-number suffix. AV and AVE cover the
// historical transit-style abbreviations.
var reLetterAvenue = regexp.MustCompile(`\b(?:AVENUE|AVE|AV) (?:OF|[A-Z])\b`)

// An ambiguous house-number suffix directly followed by a written-out street
// type fuses here; bare "ST"/"AV"/"AVE"/"AVENUE" cannot be fused without
// breaking saint-name and lettered-avenue handling and are resolved late by
// the finalizer instead.
var reAmbiguousStreet = regexp.MustCompile(`\b(?:A|B|C|D|FRONT) (?:STREET|STR|ROAD|RD)\b`)

// Administrative and institution phrases fuse so their trailing city or
// borough words never read as borough evidence ("COLLEGE OF STATEN ISLAND",
// "BANK OF NEW YORK").
var ofPhrasePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bOF (?:NEW YORK(?: CITY)?|NY|N Y)\b`),
	regexp.MustCompile(`\bOF (?:MANHATTAN|MANH|MAN)\b`),
	regexp.MustCompile(`\bOF (?:THE )?(?:BRONX|BX)\b`),
	regexp.MustCompile(`\bOF (?:BROOKLYN|BKLYN|BK)\b`),
	regexp.MustCompile(`\bOF (?:QUEENS|QNS)\b`),
	regexp.MustCompile(`\bOF (?:STATEN IS(?:LAND|L)?|SI)\b`),
	regexp.MustCompile(`\bNEW YORK (?:AVENUE|AVE|AV|PLAZA)\b`),
}

// fuse rewrites every recognized multi-word phrase in s into a single logical
// token. Saint names run before the borough and neighborhood phrases so that
// "ST ALBANS" is claimed as a street token first.
func fuse(s string) string {
	s = fusePattern(s, reSaintName)
	s = fusePattern(s, reLetterAvenue)
	s = fusePattern(s, reAmbiguousStreet)
	for _, re := range ofPhrasePatterns {
		s = fusePattern(s, re)
	}
	for _, re := range boroughPhraseFusers {
		s = fusePattern(s, re)
	}
	return s
}

func fusePattern(s string, re *regexp.Regexp) string {
	return re.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ReplaceAll(m, " ", fuseMark)
	})
}

// normalize uppercases the input, collapses separator runs to single spaces
// and strips trailing periods from words.
func normalize(raw string) string {
	s := strings.ToUpper(raw)
	s = reSeparators.ReplaceAllString(s, " ")
	s = reTrailingPeriod.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}

// Tokenize converts free-form address text into an ordered sequence of
// uppercase tokens. Fused phrases come back as single tokens with their
// interior spaces restored. Empty input yields an empty sequence.
func Tokenize(input string) []string {
	s := normalize(input)
	if s == "" {
		return nil
	}
	s = fuse(s)

	parts := strings.Split(s, " ")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		tokens = append(tokens, strings.ReplaceAll(p, fuseMark, " "))
	}
	return tokens
}
