package parser

import (
	"regexp"
	"strings"
)

// Marble Hill sits on the Bronx side of the Harlem River but is part of
// Manhattan, while its mail is addressed through Bronx ZIP 10463. Addresses
// that land there need the borough forced to Manhattan and flagged.
//
// The numeric boundaries below are policy constants tuned against the PAD
// file rather than law; confirm against the registry before changing them.
const (
	marbleHillBroadwayLow   = 5170
	marbleHillBroadwayHigh  = 5480
	marbleHillBroadwayExtra = 5485

	// Broadway numbers in these bands collide with Queens addresses written
	// without their hyphen, so they only count when the borough evidence
	// already points to Manhattan or the Bronx.
	marbleHillCarveOut1Low  = 5301
	marbleHillCarveOut1High = 5320
	marbleHillCarveOut2Low  = 5401
	marbleHillCarveOut2High = 5420

	marbleHillSideStreetLow  = 40
	marbleHillSideStreetHigh = 176
)

var reMarbleHillHouses = regexp.MustCompile(`\bMARBLE ?HILL (?:HOUSES?|HSES?)\b`)

// Buildings 4, 5, 6 and 11 of the Marble Hill Houses stand east of the old
// creek bed and are physically in the Bronx.
var reBronxBuildingNumber = regexp.MustCompile(`\b(?:4|5|6|11)\b`)

// marbleHillStreets are streets and landmarks lying entirely within Marble
// Hill. Each pattern matches the whole street field, with the usual
// abbreviated spellings allowed.
var marbleHillStreets = []*regexp.Regexp{
	regexp.MustCompile(`^ADRIAN AVE(?:NUE)?$`),
	regexp.MustCompile(`^JACOBUS PL(?:ACE)?$`),
	regexp.MustCompile(`^F(?:OR)?T CHARLES PL(?:ACE)?$`),
	regexp.MustCompile(`^TERRACE VIEW AVE(?:NUE)?$`),
	regexp.MustCompile(`^MARBLE HILL AVE(?:NUE)?$`),
	regexp.MustCompile(`^MARBLE HILL LA(?:NE)?$`),
	regexp.MustCompile(`^VAN CORLEAR PL(?:ACE)?$`),
	regexp.MustCompile(`^TEUNISSEN PL(?:ACE)?$`),
	regexp.MustCompile(`^BROADWAY BR(?:IDGE)?$`),
	regexp.MustCompile(`^MARBLE HILL STA(?:TION)?$`),
	regexp.MustCompile(`^MARBLE HILL$`),
}

var reMarbleHillBroadway = regexp.MustCompile(`^BROADWAY$`)

// Front-truncated West 225th/227th/228th Street: the WEST is routinely
// dropped because there is no East counterpart up there.
var reMarbleHillSideStreet = regexp.MustCompile(`^(?:W(?:EST)? )?22[578](?:TH)? ST(?:REET)?$`)

// applyMarbleHill rewrites the result in place when the parsed address falls
// inside Marble Hill. It only runs when the postcode is absent or 10463-ish
// and the borough could still be Manhattan, the Bronx or unknown.
func applyMarbleHill(r *Result, tokens []string, hnCount int) {
	if r.Borough == Brooklyn || r.Borough == Queens || r.Borough == StatenIsland {
		return
	}
	if r.Postcode != "" && !strings.HasPrefix(r.Postcode, "10463") {
		return
	}

	if loc := reMarbleHillHouses.FindStringIndex(r.Street); loc != nil {
		if reBronxBuildingNumber.MatchString(r.Street[loc[1]:]) {
			r.Borough = Bronx
			return
		}
		markMarbleHill(r)
		return
	}

	for _, re := range marbleHillStreets {
		if re.MatchString(r.Street) {
			markMarbleHill(r)
			return
		}
	}

	// The number-range rules assume a plain Manhattan-style house number;
	// hyphenated Queens numbers disqualify the address outright.
	if hnCount == 0 || strings.Contains(tokens[0], "-") {
		return
	}
	num, ok := leadingNumber(tokens[0])
	if !ok {
		return
	}

	if reMarbleHillBroadway.MatchString(r.Street) && marbleHillBroadwayNumber(num, r.Borough) {
		markMarbleHill(r)
		return
	}
	if reMarbleHillSideStreet.MatchString(r.Street) &&
		num >= marbleHillSideStreetLow && num <= marbleHillSideStreetHigh {
		markMarbleHill(r)
	}
}

func markMarbleHill(r *Result) {
	r.Borough = Manhattan
	r.MarbleHill = true
}

// marbleHillBroadwayNumber reports whether a Broadway house number falls in
// the Marble Hill stretch. Numbers inside the Queens-collision bands only
// qualify when the borough already resolved to Manhattan or the Bronx.
func marbleHillBroadwayNumber(num, borough int) bool {
	if num != marbleHillBroadwayExtra &&
		(num < marbleHillBroadwayLow || num > marbleHillBroadwayHigh) {
		return false
	}
	if (num >= marbleHillCarveOut1Low && num <= marbleHillCarveOut1High) ||
		(num >= marbleHillCarveOut2Low && num <= marbleHillCarveOut2High) {
		return borough == Manhattan || borough == Bronx
	}
	return true
}

// leadingNumber parses the digit prefix of a token ("189" from "189",
// "5485" from "5485A").
func leadingNumber(tok string) (int, bool) {
	n := 0
	i := 0
	for i < len(tok) && tok[i] >= '0' && tok[i] <= '9' {
		n = n*10 + int(tok[i]-'0')
		i++
	}
	if i == 0 {
		return 0, false
	}
	return n, true
}
