// Package parser turns free-form New York City address text into its
// normalized components: house number, street, borough code, postal code and
// a Marble Hill flag. It is a single pure function over the input string;
// no input is ever rejected, unrecognized text just stays in the street
// field.
package parser

import (
	"strings"

	"github.com/nycgeo/nycaddr/internal/debug"
)

// Result holds the parsed address components. Fields that were not found are
// left at their zero value and omitted from JSON, so key absence survives
// serialization. Borough is 1-5 (Manhattan, Bronx, Brooklyn, Queens, Staten
// Island) or 0 when unresolved.
type Result struct {
	HouseNumber string `json:"housenumber,omitempty"`
	Street      string `json:"street,omitempty"`
	Borough     int    `json:"borough,omitempty"`
	Postcode    string `json:"postcode,omitempty"`
	MarbleHill  bool   `json:"marble_hill,omitempty"`
}

// streetTypeTokens block the late reclassification of an ambiguous token:
// "A ST ..." and "C AVENUE" are street names, not house-number suffixes.
var streetTypeTokens = map[string]bool{
	"ST": true, "AV": true, "AVE": true, "AVENUE": true,
}

// Parse parses one free-form NYC address. It is total over all inputs and
// safe for concurrent use; the empty string yields an empty Result.
func Parse(input string) Result {
	return ParseDebug(false, input)
}

// ParseDebug is Parse with optional step-by-step debug logging.
func ParseDebug(localDebug bool, input string) Result {
	debug.Header(localDebug)
	defer debug.Footer(localDebug)

	tokens := Tokenize(input)
	debug.Logf(localDebug, "tokens: %q", tokens)

	hnCount := classifyHouseNumber(tokens)
	debug.Logf(localDebug, "house number tokens: %d", hnCount)

	res := resolveBorough(tokens, hnCount)
	debug.Logf(localDebug, "borough=%d postcode=%q street tokens=%d",
		res.borough, res.postcode, res.end-hnCount)

	// The tokenizer could not fuse an ambiguous token with a bare ST or
	// AVENUE, so the decision on a deferred trailing token happens here,
	// after the borough evidence is gone from the tail.
	if res.end-hnCount > 1 && ambiguousSuffixes[tokens[hnCount]] &&
		!streetTypeTokens[tokens[hnCount+1]] {
		hnCount++
		debug.Logf(localDebug, "reclassified ambiguous token, house number tokens: %d", hnCount)
	}

	out := Result{
		HouseNumber: strings.Join(tokens[:hnCount], " "),
		Street:      strings.Join(tokens[hnCount:res.end], " "),
		Postcode:    res.postcode,
	}
	if res.borough >= Manhattan && res.borough <= StatenIsland {
		out.Borough = res.borough
	}

	applyMarbleHill(&out, tokens, hnCount)
	debug.Logf(localDebug, "result: %+v", out)
	return out
}
