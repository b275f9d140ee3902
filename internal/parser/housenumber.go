package parser

// houseNumberSuffixes are tokens that always belong to the house number when
// they directly follow it: fractions, garage/rear/air-rights descriptors and
// the two-letter PAD suffix codes.
var houseNumberSuffixes = map[string]bool{
	"1/2": true, "1/3": true, "2/3": true, "1/4": true, "3/4": true,
	"GAR": true, "GARAGE": true, "REAR": true, "AIR": true,
	"RIGHT": true, "RIGHTS": true, "RGHT": true, "RGHTS": true,
	"RGT": true, "RGTS": true,
	"INT": true, "INTER": true,
	"UNDER": true, "UNDERGROUND": true, "UNDRGRND": true,
	"E-BLDG": true, "W-BLDG": true,
	"AA": true, "AB": true, "AF": true, "AS": true, "BA": true,
	"BB": true, "CE": true, "ED": true, "SF": true,
}

// ambiguousSuffixes are valid both as house-number suffixes and as the first
// word of a street name ("655 FRONT A ST ANNS AVENUE" vs "655 FRONT STREET").
var ambiguousSuffixes = map[string]bool{
	"A": true, "B": true, "C": true, "D": true, "FRONT": true,
}

// classifyHouseNumber returns how many leading tokens belong to the house
// number. The first token must start with a digit or the count is zero.
// An ambiguous token is absorbed only when the token after it is itself
// suffix-like; a single trailing ambiguous token is left for the finalizer,
// which can still see the borough-stripped street that follows it.
func classifyHouseNumber(tokens []string) int {
	if len(tokens) == 0 || !startsWithDigit(tokens[0]) {
		return 0
	}

	count := 1
	for count < len(tokens) {
		tok := tokens[count]
		if houseNumberSuffixes[tok] {
			count++
			continue
		}
		if ambiguousSuffixes[tok] && count+1 < len(tokens) {
			next := tokens[count+1]
			if houseNumberSuffixes[next] || ambiguousSuffixes[next] {
				count++
				continue
			}
		}
		break
	}
	return count
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}
