package parser

import "regexp"

// Borough codes as used by the city's PAD file. The internal sentinels never
// appear in parser output.
const (
	Manhattan    = 1
	Bronx        = 2
	Brooklyn     = 3
	Queens       = 4
	StatenIsland = 5

	// boroughGenericNY marks a generic "NEW YORK"/"NY" phrase: consumed and
	// remembered, falling back to Manhattan if nothing better turns up.
	boroughGenericNY = 6

	// boroughInconclusive marks a token that is consumed but proves nothing,
	// such as a country name or an unknown ZIP prefix.
	boroughInconclusive = 7

	// boroughUnknown means no determination yet.
	boroughUnknown = 9
)

// rePostalCode accepts five digits with anything after them, tolerating
// ZIP+4 and trailing garbage. The token is kept verbatim as the postcode.
var rePostalCode = regexp.MustCompile(`^[0-9]{5}`)

// zipPrefixBoroughs maps the first three ZIP digits to a borough.
var zipPrefixBoroughs = map[string]int{
	"100": Manhattan, "101": Manhattan, "102": Manhattan,
	"104": Bronx,
	"112": Brooklyn,
	"111": Queens, "113": Queens, "114": Queens, "116": Queens,
	"103": StatenIsland,
}

// boroughShortCodes matches single-word borough abbreviations and the Queens
// neighborhoods that are one word long. Multi-word names are handled by the
// phrase table below, after the tokenizer has fused them.
var boroughShortCodes = map[string]int{
	"M": Manhattan, "MA": Manhattan, "MH": Manhattan, "MN": Manhattan,
	"MAN": Manhattan, "MANH": Manhattan, "MANHATTAN": Manhattan,

	"BX": Bronx, "BRX": Bronx, "BRON": Bronx, "BRONX": Bronx,

	"BK": Brooklyn, "BRK": Brooklyn, "BKLYN": Brooklyn,
	"BRKLYN": Brooklyn, "BROOKLYN": Brooklyn,

	"Q": Queens, "QU": Queens, "QN": Queens, "QNS": Queens,
	"QUEENS": Queens, "LIC": Queens,
	"ASTORIA": Queens, "ARVERNE": Queens, "AUBURNDALE": Queens,
	"BAYSIDE": Queens, "BELLEROSE": Queens, "BRIARWOOD": Queens,
	"CORONA": Queens, "DOUGLASTON": Queens, "EDGEMERE": Queens,
	"ELMHURST": Queens, "FLUSHING": Queens, "GLENDALE": Queens,
	"HOLLIS": Queens, "JAMAICA": Queens, "LAURELTON": Queens,
	"MALBA": Queens, "MASPETH": Queens, "NEPONSIT": Queens,
	"RIDGEWOOD": Queens, "ROCKAWAY": Queens, "ROCKAWAYS": Queens,
	"ROSEDALE": Queens, "SUNNYSIDE": Queens, "WHITESTONE": Queens,
	"WOODHAVEN": Queens, "WOODSIDE": Queens,

	"SI": StatenIsland,

	"NY": boroughGenericNY, "NYC": boroughGenericNY,

	"US": boroughInconclusive, "USA": boroughInconclusive,
}

// boroughPhrases are the multi-word borough, neighborhood, city and country
// patterns. The tokenizer fuses each occurrence into a single token; the
// resolver then matches whole tokens against the same cores. Spelling is
// deliberately forgiving, matching how these names show up in source data.
var boroughPhrases = []struct {
	borough int
	core    string
}{
	{Bronx, `THE (?:BRONX|BX)`},

	{Queens, `ADDISLEIGH P(?:AR)?K`},
	{Queens, `BAY TERR(?:ACE)?`},
	{Queens, `BELLE HARBOR`},
	{Queens, `BREEZY P(?:OIN)?T`},
	{Queens, `BROAD CHANNEL`},
	{Queens, `CAMBRIA H(?:EIGH)?TS`},
	{Queens, `COLLEGE P(?:OIN)?T`},
	{Queens, `E(?:AST)? ELMHURST`},
	{Queens, `FAR ROCK(?:AWAY)?`},
	{Queens, `FLORAL P(?:AR)?K`},
	{Queens, `FOREST HILLS(?: GARDENS)?`},
	{Queens, `FRESH MEADOWS`},
	{Queens, `GLEN OAKS`},
	{Queens, `HOLLIS HILLS`},
	{Queens, `HOWARD B(?:EA)?CH`},
	{Queens, `JACKSON H(?:EIGH)?TS`},
	{Queens, `JAMAICA (?:ESTATES|HILLS)`},
	{Queens, `KEW GARDENS(?: HILLS)?`},
	{Queens, `L(?:ONG)? I(?:SLAND)? CITY`},
	{Queens, `LITTLE NECK`},
	{Queens, `MIDDLE VILL(?:AGE)?`},
	{Queens, `OAKLAND GARDENS`},
	{Queens, `(?:S(?:OUTH)? )?OZONE P(?:AR)?K`},
	{Queens, `QUEENS VILL(?:AGE)?`},
	{Queens, `REGO P(?:AR)?K`},
	{Queens, `RICHMOND HILL`},
	{Queens, `ROCKAWAY (?:BEACH|PARK|P(?:OIN)?T)`},
	{Queens, `SPRINGFIELD G(?:ARDEN)?S`},
	{Queens, `ST ALBANS?`},

	{StatenIsland, `STATEN IS(?:LAND|L)?`},

	// Loose alias on purpose: addresses written with "MARBLE HILL" as the
	// city line belong to Manhattan.
	{Manhattan, `MARBLE HILL`},

	{boroughGenericNY, `NEW YORK(?: CITY)?|NY CITY|N Y(?: C)?`},

	{boroughInconclusive, `UNITED STATES(?: OF AMERICA)?|U S(?: A)?`},
}

// boroughPhraseFusers find borough phrases inside the normalized input
// string; boroughPhraseMatchers test whole fused tokens against the same
// cores.
var (
	boroughPhraseFusers   []*regexp.Regexp
	boroughPhraseMatchers []*regexp.Regexp
)

func init() {
	for _, p := range boroughPhrases {
		boroughPhraseFusers = append(boroughPhraseFusers,
			regexp.MustCompile(`\b(?:`+p.core+`)\b`))
		boroughPhraseMatchers = append(boroughPhraseMatchers,
			regexp.MustCompile(`^(?:`+p.core+`)$`))
	}
}

// matchBoroughToken resolves one token to a borough code. Short codes win
// over phrase patterns; phrase order follows the table above.
func matchBoroughToken(tok string) (int, bool) {
	if code, ok := boroughShortCodes[tok]; ok {
		return code, true
	}
	for i, re := range boroughPhraseMatchers {
		if re.MatchString(tok) {
			return boroughPhrases[i].borough, true
		}
	}
	return boroughUnknown, false
}

func boroughFromZip(postcode string) int {
	if code, ok := zipPrefixBoroughs[postcode[:3]]; ok {
		return code
	}
	return boroughInconclusive
}

// resolution is the outcome of the backward borough/postal scan: the borough
// code (possibly still unknown), the verbatim postal token, and the index
// just past the last token still belonging to the street.
type resolution struct {
	borough  int
	postcode string
	end      int
}

// resolveBorough peels borough and postal evidence off the tail of the token
// sequence. At least one token past the house number is always left for the
// street, even when it looks like borough data. A definitive borough stops
// the scan; generic-NY and country tokens are consumed and the scan goes on,
// since something more specific may sit further back ("BRONX NEW YORK").
func resolveBorough(tokens []string, hnCount int) resolution {
	res := resolution{borough: boroughUnknown, end: len(tokens)}
	postalBorough := boroughUnknown
	sawGenericNY := false

	for res.end-hnCount > 1 {
		tok := tokens[res.end-1]

		if res.postcode == "" && rePostalCode.MatchString(tok) {
			res.postcode = tok
			postalBorough = boroughFromZip(tok)
			res.end--
			continue
		}

		code, ok := matchBoroughToken(tok)
		if !ok {
			break
		}
		res.end--
		if code == boroughGenericNY {
			sawGenericNY = true
			continue
		}
		if code < boroughGenericNY {
			res.borough = code
			break
		}
		// Inconclusive token (country name): consumed, keep scanning.
	}

	if res.borough == boroughUnknown {
		if postalBorough >= Manhattan && postalBorough <= StatenIsland {
			res.borough = postalBorough
		} else if sawGenericNY {
			res.borough = Manhattan
		}
	}
	return res
}
