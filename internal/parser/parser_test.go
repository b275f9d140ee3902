package parser

import (
	"encoding/json"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Result
	}{
		{
			name:  "street only with number",
			input: "123 broadway",
			want:  Result{HouseNumber: "123", Street: "BROADWAY"},
		},
		{
			name:  "deferred ambiguous token joins house number",
			input: "655 FRONT A ST ANNS AVENUE",
			want:  Result{HouseNumber: "655 FRONT A", Street: "ST ANNS AVENUE"},
		},
		{
			name:  "borough short code",
			input: "30 cranberry bk",
			want:  Result{HouseNumber: "30", Street: "CRANBERRY", Borough: Brooklyn},
		},
		{
			name:  "fraction ambiguous token and queens neighborhood",
			input: "189 1/2 A Beach 25th St Far Rockaway",
			want:  Result{HouseNumber: "189 1/2 A", Street: "BEACH 25TH ST", Borough: Queens},
		},
		{
			name:  "full tail with state postcode and country",
			input: "30 Cranberry Court Staten Island NY 10309 USA",
			want: Result{
				HouseNumber: "30",
				Street:      "CRANBERRY COURT",
				Borough:     StatenIsland,
				Postcode:    "10309",
			},
		},
		{
			name:  "marble hill street overrides bronx city line",
			input: "2 Jacobus Pl., Bronx, New York",
			want: Result{
				HouseNumber: "2",
				Street:      "JACOBUS PL",
				Borough:     Manhattan,
				MarbleHill:  true,
			},
		},
		{
			name:  "marble hill houses bronx building",
			input: "marble hill houses bldg 11",
			want:  Result{Street: "MARBLE HILL HOUSES BLDG 11", Borough: Bronx},
		},
		{
			name:  "ambiguous token stays with street before bare st",
			input: "5 C St",
			want:  Result{HouseNumber: "5", Street: "C ST"},
		},
		{
			name:  "ambiguous token stays with street before avenue",
			input: "5 C Avenue",
			want:  Result{HouseNumber: "5", Street: "C AVENUE"},
		},
		{
			name:  "lettered avenue with borough",
			input: "12 Avenue B Brooklyn",
			want:  Result{HouseNumber: "12", Street: "AVENUE B", Borough: Brooklyn},
		},
		{
			name:  "generic new york falls back to manhattan",
			input: "100 Main St New York",
			want:  Result{HouseNumber: "100", Street: "MAIN ST", Borough: Manhattan},
		},
		{
			name:  "no digits at all",
			input: "empire state building",
			want:  Result{Street: "EMPIRE STATE BUILDING"},
		},
		{
			name:  "empty input",
			input: "",
			want:  Result{},
		},
		{
			name:  "garbage is street text",
			input: "@#$%",
			want:  Result{Street: "@#$%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

// Re-parsing the parser's own housenumber+street output must reproduce the
// same split: tokenization loses no information.
func TestParseIdempotent(t *testing.T) {
	inputs := []string{
		"123 broadway",
		"655 FRONT A ST ANNS AVENUE",
		"189 1/2 A Beach 25th St Far Rockaway",
		"30 Cranberry Court Staten Island NY 10309 USA",
		"2 Jacobus Pl., Bronx, New York",
		"12 Avenue B Brooklyn",
		"marble hill houses bldg 11",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first := Parse(input)

			joined := first.HouseNumber
			if first.Street != "" {
				if joined != "" {
					joined += " "
				}
				joined += first.Street
			}

			second := Parse(joined)
			if second.HouseNumber != first.HouseNumber || second.Street != first.Street {
				t.Errorf("Parse(%q) split %q/%q, re-parse split %q/%q",
					input, first.HouseNumber, first.Street,
					second.HouseNumber, second.Street)
			}
		})
	}
}

func TestResultJSONOmitsAbsentFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no borough key without evidence",
			input: "123 broadway",
			want:  `{"housenumber":"123","street":"BROADWAY"}`,
		},
		{
			name:  "all fields present",
			input: "30 Cranberry Court Staten Island NY 10309 USA",
			want:  `{"housenumber":"30","street":"CRANBERRY COURT","borough":5,"postcode":"10309"}`,
		},
		{
			name:  "marble hill flag only when true",
			input: "2 Jacobus Pl., Bronx, New York",
			want:  `{"housenumber":"2","street":"JACOBUS PL","borough":1,"marble_hill":true}`,
		},
		{
			name:  "empty record",
			input: "",
			want:  `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := json.Marshal(Parse(tt.input))
			if err != nil {
				t.Fatalf("json.Marshal() error = %v", err)
			}
			if string(out) != tt.want {
				t.Errorf("json.Marshal() = %s, want %s", out, tt.want)
			}
		})
	}
}
