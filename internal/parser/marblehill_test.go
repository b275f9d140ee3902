package parser

import "testing"

func TestMarbleHillOverride(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		wantBorough    int
		wantMarbleHill bool
	}{
		{
			name:           "marble hill houses",
			input:          "marble hill houses",
			wantBorough:    Manhattan,
			wantMarbleHill: true,
		},
		{
			name:           "marble hill houses bronx building",
			input:          "marble hill houses bldg 11",
			wantBorough:    Bronx,
			wantMarbleHill: false,
		},
		{
			name:           "marble hill houses manhattan building",
			input:          "marble hill houses bldg 2",
			wantBorough:    Manhattan,
			wantMarbleHill: true,
		},
		{
			name:           "street entirely within marble hill",
			input:          "2 Adrian Avenue",
			wantBorough:    Manhattan,
			wantMarbleHill: true,
		},
		{
			name:           "abbreviated marble hill street",
			input:          "2 Jacobus Pl",
			wantBorough:    Manhattan,
			wantMarbleHill: true,
		},
		{
			name:           "broadway in marble hill range",
			input:          "5200 Broadway",
			wantBorough:    Manhattan,
			wantMarbleHill: true,
		},
		{
			name:           "broadway endpoint above range",
			input:          "5485 Broadway",
			wantBorough:    Manhattan,
			wantMarbleHill: true,
		},
		{
			name:           "broadway below range",
			input:          "123 Broadway",
			wantBorough:    0,
			wantMarbleHill: false,
		},
		{
			name:           "queens collision band without borough evidence",
			input:          "5310 Broadway",
			wantBorough:    0,
			wantMarbleHill: false,
		},
		{
			name:           "queens collision band with bronx evidence",
			input:          "5310 Broadway Bronx",
			wantBorough:    Manhattan,
			wantMarbleHill: true,
		},
		{
			name:           "hyphenated house number disqualifies broadway rule",
			input:          "53-10 Broadway",
			wantBorough:    0,
			wantMarbleHill: false,
		},
		{
			name:           "west 227th street in range",
			input:          "100 West 227th Street",
			wantBorough:    Manhattan,
			wantMarbleHill: true,
		},
		{
			name:           "front truncated 225th street",
			input:          "55 225th St",
			wantBorough:    Manhattan,
			wantMarbleHill: true,
		},
		{
			name:           "west 227th street above range",
			input:          "225 W 227th St",
			wantBorough:    0,
			wantMarbleHill: false,
		},
		{
			name:           "marble hill zip keeps override live",
			input:          "5200 Broadway 10463",
			wantBorough:    Manhattan,
			wantMarbleHill: true,
		},
		{
			name:           "manhattan zip blocks override",
			input:          "5200 Broadway 10034",
			wantBorough:    Manhattan,
			wantMarbleHill: false,
		},
		{
			name:           "queens borough blocks override",
			input:          "5200 Broadway Queens",
			wantBorough:    Queens,
			wantMarbleHill: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if got.Borough != tt.wantBorough {
				t.Errorf("Parse(%q) borough = %d, want %d", tt.input, got.Borough, tt.wantBorough)
			}
			if got.MarbleHill != tt.wantMarbleHill {
				t.Errorf("Parse(%q) marble_hill = %v, want %v", tt.input, got.MarbleHill, tt.wantMarbleHill)
			}
		})
	}
}
