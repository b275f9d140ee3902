// Command libpostal-compare parses an address with libpostal and with the
// NYC parser and prints both component sets side by side. Useful for spot
// checking where the NYC-specific heuristics diverge from the generic model.
package main

import (
	"flag"
	"fmt"
	"os"

	postal "github.com/openvenues/gopostal/parser"

	"github.com/nycgeo/nycaddr/internal/parser"
)

func main() {
	address := flag.String("address", "", "Address to parse with both parsers")
	flag.Parse()

	if *address == "" {
		fmt.Println("Usage:")
		fmt.Println("  ./libpostal-compare -address=\"189 1/2 A Beach 25th St Far Rockaway\"")
		os.Exit(1)
	}

	fmt.Printf("Input: %s\n\n", *address)

	fmt.Println("=== libpostal ===")
	for _, component := range postal.ParseAddress(*address) {
		fmt.Printf("%-12s %s\n", component.Label+":", component.Value)
	}

	fmt.Println("\n=== nycaddr ===")
	result := parser.Parse(*address)
	if result.HouseNumber != "" {
		fmt.Printf("%-12s %s\n", "housenumber:", result.HouseNumber)
	}
	if result.Street != "" {
		fmt.Printf("%-12s %s\n", "street:", result.Street)
	}
	if result.Borough != 0 {
		fmt.Printf("%-12s %d\n", "borough:", result.Borough)
	}
	if result.Postcode != "" {
		fmt.Printf("%-12s %s\n", "postcode:", result.Postcode)
	}
	if result.MarbleHill {
		fmt.Printf("%-12s true\n", "marble_hill:")
	}
}
