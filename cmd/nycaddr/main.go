package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nycgeo/nycaddr/internal/batch"
	"github.com/nycgeo/nycaddr/internal/config"
	"github.com/nycgeo/nycaddr/internal/db"
	"github.com/nycgeo/nycaddr/internal/parser"
	"github.com/nycgeo/nycaddr/internal/web"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Fatalf("Failed to load environment: %v", err)
	}

	rootCmd := &cobra.Command{
		Use:   "nycaddr",
		Short: "NYC free-form address parser",
		Long:  `Parses unstructured New York City address text into house number, street, borough, postcode and Marble Hill components`,
	}

	rootCmd.AddCommand(createParseCmd())
	rootCmd.AddCommand(createServeCmd())
	rootCmd.AddCommand(createBatchCmd())
	rootCmd.AddCommand(createPingCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// createParseCmd creates the parse subcommand.
func createParseCmd() *cobra.Command {
	var asJSON bool
	var localDebug bool

	cmd := &cobra.Command{
		Use:   "parse [address]",
		Short: "Parse one address, or one per line from stdin",
		Long:  `Parse a free-form NYC address given as arguments, or read addresses line by line from stdin when no arguments are given`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) > 0 {
				printResult(parser.ParseDebug(localDebug, strings.Join(args, " ")), asJSON)
				return
			}

			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				printResult(parser.ParseDebug(localDebug, scanner.Text()), asJSON)
			}
			if err := scanner.Err(); err != nil {
				log.Fatalf("Failed to read stdin: %v", err)
			}
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")
	cmd.Flags().BoolVar(&localDebug, "debug", false, "Print parser debug output")

	return cmd
}

// printResult renders a parse result. Absent components are left out
// entirely, both in JSON and in the key/value display.
func printResult(result parser.Result, asJSON bool) {
	if asJSON {
		out, err := json.Marshal(result)
		if err != nil {
			log.Fatalf("Failed to encode result: %v", err)
		}
		fmt.Println(string(out))
		return
	}

	if result.HouseNumber != "" {
		fmt.Printf("housenumber: %s\n", result.HouseNumber)
	}
	if result.Street != "" {
		fmt.Printf("street:      %s\n", result.Street)
	}
	if result.Borough != 0 {
		fmt.Printf("borough:     %d\n", result.Borough)
	}
	if result.Postcode != "" {
		fmt.Printf("postcode:    %s\n", result.Postcode)
	}
	if result.MarbleHill {
		fmt.Printf("marble_hill: true\n")
	}
	fmt.Println()
}

// createServeCmd creates the serve subcommand.
func createServeCmd() *cobra.Command {
	var port int
	var host string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the demo web server",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := web.DefaultConfig()
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if cmd.Flags().Changed("host") {
				cfg.Host = host
			}

			server := web.NewServer(cfg)
			if err := server.Start(); err != nil {
				log.Fatalf("Server failed: %v", err)
			}
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "Port to listen on")
	cmd.Flags().StringVar(&host, "host", "0.0.0.0", "Host to bind to")

	return cmd
}

// createBatchCmd creates the batch subcommand.
func createBatchCmd() *cobra.Command {
	var batchSize int
	var localDebug bool

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Parse unparsed raw_address rows in Postgres",
		Run: func(cmd *cobra.Command, args []string) {
			conn, err := db.NewConnection()
			if err != nil {
				log.Fatalf("Failed to connect to database: %v", err)
			}
			defer conn.Close()

			processor := batch.NewProcessor(conn.DB)
			stats, err := processor.ProcessAll(localDebug, batchSize)
			if err != nil {
				log.Fatalf("Batch parsing failed: %v", err)
			}

			fmt.Printf("\n=== Batch Parsing Results ===\n")
			fmt.Printf("Total Rows: %d\n", stats.TotalRows)
			fmt.Printf("Processed: %d\n", stats.ProcessedCount)
			fmt.Printf("With Borough: %d\n", stats.WithBorough)
			fmt.Printf("With Postcode: %d\n", stats.WithPostcode)
			fmt.Printf("Marble Hill: %d\n", stats.MarbleHill)
			fmt.Printf("Errors: %d\n", stats.ErrorCount)
			fmt.Printf("Time: %v\n", stats.ProcessingTime)
		},
	}

	cmd.Flags().IntVar(&batchSize, "batch-size", 1000, "Batch size for processing rows")
	cmd.Flags().BoolVar(&localDebug, "debug", false, "Print batch debug output")

	return cmd
}

// createPingCmd creates a command to test database connectivity.
func createPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Test database connectivity",
		Run: func(cmd *cobra.Command, args []string) {
			conn, err := db.NewConnection()
			if err != nil {
				log.Fatalf("Failed to connect to database: %v", err)
			}
			defer conn.Close()

			fmt.Println("Database connection successful!")

			var count int
			if err := conn.DB.QueryRow("SELECT COUNT(*) FROM raw_address").Scan(&count); err != nil {
				log.Printf("Error counting raw_address rows: %v", err)
			} else {
				fmt.Printf("Raw addresses loaded: %d\n", count)
			}
		},
	}
}
