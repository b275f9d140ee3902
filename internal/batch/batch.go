// Package batch runs the parser over raw address rows stored in Postgres
// and writes the extracted components back.
package batch

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/nycgeo/nycaddr/internal/debug"
	"github.com/nycgeo/nycaddr/internal/parser"
)

// Processor walks the raw_address table in batches, parses each row and
// updates its component columns.
type Processor struct {
	db *sql.DB
}

// Stats tracks a batch run.
type Stats struct {
	TotalRows      int
	ProcessedCount int
	WithBorough    int
	WithPostcode   int
	MarbleHill     int
	ErrorCount     int
	ProcessingTime time.Duration
}

// NewProcessor creates a batch processor.
func NewProcessor(db *sql.DB) *Processor {
	return &Processor{db: db}
}

// ProcessAll parses every row that has not been parsed yet. batchSize bounds
// how many rows are fetched per round trip.
func (p *Processor) ProcessAll(localDebug bool, batchSize int) (*Stats, error) {
	debug.Header(localDebug)
	defer debug.Footer(localDebug)

	start := time.Now()
	stats := &Stats{}

	err := p.db.QueryRow(`
		SELECT COUNT(*)
		FROM raw_address
		WHERE parsed_at IS NULL
	`).Scan(&stats.TotalRows)
	if err != nil {
		return nil, fmt.Errorf("failed to count unparsed rows: %w", err)
	}
	debug.Logf(localDebug, "unparsed rows: %d, batch size: %d", stats.TotalRows, batchSize)

	for {
		n, err := p.processBatch(localDebug, batchSize, stats)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			break
		}
	}

	stats.ProcessingTime = time.Since(start)
	return stats, nil
}

func (p *Processor) processBatch(localDebug bool, batchSize int, stats *Stats) (int, error) {
	done := debug.Timing(localDebug, fmt.Sprintf("batch of up to %d rows", batchSize))
	defer done()

	rows, err := p.db.Query(`
		SELECT id, raw_text
		FROM raw_address
		WHERE parsed_at IS NULL
		ORDER BY id
		LIMIT $1
	`, batchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch batch: %w", err)
	}

	type row struct {
		id  int64
		raw string
	}
	var batch []row
	for rows.Next() {
		var r row
		if err := rows.Scan(&r.id, &r.raw); err != nil {
			rows.Close()
			return 0, fmt.Errorf("failed to scan row: %w", err)
		}
		batch = append(batch, r)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("batch iteration failed: %w", err)
	}

	for _, r := range batch {
		result := parser.Parse(r.raw)

		_, err := p.db.Exec(`
			UPDATE raw_address
			SET housenumber = NULLIF($2, ''),
			    street      = NULLIF($3, ''),
			    borough     = NULLIF($4, 0),
			    postcode    = NULLIF($5, ''),
			    marble_hill = $6,
			    parsed_at   = NOW()
			WHERE id = $1
		`, r.id, result.HouseNumber, result.Street, result.Borough,
			result.Postcode, result.MarbleHill)
		if err != nil {
			debug.Logf(localDebug, "row %d: update failed: %v", r.id, err)
			stats.ErrorCount++
			continue
		}

		stats.ProcessedCount++
		if result.Borough != 0 {
			stats.WithBorough++
		}
		if result.Postcode != "" {
			stats.WithPostcode++
		}
		if result.MarbleHill {
			stats.MarbleHill++
		}
	}

	return len(batch), nil
}
