package marketdata

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // postgres driver
)

const lookupTimeout = 5 * time.Second

// PostgresAssumptionFeed reads assumption sets from a rate_presets table:
//
//	name | loan_rate_pct | discount_rate_pct | house_growth_pct | rent_growth_pct
type PostgresAssumptionFeed struct {
	db *sql.DB
}

// OpenPostgres connects with the given DSN and verifies the connection.
func OpenPostgres(dsn string) (*PostgresAssumptionFeed, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("OpenPostgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("OpenPostgres: ping: %w", err)
	}
	return &PostgresAssumptionFeed{db: db}, nil
}

// Lookup resolves one preset by name. A missing row and a query failure both
// report absence; the feed never invents assumptions.
func (f *PostgresAssumptionFeed) Lookup(name string) (Assumptions, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	const q = `
		SELECT name, loan_rate_pct, discount_rate_pct, house_growth_pct, rent_growth_pct
		FROM rate_presets
		WHERE name = $1`

	var a Assumptions
	err := f.db.QueryRowContext(ctx, q, name).Scan(
		&a.Name, &a.LoanRatePct, &a.DiscountRatePct, &a.HouseGrowthPct, &a.RentGrowthPct,
	)
	if err != nil {
		return Assumptions{}, false
	}
	return a, true
}

func (f *PostgresAssumptionFeed) Close() error {
	return f.db.Close()
}
