package persistence

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SchemaProber reports whether both required tables exist. The host process
// owns the schema; the seeder only waits for it to appear.
type SchemaProber struct {
	db *sqlx.DB
}

func NewSchemaProber(db *sqlx.DB) *SchemaProber {
	return &SchemaProber{db: db}
}

// Ready returns true once market_orders and users_money are both present.
func (p *SchemaProber) Ready(ctx context.Context) (bool, error) {
	const query = `
		SELECT to_regclass('market_orders') IS NOT NULL
		   AND to_regclass('users_money') IS NOT NULL`

	var ready bool
	if err := p.db.GetContext(ctx, &ready, query); err != nil {
		return false, fmt.Errorf("probe schema: %w", err)
	}

	return ready, nil
}
