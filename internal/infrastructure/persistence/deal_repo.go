package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"

	"market_seeder/internal/domain"
	"market_seeder/internal/domain/entity"
	"market_seeder/internal/domain/value"
	"market_seeder/pkg/errcodes"
)

// DealRepository is the seeder's view of the money log: count one window,
// append one record. It never updates or deletes.
type DealRepository struct {
	db *sqlx.DB
}

func NewDealRepository(db *sqlx.DB) *DealRepository {
	return &DealRepository{db: db}
}

// CountInWindow counts market-sell deals for a resource type inside the day
// window, bounds inclusive. A non-empty seededBy restricts the count to
// records carrying that provenance tag.
func (r *DealRepository) CountInWindow(ctx context.Context, resourceType string, window value.DayWindow, seededBy string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM users_money
		WHERE type = $1
		  AND market->>'resourceType' = $2
		  AND date >= $3
		  AND date <= $4`
	args := []any{entity.DealTypeMarketSell, resourceType, window.Start, window.End}

	if seededBy != "" {
		query += ` AND seeded_by = $5`
		args = append(args, seededBy)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, domain.WrapError(err, errcodes.DealQueryFailed, "count deals in window")
	}

	return count, nil
}

// Insert appends one deal record.
func (r *DealRepository) Insert(ctx context.Context, deal *entity.Deal) error {
	schema, err := fromDeal(deal)
	if err != nil {
		return domain.WrapError(err, errcodes.DealInsertFailed, "encode deal")
	}

	const query = `
		INSERT INTO users_money (id, user_id, type, date, change, market, seeded_by)
		VALUES (:id, :user_id, :type, :date, :change, :market, :seeded_by)`

	if _, err := r.db.NamedExecContext(ctx, query, schema); err != nil {
		return domain.WrapError(err, errcodes.DealInsertFailed, "insert deal")
	}

	return nil
}

// FindInWindow returns the matching deals themselves, same predicate as
// CountInWindow. Used by the integration tests to inspect what a pass wrote.
func (r *DealRepository) FindInWindow(ctx context.Context, resourceType string, window value.DayWindow, seededBy string) ([]*entity.Deal, error) {
	query := `
		SELECT id, user_id, type, date, change, market, seeded_by
		FROM users_money
		WHERE type = $1
		  AND market->>'resourceType' = $2
		  AND date >= $3
		  AND date <= $4`
	args := []any{entity.DealTypeMarketSell, resourceType, window.Start, window.End}

	if seededBy != "" {
		query += ` AND seeded_by = $5`
		args = append(args, seededBy)
	}

	var rows []dealSchema
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, domain.WrapError(err, errcodes.DealQueryFailed, "select deals in window")
	}

	deals := make([]*entity.Deal, 0, len(rows))
	for i := range rows {
		deal, err := rows[i].toDomain()
		if err != nil {
			return nil, domain.WrapError(err, errcodes.DealQueryFailed, "decode deal")
		}
		deals = append(deals, deal)
	}

	return deals, nil
}
