package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"

	"market_seeder/internal/domain"
	"market_seeder/internal/domain/entity"
	"market_seeder/pkg/errcodes"
)

// OrderRepository reads the live order book. The seeder never writes here.
type OrderRepository struct {
	db *sqlx.DB
}

func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// FindActive returns every order currently flagged tradeable.
func (r *OrderRepository) FindActive(ctx context.Context) ([]entity.Order, error) {
	const query = `
		SELECT resource_type, price, active
		FROM market_orders
		WHERE active`

	var rows []orderSchema
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, domain.WrapError(err, errcodes.OrderQueryFailed, "select active orders")
	}

	orders := make([]entity.Order, len(rows))
	for i := range rows {
		orders[i] = rows[i].toDomain()
	}

	return orders, nil
}
