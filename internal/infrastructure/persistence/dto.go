package persistence

import (
	"database/sql"
	"time"

	jsoniter "github.com/json-iterator/go"

	"market_seeder/internal/domain/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

// orderSchema maps a market_orders row.
type orderSchema struct {
	ResourceType string  `db:"resource_type"`
	Price        float64 `db:"price"`
	Active       bool    `db:"active"`
}

func (s *orderSchema) toDomain() entity.Order {
	return entity.Order{
		ResourceType: s.ResourceType,
		Price:        s.Price,
		Active:       s.Active,
	}
}

// dealSchema maps a users_money row. The market payload travels as JSONB,
// mirroring the nested document shape the rest of the host system reads;
// it is passed as text so the driver lets postgres cast it.
type dealSchema struct {
	ID       string         `db:"id"`
	UserID   string         `db:"user_id"`
	Type     string         `db:"type"`
	Date     time.Time      `db:"date"`
	Change   float64        `db:"change"`
	Market   string         `db:"market"`
	SeededBy sql.NullString `db:"seeded_by"`
}

type dealMarketSchema struct {
	ResourceType string  `json:"resourceType"`
	Amount       int64   `json:"amount"`
	Price        float64 `json:"price"`
}

func fromDeal(deal *entity.Deal) (*dealSchema, error) {
	market, err := json.Marshal(dealMarketSchema{
		ResourceType: deal.Market.ResourceType,
		Amount:       deal.Market.Amount,
		Price:        deal.Market.Price,
	})
	if err != nil {
		return nil, err
	}

	return &dealSchema{
		ID:       deal.ID,
		UserID:   deal.User,
		Type:     deal.Type,
		Date:     deal.Date,
		Change:   deal.Change,
		Market:   string(market),
		SeededBy: sql.NullString{String: deal.SeededBy, Valid: deal.SeededBy != ""},
	}, nil
}

func (s *dealSchema) toDomain() (*entity.Deal, error) {
	var market dealMarketSchema
	if s.Market != "" {
		if err := json.Unmarshal([]byte(s.Market), &market); err != nil {
			return nil, err
		}
	}

	return &entity.Deal{
		ID:     s.ID,
		User:   s.UserID,
		Type:   s.Type,
		Date:   s.Date,
		Change: s.Change,
		Market: entity.DealMarket{
			ResourceType: market.ResourceType,
			Amount:       market.Amount,
			Price:        market.Price,
		},
		SeededBy: s.SeededBy.String,
	}, nil
}
