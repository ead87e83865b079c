package pricing_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"market_seeder/internal/domain/entity"
	"market_seeder/internal/domain/service/pricing"
)

type fakeOrderRepo struct {
	orders []entity.Order
	err    error
}

func (f *fakeOrderRepo) FindActive(context.Context) ([]entity.Order, error) {
	return f.orders, f.err
}

func TestAveragePrices(t *testing.T) {
	testCases := []struct {
		name   string
		orders []entity.Order
		want   map[string]float64
	}{
		{
			name: "arithmetic mean per resource type",
			orders: []entity.Order{
				{ResourceType: "O", Price: 100, Active: true},
				{ResourceType: "O", Price: 200, Active: true},
				{ResourceType: "O", Price: 300, Active: true},
				{ResourceType: "H", Price: 50, Active: true},
			},
			want: map[string]float64{"O": 200, "H": 50},
		},
		{
			name: "non-finite prices dropped",
			orders: []entity.Order{
				{ResourceType: "O", Price: 100, Active: true},
				{ResourceType: "O", Price: math.NaN(), Active: true},
				{ResourceType: "O", Price: math.Inf(1), Active: true},
				{ResourceType: "O", Price: math.Inf(-1), Active: true},
			},
			want: map[string]float64{"O": 100},
		},
		{
			name: "missing resource type dropped",
			orders: []entity.Order{
				{ResourceType: "", Price: 100, Active: true},
				{ResourceType: "Z", Price: 7, Active: true},
			},
			want: map[string]float64{"Z": 7},
		},
		{
			name: "type with zero valid samples is absent, not zero",
			orders: []entity.Order{
				{ResourceType: "X", Price: math.NaN(), Active: true},
			},
			want: map[string]float64{},
		},
		{
			name:   "no orders",
			orders: nil,
			want:   map[string]float64{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			svc := pricing.NewService(&fakeOrderRepo{orders: tc.orders})

			rq.Equal(tc.want, svc.AveragePrices(context.Background()))
		})
	}
}

func TestAveragePricesReadFailureDegradesToEmpty(t *testing.T) {
	rq := require.New(t)

	svc := pricing.NewService(&fakeOrderRepo{err: errors.New("connection reset")})

	got := svc.AveragePrices(context.Background())
	rq.NotNil(got)
	rq.Empty(got)
}
