package entity

// Order is a live market order, read-only for the seeder. Only active orders
// with a finite price feed price estimation.
type Order struct {
	ResourceType string
	Price        float64
	Active       bool
}
