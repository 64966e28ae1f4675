package market

// Config controls the value ranges used when synthesizing a dataset.
// Quantity and total price are drawn independently on a discrete grid:
// every value is Min + k*Step for some k, and never exceeds Max.
type Config struct {
	// MinQuantity and MaxQuantity bound the per-item unit count.
	MinQuantity int
	MaxQuantity int

	// QuantityStep is the grid step for quantities.
	QuantityStep int

	// MinTotal and MaxTotal bound the per-item total price.
	MinTotal int
	MaxTotal int

	// TotalStep is the grid step for total prices.
	TotalStep int

	// Items is the fixed set of item identifiers, in display order.
	Items []string
}

// DefaultConfig returns the standard quiz configuration:
// quantities in [5,100] step 5, totals in [100,1000] step 50, six items.
func DefaultConfig() Config {
	return Config{
		MinQuantity:  5,
		MaxQuantity:  100,
		QuantityStep: 5,
		MinTotal:     100,
		MaxTotal:     1000,
		TotalStep:    50,
		Items:        []string{"A", "B", "C", "D", "E", "F"},
	}
}
