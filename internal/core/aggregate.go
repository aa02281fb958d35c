package core

// Summary holds the three aggregates computed over a set of sales.
type Summary struct {
	Paid   float64
	Unpaid float64
	Total  float64
}

// SumPaid folds the paid amounts of the given sales. Empty input yields 0.
func SumPaid(sales []Sale) float64 {
	var sum float64
	for _, s := range sales {
		sum += s.Paid
	}
	return sum
}

// SumUnpaid folds the unpaid amounts of the given sales. Empty input yields 0.
func SumUnpaid(sales []Sale) float64 {
	var sum float64
	for _, s := range sales {
		sum += s.Unpaid
	}
	return sum
}

// SumTotal folds the derived totals of the given sales. Empty input yields 0.
func SumTotal(sales []Sale) float64 {
	var sum float64
	for _, s := range sales {
		sum += s.Total()
	}
	return sum
}

// Summarize computes all three aggregates in one pass over the sales.
// Plain float64 accumulation, matching the reference behavior; no
// rounding correction is applied.
func Summarize(sales []Sale) Summary {
	var sum Summary
	for _, s := range sales {
		sum.Paid += s.Paid
		sum.Unpaid += s.Unpaid
		sum.Total += s.Total()
	}
	return sum
}
