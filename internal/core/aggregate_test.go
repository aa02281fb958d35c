package core

import (
	"testing"
	"time"
)

func TestAggregatesEmpty(t *testing.T) {
	if got := SumPaid(nil); got != 0 {
		t.Fatalf("SumPaid(nil) = %v, want 0", got)
	}
	if got := SumUnpaid(nil); got != 0 {
		t.Fatalf("SumUnpaid(nil) = %v, want 0", got)
	}
	if got := SumTotal(nil); got != 0 {
		t.Fatalf("SumTotal(nil) = %v, want 0", got)
	}
	if sum := Summarize([]Sale{}); sum != (Summary{}) {
		t.Fatalf("Summarize(empty) = %+v, want zeros", sum)
	}
}

func TestAggregatesScenario(t *testing.T) {
	// Sales from the January range: paid/unpaid (100,0) and (0,50).
	sales := []Sale{
		{Client: "a", Paid: 0, Unpaid: 50, Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{Client: "b", Paid: 100, Unpaid: 0, Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	if got := SumPaid(sales); got != 100 {
		t.Fatalf("SumPaid = %v, want 100", got)
	}
	if got := SumUnpaid(sales); got != 50 {
		t.Fatalf("SumUnpaid = %v, want 50", got)
	}
	if got := SumTotal(sales); got != 150 {
		t.Fatalf("SumTotal = %v, want 150", got)
	}
}

func TestSumTotalEqualsPaidPlusUnpaid(t *testing.T) {
	sales := []Sale{
		{Paid: 12.5, Unpaid: 7.25},
		{Paid: 0, Unpaid: 0},
		{Paid: 199.99, Unpaid: 0.01},
	}
	if got, want := SumTotal(sales), SumPaid(sales)+SumUnpaid(sales); got != want {
		t.Fatalf("SumTotal = %v, SumPaid+SumUnpaid = %v", got, want)
	}

	sum := Summarize(sales)
	if sum.Paid != SumPaid(sales) || sum.Unpaid != SumUnpaid(sales) || sum.Total != SumTotal(sales) {
		t.Fatalf("Summarize = %+v disagrees with individual sums", sum)
	}
}

func TestAggregatesDoNotMutateInput(t *testing.T) {
	sales := []Sale{{Client: "x", Paid: 10, Unpaid: 5}}
	before := sales[0]
	_ = Summarize(sales)
	_ = SumTotal(sales)
	if sales[0] != before {
		t.Fatal("aggregation mutated its input")
	}
}
