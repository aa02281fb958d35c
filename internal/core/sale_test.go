package core

import (
	"errors"
	"testing"
	"time"
)

func TestSaleTotal(t *testing.T) {
	s := Sale{Paid: 100.50, Unpaid: 49.50}
	if got := s.Total(); got != 150.0 {
		t.Fatalf("Total() = %v, want 150", got)
	}
	if got := (Sale{}).Total(); got != 0 {
		t.Fatalf("zero sale Total() = %v, want 0", got)
	}
}

func TestSaleValidate(t *testing.T) {
	good := Sale{
		Client:          "Wanjiku",
		Quantity:        3,
		Paid:            200,
		Unpaid:          50,
		TransactionType: Mpesa,
		Location:        "Nairobi",
		Date:            time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name string
		mut  func(s *Sale)
		want error
	}{
		{"empty client", func(s *Sale) { s.Client = "  " }, ErrEmptyClient},
		{"negative quantity", func(s *Sale) { s.Quantity = -1 }, ErrNegativeQuantity},
		{"negative paid", func(s *Sale) { s.Paid = -0.01 }, ErrNegativeAmount},
		{"negative unpaid", func(s *Sale) { s.Unpaid = -5 }, ErrNegativeAmount},
		{"unknown transaction type", func(s *Sale) { s.TransactionType = "Barter" }, ErrInvalidTransactionType},
		{"empty location", func(s *Sale) { s.Location = "" }, ErrEmptyLocation},
		{"zero date", func(s *Sale) { s.Date = time.Time{} }, ErrZeroDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := good
			tc.mut(&s)
			if err := s.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("Validate() = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestTransactionTypeIsValid(t *testing.T) {
	for _, tt := range TransactionTypes() {
		if !tt.IsValid() {
			t.Fatalf("%s should be valid", tt)
		}
	}
	if TransactionType("Card").IsValid() {
		t.Fatal("Card should not be valid")
	}
	if TransactionType("").IsValid() {
		t.Fatal("empty type should not be valid")
	}
}

func TestNormalizeDate(t *testing.T) {
	nairobi := time.FixedZone("EAT", 3*60*60)
	in := time.Date(2024, 1, 15, 12, 30, 45, 987654321, nairobi)
	got := NormalizeDate(in)
	if got.Location() != time.UTC {
		t.Fatalf("expected UTC, got %v", got.Location())
	}
	if got.Nanosecond() != 0 {
		t.Fatalf("expected second precision, got %dns", got.Nanosecond())
	}
	if !got.Equal(in.Truncate(time.Second)) {
		t.Fatalf("normalized date %v not equal to input instant", got)
	}
}

func TestEndOfDay(t *testing.T) {
	in := time.Date(2024, 1, 15, 8, 12, 3, 0, time.UTC)
	got := EndOfDay(in)
	want := time.Date(2024, 1, 15, 23, 59, 59, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("EndOfDay() = %v, want %v", got, want)
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"100", 100},
		{"12.34", 12.34},
		{"12,34", 12.34},
		{" 50.00 ", 50},
		{"", 0},
		{"abc", 0},
		{"-10", 0}, // negative input coerces to zero
	}
	for _, tc := range cases {
		if got := ParseAmount(tc.in); got != tc.want {
			t.Fatalf("ParseAmount(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseQuantity(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"7", 7},
		{" 3 ", 3},
		{"", 0},
		{"1.5", 0},
		{"-2", 0},
	}
	for _, tc := range cases {
		if got := ParseQuantity(tc.in); got != tc.want {
			t.Fatalf("ParseQuantity(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseTransactionType(t *testing.T) {
	cases := []struct {
		in   string
		want TransactionType
	}{
		{"Mpesa", Mpesa},
		{"mpesa", Mpesa},
		{" CASH ", Cash},
		{"cheque", Cheque},
		{"card", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := ParseTransactionType(tc.in); got != tc.want {
			t.Fatalf("ParseTransactionType(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
