package core

import "testing"

func TestCalculateTotals(t *testing.T) {
	cases := []struct {
		name    string
		records []Record
		want    Totals
	}{
		{
			name: "basic",
			records: []Record{
				{Month: "January", Sales: 1000, Expenses: 500},
				{Month: "February", Sales: 2000, Expenses: 800},
			},
			want: Totals{Sales: 3000, Expenses: 1300, Profit: 1700},
		},
		{
			name:    "empty",
			records: nil,
			want:    Totals{},
		},
		{
			name:    "single",
			records: []Record{{Month: "January", Sales: 5000, Expenses: 3000}},
			want:    Totals{Sales: 5000, Expenses: 3000, Profit: 2000},
		},
		{
			name: "large numbers",
			records: []Record{
				{Month: "January", Sales: 100000, Expenses: 50000},
				{Month: "February", Sales: 200000, Expenses: 75000},
			},
			want: Totals{Sales: 300000, Expenses: 125000, Profit: 175000},
		},
		{
			name:    "loss",
			records: []Record{{Month: "January", Sales: 1000, Expenses: 2000}},
			want:    Totals{Sales: 1000, Expenses: 2000, Profit: -1000},
		},
		{
			name:    "zero values",
			records: []Record{{Month: "January"}},
			want:    Totals{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateTotals(tc.records)
			if got != tc.want {
				t.Fatalf("CalculateTotals() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestCalculateTotalsProfitInvariant(t *testing.T) {
	records := []Record{
		{Month: "March", Sales: 4500, Expenses: 3200},
		{Month: "April", Sales: 0, Expenses: 900},
		{Month: "May", Sales: 7300, Expenses: 7300},
	}
	got := CalculateTotals(records)
	if got.Profit != got.Sales-got.Expenses {
		t.Fatalf("profit %d != sales %d - expenses %d", got.Profit, got.Sales, got.Expenses)
	}
}

func TestCalculateTotalsOrderIndependent(t *testing.T) {
	records := []Record{
		{Month: "January", Sales: 4500, Expenses: 3200},
		{Month: "February", Sales: 5200, Expenses: 3400},
		{Month: "March", Sales: 100, Expenses: 9000},
	}
	permuted := []Record{records[2], records[0], records[1]}
	if CalculateTotals(records) != CalculateTotals(permuted) {
		t.Fatalf("totals changed under permutation")
	}
}

func TestCalculateTotalsDoesNotMutateInput(t *testing.T) {
	records := []Record{{Month: "January", Sales: 10, Expenses: 5}}
	_ = CalculateTotals(records)
	if records[0] != (Record{Month: "January", Sales: 10, Expenses: 5}) {
		t.Fatalf("input mutated: %+v", records[0])
	}
}

func TestRecordValidate(t *testing.T) {
	good := Record{Month: "January", Sales: 4500, Expenses: 3200}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Record{
		{Month: "", Sales: 1, Expenses: 1},
		{Month: "   ", Sales: 1, Expenses: 1},
		{Month: "January", Sales: -1, Expenses: 1},
		{Month: "January", Sales: 1, Expenses: -1},
	}
	for i, r := range bads {
		if err := r.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestRecordProfit(t *testing.T) {
	r := Record{Month: "January", Sales: 1000, Expenses: 2500}
	if got := r.Profit(); got != -1500 {
		t.Fatalf("Profit() = %d, want -1500", got)
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "$0"},
		{7, "$7"},
		{999, "$999"},
		{1000, "$1,000"},
		{4500, "$4,500"},
		{1234567, "$1,234,567"},
		{-1300, "-$1,300"},
	}
	for _, tc := range cases {
		if got := FormatAmount(tc.in); got != tc.want {
			t.Errorf("FormatAmount(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
