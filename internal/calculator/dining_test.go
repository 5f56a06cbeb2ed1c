package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSettleDining(t *testing.T) {
	tests := []struct {
		name          string
		total         string
		participants  int
		limit         string
		wantErr       error
		wantPerPerson string
		wantSubsidy   string
		wantSubsidize bool
	}{
		{
			name:          "capped share leaves subsidy",
			total:         "250",
			participants:  2,
			limit:         "100",
			wantPerPerson: "100",
			wantSubsidy:   "50",
			wantSubsidize: true,
		},
		{
			name:          "share under cap, no subsidy",
			total:         "60",
			participants:  3,
			limit:         "100",
			wantPerPerson: "20",
			wantSubsidy:   "0",
		},
		{
			name:          "uneven split floors to the cent",
			total:         "100",
			participants:  3,
			limit:         "100",
			wantPerPerson: "33.33",
			wantSubsidy:   "0.01",
			wantSubsidize: true,
		},
		{
			name:          "share exactly at cap",
			total:         "300",
			participants:  3,
			limit:         "100",
			wantPerPerson: "100",
			wantSubsidy:   "0",
		},
		{
			name:          "custom cap",
			total:         "200",
			participants:  4,
			limit:         "30",
			wantPerPerson: "30",
			wantSubsidy:   "80",
			wantSubsidize: true,
		},
		{
			name:          "sub-cent share floors to zero",
			total:         "0.02",
			participants:  3,
			limit:         "100",
			wantPerPerson: "0",
			wantSubsidy:   "0.02",
			wantSubsidize: true,
		},
		{
			name:         "no participants",
			total:        "100",
			participants: 0,
			limit:        "100",
			wantErr:      ErrNoParticipants,
		},
		{
			name:         "zero total",
			total:        "0",
			participants: 2,
			limit:        "100",
			wantErr:      ErrNonPositiveBill,
		},
		{
			name:         "negative cap",
			total:        "10",
			participants: 2,
			limit:        "-1",
			wantErr:      ErrNonPositiveCap,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SettleDining(d(tt.total), tt.participants, d(tt.limit))
			if err != tt.wantErr {
				t.Fatalf("SettleDining() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if !got.PerPerson.Equal(d(tt.wantPerPerson)) {
				t.Errorf("PerPerson = %s, want %s", got.PerPerson, tt.wantPerPerson)
			}
			if !got.Subsidy.Equal(d(tt.wantSubsidy)) {
				t.Errorf("Subsidy = %s, want %s", got.Subsidy, tt.wantSubsidy)
			}
			if got.HasSubsidy() != tt.wantSubsidize {
				t.Errorf("HasSubsidy() = %v, want %v", got.HasSubsidy(), tt.wantSubsidize)
			}
			if got.Subsidy.IsNegative() {
				t.Errorf("Subsidy is negative: %s", got.Subsidy)
			}
			if !got.Collected.Add(got.Subsidy).Equal(d(tt.total)) {
				t.Errorf("Collected + Subsidy = %s, want %s", got.Collected.Add(got.Subsidy), tt.total)
			}
		})
	}
}

func TestSettleDining_SubsidyNeverNegative(t *testing.T) {
	limit := d("100")
	for cents := int64(1); cents <= 5000; cents += 7 {
		total := decimal.New(cents, -2)
		for n := 1; n <= 13; n++ {
			got, err := SettleDining(total, n, limit)
			if err != nil {
				t.Fatalf("SettleDining(%s, %d) error: %v", total, n, err)
			}
			if got.Subsidy.IsNegative() {
				t.Fatalf("SettleDining(%s, %d) subsidy = %s", total, n, got.Subsidy)
			}
			if !got.PerPerson.Equal(got.PerPerson.Round(2)) {
				t.Fatalf("SettleDining(%s, %d) per person %s not at cent precision", total, n, got.PerPerson)
			}
		}
	}
}
