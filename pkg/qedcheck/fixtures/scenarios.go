// Package fixtures holds the borrowing power scenarios the workbook is
// checked against.
package fixtures

import "github.com/ukaji3/qedcheck-go/pkg/qedcheck/models"

const weeksPerYear = 52

// Default returns the six reference scenarios. Each call returns a fresh
// slice.
func Default() []models.Scenario {
	return []models.Scenario{
		{
			Name:          "Scenario 1: Single, Low Income, Owner-Occupied",
			PrimaryIncome: 65000,
			PropertyUsage: models.UsageOwnerOccupied,
			InterestRate:  5.5,
			Location:      "NSW 2000",
			CurrentRent:   650,
			Expected:      models.Range{Min: 350000, Max: 400000},
			AppResult:     312530,
		},
		{
			Name:          "Scenario 2: Single, Medium Income, Investment",
			PrimaryIncome: 95000,
			HECSPrimary:   25000,
			PropertyUsage: models.UsageInvestment,
			InterestRate:  5.8,
			Location:      "VIC 3000",
			RentalIncome:  450 * weeksPerYear,
			Expected:      models.Range{Min: 600000, Max: 700000},
			AppResult:     502553,
		},
		{
			Name:            "Scenario 3: Couple, High Income, Owner-Occupied",
			PrimaryIncome:   120000,
			SecondaryIncome: 85000,
			Dependents:      2,
			HECSPrimary:     35000,
			HECSSecondary:   20000,
			PropertyUsage:   models.UsageOwnerOccupied,
			InterestRate:    5.5,
			Location:        "QLD 4000",
			CurrentRent:     650,
			Expected:        models.Range{Min: 900000, Max: 1000000},
			AppResult:       237413,
		},
		{
			Name:            "Scenario 4: Couple, High Income, Investment",
			PrimaryIncome:   140000,
			SecondaryIncome: 75000,
			PropertyUsage:   models.UsageInvestment,
			InterestRate:    5.8,
			Location:        "WA 6000",
			RentalIncome:    650 * weeksPerYear,
			// Weekly rent of 400 as a monthly amount.
			CurrentRent: 400.0 * weeksPerYear / 12,
			Expected:    models.Range{Min: 1200000, Max: 1500000},
			AppResult:   1060237,
		},
		{
			Name:          "Scenario 5: Single, Very High Income, Investment",
			PrimaryIncome: 180000,
			Dependents:    1,
			HECSPrimary:   45000,
			PropertyUsage: models.UsageInvestment,
			InterestRate:  5.8,
			Location:      "SA 5000",
			RentalIncome:  800 * weeksPerYear,
			Expected:      models.Range{Min: 1500000, Max: 2000000},
			AppResult:     660016,
		},
		{
			Name:            "Scenario 6: Young Couple, Entry Level",
			PrimaryIncome:   75000,
			SecondaryIncome: 60000,
			HECSPrimary:     15000,
			HECSSecondary:   18000,
			PropertyUsage:   models.UsageOwnerOccupied,
			InterestRate:    5.5,
			Location:        "NSW 2650",
			CurrentRent:     650,
			Expected:        models.Range{Min: 650000, Max: 750000},
			AppResult:       425720,
		},
	}
}
