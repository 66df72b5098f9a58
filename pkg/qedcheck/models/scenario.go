package models

import (
	"errors"
	"fmt"
)

// PropertyUsage is the intended use of the purchased property.
type PropertyUsage string

const (
	UsageOwnerOccupied PropertyUsage = "Owner-Occupied"
	UsageInvestment    PropertyUsage = "Investment"
)

// Range is a closed interval of currency amounts.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Scenario is one borrowing power fixture.
type Scenario struct {
	Name string `json:"name" yaml:"name"`
	// PrimaryIncome and SecondaryIncome are gross annual incomes.
	PrimaryIncome   float64 `json:"primary_income" yaml:"primary_income"`
	SecondaryIncome float64 `json:"secondary_income" yaml:"secondary_income"`
	Dependents      int     `json:"dependents" yaml:"dependents"`
	// HECSPrimary and HECSSecondary are outstanding education debts; zero
	// means the applicant has none.
	HECSPrimary   float64       `json:"hecs_primary" yaml:"hecs_primary"`
	HECSSecondary float64       `json:"hecs_secondary" yaml:"hecs_secondary"`
	PropertyUsage PropertyUsage `json:"property_type" yaml:"property_type"`
	// InterestRate is in percent, e.g. 5.5.
	InterestRate float64 `json:"interest_rate" yaml:"interest_rate"`
	Location     string  `json:"location" yaml:"location"`
	// RentalIncome is annual; CurrentRent is monthly.
	RentalIncome float64 `json:"rental_income" yaml:"rental_income"`
	CurrentRent  float64 `json:"current_rent" yaml:"current_rent"`
	Expected     Range   `json:"expected_range" yaml:"expected_range"`
	// AppResult is the borrowing power our application computed for the
	// same inputs.
	AppResult float64 `json:"our_app_result" yaml:"our_app_result"`
}

// IsDual reports whether the scenario has a second applicant income.
func (s Scenario) IsDual() bool {
	return s.SecondaryIncome > 0
}

// Validate checks the fixture for values the workbook cannot represent.
func (s Scenario) Validate() error {
	var errs []error
	if s.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if s.Expected.Min > s.Expected.Max {
		errs = append(errs, fmt.Errorf("expected range min %.0f exceeds max %.0f", s.Expected.Min, s.Expected.Max))
	}
	for _, amount := range []struct {
		key   string
		value float64
	}{
		{"primary_income", s.PrimaryIncome},
		{"secondary_income", s.SecondaryIncome},
		{"hecs_primary", s.HECSPrimary},
		{"hecs_secondary", s.HECSSecondary},
		{"interest_rate", s.InterestRate},
		{"rental_income", s.RentalIncome},
		{"current_rent", s.CurrentRent},
		{"our_app_result", s.AppResult},
	} {
		if amount.value < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative", amount.key))
		}
	}
	if s.Dependents < 0 {
		errs = append(errs, errors.New("dependents must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("scenario %q: %w", s.Name, errors.Join(errs...))
	}
	return nil
}
